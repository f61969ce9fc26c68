package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/mw"
)

func init() { Register("system", mountSystem) }

func mountSystem(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))

	internal := r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))
	internal.Get("/readyz", handlers.Readyz(d))
	internal.Get("/infra", handlers.Infra(d))
}
