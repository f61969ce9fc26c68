package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/bookmarks"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/mw"
)

func init() { Register("bookmarks", mountBookmarks) }

// mountBookmarks serves the session-scoped bookmark pages and JSON list.
func mountBookmarks(r chi.Router, d deps.Deps) {
	r.Use(mw.Session(d.Session, d.Logger))

	r.Handle("/", http.RedirectHandler(bookmarks.ListPath, http.StatusFound))
	r.Get("/bookmarks", handlers.ListBookmarks(d))
	r.Get("/bookmarks.json", handlers.ListBookmarksJSON(d))
	r.Get("/bookmarks/{bookmarkID}", handlers.BookmarkDetails(d))
	r.Get("/create", handlers.CreateBookmark(d))
	r.With(mw.RateLimit(d.RateLimit, d.Logger)).Post("/create", handlers.CreateBookmark(d))
}
