package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
)

const pingTimeout = 2 * time.Second

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Error string `json:"error,omitempty"`
}

// Readyz is ready when storage answers; memory mode is always ready.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := readyzResponse{Ready: true}
		status := http.StatusOK
		if err := pingStorage(r.Context(), d); err != nil {
			resp = readyzResponse{Ready: false, Error: err.Error()}
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func pingStorage(ctx context.Context, d deps.Deps) error {
	if d.Storage == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return d.Storage.Ping(ctx)
}
