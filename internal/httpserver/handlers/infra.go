package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkshelf/internal/logger"
)

type componentStatus struct {
	OK     bool   `json:"ok"`
	Mode   string `json:"mode,omitempty"`
	Impact string `json:"impact,omitempty"`
	Error  string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of each backing component.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storage := storageStatus(r, d)
		components := map[string]componentStatus{
			"storage": storage,
			"session": {OK: len(d.Session.Secret) > 0, Mode: "jwt-cookie"},
		}

		status := "operational"
		switch {
		case !storage.OK:
			status = "critical"
		case d.StorageMode == "memory":
			status = "degraded"
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{Status: status, Components: components})
	}
}

func storageStatus(r *http.Request, d deps.Deps) componentStatus {
	if d.Storage == nil {
		return componentStatus{OK: true, Mode: d.StorageMode, Impact: "bookmarks-lost-on-restart"}
	}
	if err := pingStorage(r.Context(), d); err != nil {
		d.Logger.Warn("storage ping failed", logger.Error(err))
		return componentStatus{OK: false, Mode: d.StorageMode, Impact: "bookmarks-unavailable", Error: err.Error()}
	}
	return componentStatus{OK: true, Mode: d.StorageMode, Impact: "persistent"}
}
