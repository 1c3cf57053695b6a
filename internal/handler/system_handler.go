// internal/handler/system_handler.go
package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// HealthHandler reports liveness and which data source the server reads from.
type HealthHandler struct {
	DataSource string
	// Ping checks the backing store when it has one (postgres).
	Ping func(ctx context.Context) error
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := map[string]string{
		"status":      "ok",
		"data_source": h.DataSource,
	}

	if h.Ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.Ping(ctx); err != nil {
			log.Println("❌ Health check failed:", err)
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
		}
	}

	writeJSON(w, status, body)
}

// NotFound answers unknown routes the way the app's catch-all page does.
func NotFound(w http.ResponseWriter, r *http.Request) {
	log.Println("⚠️ 404 for", r.Method, r.URL.Path)
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error":    "page not found",
		"redirect": "/",
	})
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
