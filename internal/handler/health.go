package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger reports whether the data store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	store  Pinger
	logger *slog.Logger
}

func NewHealthHandler(store Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// HealthResponse is the /healthz body. Error is set only on failure, so a
// 503 carries the same {"error": ...} field as every other error response.
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HandleHealth pings the store with a short deadline.
//
// HTTP: GET /healthz
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Error("health check failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Error: msgUnavailable})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
