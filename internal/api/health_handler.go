package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/redact"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers liveness probes by pinging the document store.
type HealthHandler struct {
	pinger  Pinger
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler that bounds each ping by timeout.
func NewHealthHandler(pinger Pinger, timeout time.Duration) *HealthHandler {
	return &HealthHandler{pinger: pinger, timeout: timeout}
}

// Health handles GET /health requests
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Warn("health check failed", slog.String("error", redact.Error(err)))
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
