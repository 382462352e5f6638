package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
)

// taskIDParam is the chi path parameter holding the task_id.
const taskIDParam = "id"

// getPathTaskID extracts the task_id from the URL path parameters.
// The value is opaque; lookup failures surface as not found, never as
// a format error.
func getPathTaskID(r *http.Request) string {
	return chi.URLParam(r, taskIDParam)
}

// decodeAndValidate reads a TaskRequest from the body and validates it,
// writing a 400 response and returning false when either step fails.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req *TaskRequest) bool {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	if err := shared.DecodeJSON(w, r, req); err != nil {
		log.Debug("rejected malformed task request", slog.String("path", r.URL.Path))
		HandleDecodeError(w, r, err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleValidationError(w, r, err)
		return false
	}

	return true
}
