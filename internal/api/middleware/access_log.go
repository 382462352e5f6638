package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewAccessLogMiddleware returns chi's RequestLogger backed by base, so access
// logs share the JSON stream of the rest of the application. 5xx responses are
// logged at ERROR, 4xx at WARN, everything else at INFO.
// It should be applied after chi's RequestID and before Recoverer, which
// reports panics through the entry created here.
func NewAccessLogMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return chimiddleware.RequestLogger(&accessLogFormatter{logger: base})
}

type accessLogFormatter struct {
	logger *slog.Logger
}

// NewLogEntry implements chimiddleware.LogFormatter.
func (f *accessLogFormatter) NewLogEntry(r *http.Request) chimiddleware.LogEntry {
	log := f.logger.With(
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("remote_addr", r.RemoteAddr),
	)
	if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
		log = log.With(slog.String("request_id", reqID))
	}
	return &accessLogEntry{logger: log}
}

type accessLogEntry struct {
	logger *slog.Logger
}

// Write implements chimiddleware.LogEntry.
func (e *accessLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	// nothing written means net/http sends an implicit 200
	if status == 0 {
		status = http.StatusOK
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	e.logger.Log(context.Background(), level, "request completed",
		slog.Int("status_code", status),
		slog.Int("bytes", bytes),
		slog.Duration("elapsed", elapsed))
}

// Panic implements chimiddleware.LogEntry.
func (e *accessLogEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error("request panicked",
		slog.Any("panic", v),
		slog.String("stack", string(stack)))
}
