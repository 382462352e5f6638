package shared

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContextKey is the type for values this package stores in a request context.
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of hex characters in a trace ID
	TraceIDLength = 32
)

// SetTraceID adds a freshly generated trace ID to the context.
// The same ID appears in error responses and in every log line of the request.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns a random UUID rendered as 32 hex characters.
func generateTraceID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		slog.Error("failed to generate random trace ID",
			"error", err,
			"fallback", "time-based generation")
		return fallbackTraceID(time.Now())
	}
	return strings.ReplaceAll(id.String(), "-", "")
}

// fallbackTraceID derives a trace ID from a timestamp when the random
// source is unavailable. It is unique per nanosecond, not unguessable.
func fallbackTraceID(now time.Time) string {
	id := strconv.FormatInt(now.UnixNano(), 16)
	if len(id) < TraceIDLength {
		id = strings.Repeat("0", TraceIDLength-len(id)) + id
	}
	return id[len(id)-TraceIDLength:]
}
