package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{"store reachable", nil, http.StatusOK, `{"status":"ok"}`},
		{"store unreachable", errors.New("server selection timeout"), http.StatusServiceUnavailable, `{"status":"unavailable"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var hadDeadline bool
			h := NewHealthHandler(pingerFunc(func(ctx context.Context) error {
				_, hadDeadline = ctx.Deadline()
				return tc.pingErr
			}), time.Second)

			rec := httptest.NewRecorder()
			h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			assert.True(t, hadDeadline)
		})
	}
}
