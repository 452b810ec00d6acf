package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestWelcome(t *testing.T) {
	handler := NewHealthHandler(func(ctx context.Context) error { return nil })

	w, c := createTestContext(http.MethodGet, "/", nil)
	handler.Welcome(c)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "Welcome to Application Tracker!" {
		t.Errorf("body = %q", got)
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name        string
		pingErr     error
		wantStatus  int
		wantMessage string
	}{
		{"healthy", nil, http.StatusOK, "ok"},
		{"database down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, "database unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(func(ctx context.Context) error {
				if _, ok := ctx.Deadline(); !ok {
					t.Error("ping context has no deadline")
				}
				return tt.pingErr
			})

			w, c := createTestContext(http.MethodGet, "/health", nil)
			handler.Check(c)

			assertMessage(t, w, tt.wantStatus, tt.wantMessage)
		})
	}
}
