package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type MockPinger struct {
	MockPing func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

func TestHealthHandler(t *testing.T) {
	h := &Handler{}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	h.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestReadyHandler(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		h := &Handler{health: &MockPinger{}}

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		rr := httptest.NewRecorder()

		h.Ready(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("database down", func(t *testing.T) {
		h := &Handler{health: &MockPinger{
			MockPing: func(ctx context.Context) error { return errors.New("connection refused") },
		}}

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		rr := httptest.NewRecorder()

		h.Ready(rr, req)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
