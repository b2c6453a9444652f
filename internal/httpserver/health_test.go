package httpserver

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type downStore struct{}

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

func TestBannerAndHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, banner, rec.Body.String())

	rec = env.serve(http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.serve(http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.serve(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestReady_StoreDown(t *testing.T) {
	h := &HealthHTTP{Store: downStore{}}
	e := echo.New()
	env := &testEnv{T: t, E: e}

	_, c := env.doJSONRequest(http.MethodGet, "/health/ready", nil)
	requireHTTPError(t, h.Ready(c), http.StatusServiceUnavailable)
}
