package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

func TestHealthLive(t *testing.T) {
	w := httptest.NewRecorder()
	HealthLive().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"live"`)
}

func TestHealthReadyAllDependenciesUp(t *testing.T) {
	handler := HealthReady(ReadinessChecks{DB: stubPinger{}, Redis: stubPinger{}}, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ready"`)
}

func TestHealthReadySkipsNilDependencies(t *testing.T) {
	handler := HealthReady(ReadinessChecks{DB: stubPinger{}}, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealthReadyFailsWhenDependencyDown(t *testing.T) {
	handler := HealthReady(ReadinessChecks{
		DB:    stubPinger{},
		Redis: stubPinger{err: errors.New("redis unreachable")},
	}, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "redis unreachable")
}
