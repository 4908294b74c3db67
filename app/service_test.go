package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/config"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{}
	cfg.SetDefaults()
	require.NoError(t, cfg.Validate())
	svc, err := New(cfg)
	require.NoError(t, err)
	return svc
}

func TestServiceRoutes(t *testing.T) {
	svc := newTestService(t)
	h := svc.Handler()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/battery", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/api/report", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/unknown", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServiceClose(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Close())
}
