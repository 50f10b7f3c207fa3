package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickshawlabs/dispatch/internal/pkg/logger"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()

	zl, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)
	return zl
}

func TestPingHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewPingHandler("dispatch")
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "dispatch", info.ServiceName)
	assert.NotEmpty(t, info.GoVersion)
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "dispatch")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestReadinessSkipsNilClients(t *testing.T) {
	e := echo.New()
	hs := NewHealthService(testLogger(t))
	hs.AddChecker("nats", NewNATSHealthChecker(nil))
	hs.AddChecker("redis", NewRedisHealthChecker(nil))
	RegisterReadinessEndpoints(e, "dispatch", hs)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
