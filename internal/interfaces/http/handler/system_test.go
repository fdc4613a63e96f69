package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSystemEngine(h *SystemHandler) *gin.Engine {
	engine := gin.New()
	engine.GET("/health", h.Health)
	engine.GET("/api/v1/system/info", h.Info)
	engine.GET("/api/v1/system/ping", h.Ping)
	return engine
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("all checks pass", func(t *testing.T) {
		h := NewSystemHandler(SystemInfo{Name: "mfgdesk"}, map[string]HealthCheck{
			"database": func(context.Context) error { return nil },
			"cache":    func(context.Context) error { return nil },
		})
		h.now = func() time.Time { return testNow }

		w := httptest.NewRecorder()
		newSystemEngine(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var status HealthStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "2024-07-15T10:00:00Z", status.Time)
		assert.Equal(t, map[string]string{"database": "ok", "cache": "ok"}, status.Checks)
	})

	t.Run("a failing check reports unhealthy", func(t *testing.T) {
		h := NewSystemHandler(SystemInfo{}, map[string]HealthCheck{
			"database": func(context.Context) error { return errors.New("connection refused") },
			"cache":    func(context.Context) error { return nil },
		})

		w := httptest.NewRecorder()
		newSystemEngine(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var status HealthStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "unhealthy", status.Status)
		assert.Equal(t, "error", status.Checks["database"])
		assert.Equal(t, "ok", status.Checks["cache"])
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("no checks", func(t *testing.T) {
		w := httptest.NewRecorder()
		newSystemEngine(NewSystemHandler(SystemInfo{}, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSystemHandler_InfoAndPing(t *testing.T) {
	engine := newSystemEngine(NewSystemHandler(SystemInfo{Name: "mfgdesk", Version: "1.2.0", Env: "test"}, nil))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/info", nil))
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[SystemInfo](t, w).Data
	assert.Equal(t, "1.2.0", info.Version)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/ping", nil))
	assert.JSONEq(t, `{"success":true,"data":{"message":"pong"}}`, w.Body.String())
}
