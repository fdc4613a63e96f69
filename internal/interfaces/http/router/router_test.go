package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erp/mfgdesk/internal/infrastructure/config"
	"github.com/erp/mfgdesk/internal/infrastructure/telemetry"
	"github.com/erp/mfgdesk/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	ping := NewDomainGroup("system", "/system").GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	NewRouter(engine).Register(ping).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/system/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouterUse_OnlyAPIRoutes(t *testing.T) {
	engine := gin.New()
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	group := NewDomainGroup("system", "/system").GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	NewRouter(engine).
		Use(func(c *gin.Context) {
			c.Header("X-API", "1")
			c.Next()
		}).
		Register(group).
		Setup()

	assert.Equal(t, "1", serve(engine, http.MethodGet, "/api/v1/system/ping").Header().Get("X-API"))
	assert.Empty(t, serve(engine, http.MethodGet, "/health").Header().Get("X-API"))
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("system", "/system")
		assert.Equal(t, "system", g.Name())
		assert.Equal(t, "/system", g.Prefix())
	})

	t.Run("routes by method", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.GET("/items", func(c *gin.Context) { c.String(http.StatusOK, "list") })
		g.POST("/items", func(c *gin.Context) { c.String(http.StatusCreated, "created") })
		g.Handle(http.MethodDelete, "/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		g.RegisterRoutes(engine.Group("/api/v1"))

		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v1/test/items").Code)
		assert.Equal(t, http.StatusCreated, serve(engine, http.MethodPost, "/api/v1/test/items").Code)
		assert.Equal(t, http.StatusNoContent, serve(engine, http.MethodDelete, "/api/v1/test/items/7").Code)
	})

	t.Run("middleware and subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("outer", "/outer").Use(func(c *gin.Context) {
			c.Header("X-Group", "outer")
			c.Next()
		})
		g.Group("inner", "/inner").GET("", func(c *gin.Context) { c.String(http.StatusOK, "inner") })
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, http.MethodGet, "/api/v1/outer/inner")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "inner", w.Body.String())
		assert.Equal(t, "outer", w.Header().Get("X-Group"))
	})
}

func TestNewEngine(t *testing.T) {
	t.Run("request id and security headers on every response", func(t *testing.T) {
		engine, err := NewEngine(EngineConfig{Security: middleware.DefaultSecurityConfig()})
		require.NoError(t, err)
		engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(engine, http.MethodGet, "/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("swagger hidden while disabled", func(t *testing.T) {
		engine, err := NewEngine(EngineConfig{})
		require.NoError(t, err)

		w := serve(engine, http.MethodGet, "/swagger/index.html")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
	})

	t.Run("metrics endpoint when configured", func(t *testing.T) {
		engine, err := NewEngine(EngineConfig{Metrics: telemetry.NewMetrics()})
		require.NoError(t, err)
		engine.GET("/api/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		serve(engine, http.MethodGet, "/api/v1/ping")
		w := serve(engine, http.MethodGet, "/metrics")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `route="/api/v1/ping"`)
	})

	t.Run("no metrics endpoint by default", func(t *testing.T) {
		engine, err := NewEngine(EngineConfig{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/metrics").Code)
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		engine, err := NewEngine(EngineConfig{HTTP: config.HTTPConfig{MaxBodySize: 4}})
		require.NoError(t, err)
		engine.POST("/api/v1/echo", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodPost, "/api/v1/echo", nil)
		req.ContentLength = 10
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
