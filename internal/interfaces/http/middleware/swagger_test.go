package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func swaggerEngine(cfg SwaggerConfig) *gin.Engine {
	r := gin.New()
	r.GET("/swagger/*any", SwaggerProtection(cfg), func(c *gin.Context) { c.String(http.StatusOK, "docs") })
	return r
}

func TestSwaggerProtection(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		w := serve(swaggerEngine(SwaggerConfig{}), httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("enabled for everyone", func(t *testing.T) {
		w := serve(swaggerEngine(SwaggerConfig{Enabled: true}), httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("allow list", func(t *testing.T) {
		r := swaggerEngine(SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.0/8", "192.0.2.7"}})

		req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		req.RemoteAddr = "10.1.2.3:5555"
		assert.Equal(t, http.StatusOK, serve(r, req).Code)

		req = httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		req.RemoteAddr = "192.0.2.7:5555"
		assert.Equal(t, http.StatusOK, serve(r, req).Code)

		req = httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		req.RemoteAddr = "203.0.113.9:5555"
		assert.Equal(t, http.StatusForbidden, serve(r, req).Code)
	})
}
