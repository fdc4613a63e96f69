package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// healthCheckTimeout bounds every dependency probe
const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

// SystemInfo describes the running service
// @Description Service name, version and start time
type SystemInfo struct {
	Name      string    `json:"name" example:"mfgdesk"`
	Version   string    `json:"version" example:"1.0.0"`
	Env       string    `json:"env" example:"production"`
	StartedAt time.Time `json:"startedAt"`
}

// HealthStatus is the body of a health probe
// @Description Overall status and the result of each dependency check
type HealthStatus struct {
	Status string            `json:"status" example:"healthy"`
	Time   string            `json:"time"`
	Checks map[string]string `json:"checks"`
}

// SystemHandler serves health and service info
type SystemHandler struct {
	BaseHandler
	info   SystemInfo
	checks map[string]HealthCheck
	now    func() time.Time
}

// NewSystemHandler creates a new SystemHandler. checks maps a dependency
// name such as "database" to its probe.
func NewSystemHandler(info SystemInfo, checks map[string]HealthCheck) *SystemHandler {
	if checks == nil {
		checks = map[string]HealthCheck{}
	}
	return &SystemHandler{info: info, checks: checks, now: time.Now}
}

// Health godoc
// @ID           health
// @Summary      Health check
// @Description  Probes every configured dependency; 503 when any probe fails
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthStatus
// @Failure      503 {object} HealthStatus
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := HealthStatus{Status: "healthy", Checks: make(map[string]string, len(names))}
	code := http.StatusOK
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.String("check", name), zap.Error(err))
			status.Checks[name] = "error"
			status.Status = "unhealthy"
			code = http.StatusServiceUnavailable
			continue
		}
		status.Checks[name] = "ok"
	}
	status.Time = h.now().Format(time.RFC3339)
	c.JSON(code, status)
}

// Info godoc
// @ID           systemInfo
// @Summary      Service info
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfo]
// @Router       /system/info [get]
func (h *SystemHandler) Info(c *gin.Context) {
	h.Success(c, h.info)
}

// Ping godoc
// @ID           ping
// @Summary      Ping
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[map[string]string]
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"message": "pong"})
}
