package router

import (
	"github.com/erp/mfgdesk/internal/infrastructure/config"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/erp/mfgdesk/internal/infrastructure/telemetry"
	"github.com/erp/mfgdesk/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// EngineConfig is what the global middleware chain is built from
type EngineConfig struct {
	HTTP      config.HTTPConfig
	Swagger   config.SwaggerConfig
	Telemetry config.TelemetryConfig
	Security  middleware.SecurityConfig
	Logger    *zap.Logger
	// Metrics enables request metrics and GET /metrics when set
	Metrics *telemetry.Metrics
}

// NewEngine creates a gin engine with the global middleware chain:
//  1. RequestID
//  2. Tracing (if enabled)
//  3. Logger
//  4. Recovery
//  5. Metrics (if configured)
//  6. CORS, security headers and the body limit
//
// It also mounts /metrics and /swagger. API routes are added with Router.
func NewEngine(cfg EngineConfig) (*gin.Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(middleware.RequestID())
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.Tracing(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
			Filter:      middleware.SkipInfraPaths,
		})...)
	}
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	if cfg.Metrics != nil {
		engine.Use(middleware.Metrics(cfg.Metrics))
		engine.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}
	engine.Use(middleware.CORS(cfg.HTTP))
	engine.Use(middleware.Secure(cfg.Security))
	engine.Use(middleware.BodyLimits(cfg.HTTP.MaxBodySize, cfg.HTTP.MaxUploadSize))

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)
	return engine, nil
}
