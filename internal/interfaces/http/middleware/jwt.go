package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/erp/mfgdesk/internal/infrastructure/auth"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/erp/mfgdesk/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	UserKey       = "user"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require authentication
	SkipPathPrefixes []string
	// AnonymousReads lets GET and HEAD requests through without a token.
	// A token that is sent is still validated.
	AnonymousReads bool
	Logger         *zap.Logger
}

// DefaultJWTConfig returns the default JWT middleware configuration
func DefaultJWTConfig(jwtService *auth.JWTService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		JWTService:       jwtService,
		SkipPaths:        []string{"/health", "/metrics", "/api/v1/health"},
		SkipPathPrefixes: []string{"/swagger"},
		AnonymousReads:   true,
	}
}

// JWTAuth validates bearer tokens and stamps the operator into the request
// context, where services read it as createdBy.
func JWTAuth(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if slices.Contains(cfg.SkipPaths, path) {
			c.Next()
			return
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			if cfg.AnonymousReads && isReadMethod(c.Request.Method) {
				c.Next()
				return
			}
			abortWithError(c, dto.ErrCodeUnauthorized, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortWithError(c, dto.ErrCodeUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := cfg.JWTService.Validate(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			log.Debug("Token rejected",
				zap.String("request_id", GetRequestID(c)),
				zap.String("path", path),
				zap.Error(err),
			)
			if errors.Is(err, auth.ErrExpiredToken) {
				abortWithError(c, dto.ErrCodeTokenExpired, "Token has expired")
				return
			}
			abortWithError(c, dto.ErrCodeTokenInvalid, "Token validation failed")
			return
		}

		user := claims.User()
		c.Set(JWTClaimsKey, claims)
		c.Set(UserKey, user)
		c.Request = c.Request.WithContext(logger.WithUser(c.Request.Context(), user))
		c.Next()
	}
}

// GetUser returns the authenticated operator, or "" for anonymous requests
func GetUser(c *gin.Context) string {
	return c.GetString(UserKey)
}

func isReadMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}
