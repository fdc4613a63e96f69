package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/erp/mfgdesk/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HeaderIdempotencyKey carries a client generated key per form submission
const HeaderIdempotencyKey = "Idempotency-Key"

// DefaultIdempotencyTTL is how long a submitted key is remembered
const DefaultIdempotencyTTL = 24 * time.Hour

// Idempotency rejects a POST whose Idempotency-Key was already used on the
// same route, so a double-submitted form pushes one record. Requests without
// the header pass through. A store failure lets the request through.
func Idempotency(store shared.IdempotencyStore, ttl time.Duration) gin.HandlerFunc {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey))
		if store == nil || key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if len(key) > MaxRequestIDLength {
			abortWithError(c, dto.ErrCodeBadRequest, "Idempotency-Key is too long")
			return
		}

		scoped := "idem:" + c.Request.URL.Path + ":" + key
		claimed, err := store.MarkProcessed(c.Request.Context(), scoped, ttl)
		if err != nil {
			logger.L(c.Request.Context()).Warn("Idempotency store unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !claimed {
			abortWithError(c, dto.ErrCodeDuplicateRequest, "This request was already submitted")
			return
		}
		c.Next()
	}
}
