package middleware

import (
	"mime"
	"net/http"

	"github.com/erp/mfgdesk/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BodyLimit returns a middleware that limits request body size
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return BodyLimits(maxBytes, maxBytes)
}

// BodyLimits is BodyLimit with a separate cap for multipart/form-data uploads
func BodyLimits(maxBytes, maxUploadBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := maxBytes
		if isMultipart(c.Request) && maxUploadBytes > limit {
			limit = maxUploadBytes
		}
		if limit <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > limit {
			abortWithError(c, dto.ErrCodeTooLarge, "Request body exceeds maximum allowed size")
			return
		}

		// Chunked bodies carry no Content-Length
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}
