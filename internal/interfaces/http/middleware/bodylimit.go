package middleware

import (
	"net/http"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BodyLimit caps request body size. Screenshot uploads dominate request
// size, so the cap sits a bit above the maximum accepted image size to
// leave room for multipart framing. The Content-Length check rejects
// oversized uploads before reading a byte; MaxBytesReader covers
// chunked requests that declare no length.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse("REQUEST_TOO_LARGE", "Request body exceeds maximum allowed size"))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
