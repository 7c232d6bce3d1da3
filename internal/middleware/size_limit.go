package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RazanRezq/jadara-sub002/internal/utilities"
)

// SizeLimit rejects request bodies larger than maxBodyBytes with 413.
// Bodies without a declared length are capped with http.MaxBytesReader, so
// reading past the limit fails with *http.MaxBytesError.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
				Error: "Entity too large",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
