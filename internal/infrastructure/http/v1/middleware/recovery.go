// Package middleware provides HTTP middleware components.
package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"salesdesk/pkg/logger"
)

// Recovery middleware recovers from panics and returns 500 error.
// The panic unwinds past the error middleware, so the response is
// written here directly. Logs stack trace but never exposes internal
// details to client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"stack", string(debug.Stack()),
				)

				if !c.Writer.Written() {
					c.JSON(http.StatusInternalServerError, gin.H{
						"success": false,
						"message": "Internal server error",
					})
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
