package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery returns a gin middleware that recovers from panics in handlers,
// logs the panic with a stack trace, and responds 500 if nothing has been
// written yet.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		panic("Recovery requires a non-nil zap.Logger instance")
	}
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("stacktrace", string(debug.Stack())),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)
				if !c.Writer.Written() {
					c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
