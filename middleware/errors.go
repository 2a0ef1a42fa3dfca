package middleware

import (
	"blogpessoal/logger"
	"blogpessoal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler turns the last error a handler pushed with c.Error into the
// JSON error body. Internal causes are logged and never sent.
func ErrorHandler() gin.HandlerFunc {
	log := logger.Named("errors")

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := models.HTTPStatus(err)
		if models.ErrorCode(err) == models.CodeInternal {
			log.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}

		c.AbortWithStatusJSON(status, models.NewErrorResponse(err))
	}
}
