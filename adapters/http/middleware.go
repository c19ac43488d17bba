package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tradehub-app/tradehub/pkg/apperror"
	"github.com/tradehub-app/tradehub/pkg/logger"
)

// ErrorMiddleware turns errors collected on the context into a single
// response per request. API routes answer JSON; page and fragment routes get
// a plain generic body so no internal detail leaks into markup.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log.Error("request failed", err)

		status := apperror.ToHTTPStatus(err)

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				c.AbortWithStatusJSON(status, appErr.ToJSON())
				return
			}
			c.AbortWithStatusJSON(status, gin.H{"error": http.StatusText(status)})
			return
		}

		c.String(status, http.StatusText(status))
		c.Abort()
	}
}
