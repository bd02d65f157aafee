package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"pin-packs/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic inside a handler into a 500 JSON response carrying
// the recovered value as details.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("PANIC on %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, recovered, debug.Stack())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": fmt.Sprint(recovered),
		})
	})
}
