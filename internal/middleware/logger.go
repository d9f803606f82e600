package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs finished requests in key=value form and recovers from
// panics with a JSON error response.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				log.Printf(
					"request_panic method=%s path=%s client_ip=%s error=%q stack=%s",
					c.Request.Method, c.Request.URL.Path, c.ClientIP(), err.Error(), string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal Server Error",
					},
				})
				return
			}

			log.Printf(
				"request status=%d method=%s path=%s query=%s client_ip=%s latency=%s",
				c.Writer.Status(),
				c.Request.Method,
				c.Request.URL.Path,
				c.Request.URL.RawQuery,
				c.ClientIP(),
				time.Since(start),
			)
		}()

		c.Next()
	}
}
