package viewer

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestID stamps every request with a fresh correlation ID. The viewer
// serves one local user, so an inbound X-Request-ID header is ignored
// rather than trusted.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// accessLog writes one line per request, tagged with the document the
// viewer is presenting.
func accessLog(sourceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[%s] %s: %s %s %d %s",
			c.GetString("request_id"),
			sourceName,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
