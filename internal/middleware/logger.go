package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextKeyRequestID is the Gin context key holding the request ID.
	ContextKeyRequestID = "request_id"

	requestIDHeader = "X-Request-ID"
)

// RequestID assigns each request an ID, reusing the caller's X-Request-ID
// when present, and echoes it on the response for correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Logger writes one line per completed request: status, method, path,
// latency, and the correlating request ID.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		log.Printf("%d %s %s %s rid=%s",
			c.Writer.Status(),
			c.Request.Method,
			path,
			time.Since(start).Round(time.Microsecond),
			c.GetString(ContextKeyRequestID),
		)
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
