package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/middlewares"
)

const headerRequestID = "X-Request-ID"

// ContextKey is the gin context key under which the request logger is stored.
const ContextKey = "logger"

// Middleware generates or propagates a request id, stores a child logger in
// the gin context, and logs the completed request with status and latency.
func Middleware(base *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(headerRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		child := base.With().
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Logger()

		c.Header(headerRequestID, reqID)
		c.Set(ContextKey, &child)

		c.Next()

		evt := child.Info().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start))
		if v, ok := c.Get(middlewares.ContextUserID); ok {
			if oid, ok := v.(primitive.ObjectID); ok {
				evt = evt.Str("user_id", oid.Hex())
			}
		}
		evt.Msg("request completed")
	}
}

// FromContext returns the request-scoped logger, falling back to the global
// one outside the middleware.
func FromContext(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(ContextKey); ok {
		if l, ok := v.(*zerolog.Logger); ok {
			return l
		}
	}
	return &global
}
