package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// routeUncaught is the counter label for errors that escape every handler
const routeUncaught = "uncaught"

// recovery is the outermost error boundary. A panic anywhere below is logged
// with its stack, counted under the uncaught label, and returned as a
// structured 500; no request ever produces an unstructured response.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("uncaught error",
					zap.Any("error", r),
					zap.ByteString("stack", debug.Stack()))
				s.metrics.IncRequest(http.StatusInternalServerError, routeUncaught)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":  "Internal error",
					"detail": fmt.Sprint(r),
				})
			}
		}()

		c.Next()
	}
}

// requestID assigns a request ID when the client did not send one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}

// requestLogger is a middleware for request logging
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()))
	}
}
