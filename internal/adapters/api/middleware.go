package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"climatestats.app/internal/ports"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	unmatchedRoute  = "unmatched"
)

// requestID propagates the caller's request id or assigns a new one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// requestLogger logs each request and records it in the HTTP metrics
func (s *HTTPServerAdapter) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := c.Writer.Status()

		s.metricsCollector.RecordHTTPRequest(c.Request.Method, route, status, duration)

		fields := []ports.Field{
			ports.F("method", c.Request.Method),
			ports.F("path", c.Request.URL.Path),
			ports.F("status", status),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("request_id", c.GetString(requestIDKey)),
		}
		switch {
		case status >= 500:
			s.logger.Error("HTTP request", fields...)
		case status >= 400:
			s.logger.Warn("HTTP request", fields...)
		default:
			s.logger.Info("HTTP request", fields...)
		}
	}
}
