package httpapi

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// observe opens a span per request and records the route counters and
// latency once the handler chain finishes.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		ctx, span := s.tracer.StartSpan(c.Request.Context(), "http "+c.Request.Method+" "+route)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		s.tracer.SetAttributes(span, map[string]interface{}{
			"http.method":      c.Request.Method,
			"http.route":       route,
			"http.status_code": status,
		})
		span.End()

		s.metrics.IncrementRequests(route, strconv.Itoa(status))
		s.metrics.RecordRequestDuration(start, route)
	}
}
