// Package http provides the Gin HTTP server fronting the handler operations.
package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/domgiordano/xomper-back-end/internal/handler"
	"github.com/domgiordano/xomper-back-end/internal/metrics"
)

// bindEvent translates an incoming HTTP request into the event shape the
// handler operations consume. The body stays a raw string so operations see
// the same gateway-style input a platform invocation would carry.
func bindEvent(c *gin.Context) handler.Event {
	headers := make(map[string]string, len(c.Request.Header))
	for name := range c.Request.Header {
		headers[name] = c.GetHeader(name)
	}

	query := make(map[string]string)
	for name, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			query[name] = values[0]
		}
	}

	event := handler.Event{
		Path:                  c.Request.URL.Path,
		HTTPMethod:            c.Request.Method,
		Headers:               headers,
		QueryStringParameters: query,
	}

	if raw, err := c.GetRawData(); err == nil && len(raw) > 0 {
		event.Body = string(raw)
	}

	return event
}

// writeEnvelope renders an operation envelope onto the HTTP response.
func writeEnvelope(c *gin.Context, env handler.Envelope) {
	for name, value := range env.Headers {
		c.Header(name, value)
	}

	if body, ok := env.Body.(string); ok {
		c.Data(env.StatusCode, "application/json", []byte(body))
		return
	}
	c.JSON(env.StatusCode, env.Body)
}

// route adapts a handler function into a Gin handler and records the
// operation outcome.
func route(name string, fn handler.Func, business metrics.BusinessMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		env := fn(c.Request.Context(), bindEvent(c))

		business.RecordOperation(c.Request.Context(), name, env.StatusCode)
		business.RecordDuration(c.Request.Context(), name, time.Since(start), env.StatusCode)

		writeEnvelope(c, env)
	}
}
