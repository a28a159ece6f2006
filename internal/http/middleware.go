package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/domgiordano/xomper-back-end/internal/authorizer"
	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
	"github.com/domgiordano/xomper-back-end/internal/handler"
	"github.com/domgiordano/xomper-back-end/internal/metrics"
)

// CustomLoggerMiddleware logs each request with method, path, status, latency,
// and the request id assigned by the requestid middleware.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("http request",
			slog.String("request_id", requestid.Get(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// AuthorizerMiddleware runs the access decision gate ahead of protected
// routes, the way the hosting platform would invoke it. The method ARN is
// synthesized from the request, the Authorization header is passed through
// verbatim, and anything short of an Allow aborts with a 401 envelope.
func AuthorizerMiddleware(
	gate *authorizer.Authorizer,
	arnFor func(method, path string) string,
	business metrics.BusinessMetrics,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := authorizer.Request{
			MethodArn: arnFor(c.Request.Method, c.Request.URL.Path),
			Token:     c.GetHeader("Authorization"),
		}

		resp := gate.Authorize(c.Request.Context(), req)

		effect := authorizer.EffectDeny
		if len(resp.PolicyDocument.Statement) > 0 {
			effect = resp.PolicyDocument.Statement[0].Effect
		}
		business.RecordDecision(c.Request.Context(), string(effect))

		if effect != authorizer.EffectAllow {
			logger.Debug("request denied by access gate",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
			)
			denied := apperrors.New(
				apperrors.KindAuthorization, "unauthorized", "authorizer", "Authorize",
			)
			writeEnvelope(c, handler.Failure(denied, true))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RateLimitMiddleware applies a process-wide token bucket to incoming
// requests. Returns nil when disabled so callers can skip registration.
func RateLimitMiddleware(enabled bool, requestsPerSec float64, burst int) gin.HandlerFunc {
	if !enabled || requestsPerSec <= 0 {
		return nil
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSec), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "too many requests"},
			})
			return
		}
		c.Next()
	}
}
