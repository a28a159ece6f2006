package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/domgiordano/xomper-back-end/internal/authorizer"
	"github.com/domgiordano/xomper-back-end/internal/config"
	"github.com/domgiordano/xomper-back-end/internal/handler"
	"github.com/domgiordano/xomper-back-end/internal/metrics"
)

// Routes carries the handler functions the server exposes.
type Routes struct {
	UserLogin  handler.Func
	UserGet    handler.Func
	UserUpdate handler.Func

	LeagueGet    handler.Func
	LeagueUpdate handler.Func

	PlayerGet    handler.Func
	PlayerUpdate handler.Func

	EmailRuleProposal handler.Func
	EmailRuleAccept   handler.Func
	EmailRuleDeny     handler.Func
	EmailTaxi         handler.Func
}

// Server is the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates the API server with its full middleware chain and routes.
// meterProvider may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	gate *authorizer.Authorizer,
	business metrics.BusinessMetrics,
	meterProvider metric.MeterProvider,
	routes Routes,
) *Server {
	s := &Server{logger: logger}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if limitMiddleware := RateLimitMiddleware(cfg.RateLimitEnabled, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst); limitMiddleware != nil {
		router.Use(limitMiddleware)
	}
	if meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(meterProvider, cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Login is the route that issues credentials, so it sits outside the gate.
	router.POST("/user/login", route("user_login", routes.UserLogin, business))

	protected := router.Group("/")
	protected.Use(AuthorizerMiddleware(gate, cfg.MethodArn, business, logger))
	{
		protected.GET("/user/data", route("get_user_data", routes.UserGet, business))
		protected.POST("/user/data", route("update_user_data", routes.UserUpdate, business))

		protected.GET("/league/data", route("get_league_data", routes.LeagueGet, business))
		protected.POST("/league/data", route("update_league_data", routes.LeagueUpdate, business))

		protected.GET("/player/data", route("get_player_data", routes.PlayerGet, business))
		protected.POST("/player/data", route("update_player_data", routes.PlayerUpdate, business))

		protected.POST("/email/rule-proposal", route("email_rule_proposal", routes.EmailRuleProposal, business))
		protected.POST("/email/rule-accept", route("email_rule_accept", routes.EmailRuleAccept, business))
		protected.POST("/email/rule-deny", route("email_rule_deny", routes.EmailRuleDeny, business))
		protected.POST("/email/taxi", route("email_taxi", routes.EmailTaxi, business))
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting api server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start api server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down api server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness to receive traffic.
func (s *Server) readinessHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
