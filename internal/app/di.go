// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/domgiordano/xomper-back-end/internal/authorizer"
	"github.com/domgiordano/xomper-back-end/internal/config"
	"github.com/domgiordano/xomper-back-end/internal/email"
	apphttp "github.com/domgiordano/xomper-back-end/internal/http"
	"github.com/domgiordano/xomper-back-end/internal/league"
	"github.com/domgiordano/xomper-back-end/internal/metrics"
	"github.com/domgiordano/xomper-back-end/internal/player"
	"github.com/domgiordano/xomper-back-end/internal/sleeper"
	"github.com/domgiordano/xomper-back-end/internal/store"
	"github.com/domgiordano/xomper-back-end/internal/user"
)

// Container holds all application dependencies and provides methods to access
// them. Components are created lazily on first access.
type Container struct {
	config *config.Config

	// Infrastructure
	logger        *slog.Logger
	awsConfig     aws.Config
	signingSecret []byte
	store         store.Store
	sleeperClient *sleeper.Client
	emailSender   *email.Sender

	// Use cases and handlers
	userUseCase   *user.UseCase
	userHandlers  *user.Handlers
	leagueUseCase *league.UseCase
	playerUseCase *player.UseCase
	emailHandlers *email.Handlers
	gate          *authorizer.Authorizer

	// Observability
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Servers
	httpServer    *apphttp.Server
	metricsServer *apphttp.MetricsServer

	// Initialization guards
	mu                  sync.Mutex
	loggerInit          sync.Once
	awsConfigInit       sync.Once
	signingSecretInit   sync.Once
	storeInit           sync.Once
	sleeperInit         sync.Once
	emailSenderInit     sync.Once
	userUseCaseInit     sync.Once
	gateInit            sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance, the single process-wide
// logger every component shares.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// AWSConfig returns the shared AWS client configuration.
func (c *Container) AWSConfig() (aws.Config, error) {
	var err error
	c.awsConfigInit.Do(func() {
		c.awsConfig, err = awsconfig.LoadDefaultConfig(
			context.Background(),
			awsconfig.WithRegion(c.config.AWSRegion),
		)
		if err != nil {
			c.initErrors["awsConfig"] = fmt.Errorf("failed to load aws config: %w", err)
		}
	})
	if storedErr, exists := c.initErrors["awsConfig"]; exists {
		return aws.Config{}, storedErr
	}
	return c.awsConfig, nil
}

// SigningSecret returns the session token signing key. The environment value
// wins when set; otherwise the key is fetched from the SSM parameter store.
func (c *Container) SigningSecret() ([]byte, error) {
	c.signingSecretInit.Do(func() {
		if c.config.SigningSecret != "" {
			c.signingSecret = []byte(c.config.SigningSecret)
			return
		}

		awsCfg, err := c.AWSConfig()
		if err != nil {
			c.initErrors["signingSecret"] = err
			return
		}

		client := ssm.NewFromConfig(awsCfg)
		out, err := client.GetParameter(context.Background(), &ssm.GetParameterInput{
			Name:           aws.String(c.config.SigningSecretSSMName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			c.initErrors["signingSecret"] = fmt.Errorf("failed to fetch signing secret: %w", err)
			return
		}

		c.signingSecret = []byte(aws.ToString(out.Parameter.Value))
	})
	if storedErr, exists := c.initErrors["signingSecret"]; exists {
		return nil, storedErr
	}
	return c.signingSecret, nil
}

// Store returns the DynamoDB-backed record store.
func (c *Container) Store() (store.Store, error) {
	c.storeInit.Do(func() {
		awsCfg, err := c.AWSConfig()
		if err != nil {
			c.initErrors["store"] = err
			return
		}
		c.store = store.NewDynamoDB(dynamodb.NewFromConfig(awsCfg))
	})
	if storedErr, exists := c.initErrors["store"]; exists {
		return nil, storedErr
	}
	return c.store, nil
}

// Sleeper returns the Sleeper API client.
func (c *Container) Sleeper() *sleeper.Client {
	c.sleeperInit.Do(func() {
		c.sleeperClient = sleeper.New(c.config.SleeperBaseURL, c.config.SleeperRetryMax, c.Logger())
	})
	return c.sleeperClient
}

// EmailSender returns the SES-backed email sender.
func (c *Container) EmailSender() (*email.Sender, error) {
	c.emailSenderInit.Do(func() {
		awsCfg, err := c.AWSConfig()
		if err != nil {
			c.initErrors["emailSender"] = err
			return
		}
		c.emailSender = email.NewSender(sesv2.NewFromConfig(awsCfg), c.config.FromEmail, c.Logger())
	})
	if storedErr, exists := c.initErrors["emailSender"]; exists {
		return nil, storedErr
	}
	return c.emailSender, nil
}

// Authorizer returns the access decision gate.
func (c *Container) Authorizer() (*authorizer.Authorizer, error) {
	c.gateInit.Do(func() {
		secret, err := c.SigningSecret()
		if err != nil {
			c.initErrors["gate"] = err
			return
		}
		c.gate = authorizer.New(secret, c.Logger())
	})
	if storedErr, exists := c.initErrors["gate"]; exists {
		return nil, storedErr
	}
	return c.gate, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are
// disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. Falls back to a
// no-op implementation when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		business, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		c.businessMetrics = business
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (*user.UseCase, error) {
	c.userUseCaseInit.Do(func() {
		st, err := c.Store()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		secret, err := c.SigningSecret()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		useCase, err := user.NewUseCase(
			st,
			c.Sleeper(),
			secret,
			c.config.TokenExpiration,
			c.config.UserTable,
			c.config.LeagueTable,
			c.Logger(),
		)
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		c.userUseCase = useCase
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// Shutdown performs cleanup of all initialized resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("api server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates the structured JSON logger for the configured level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}
