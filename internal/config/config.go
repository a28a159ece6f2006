// Package config provides application configuration through environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// AWSRegion is the region for the DynamoDB, SES, and SSM clients.
	AWSRegion string
	// AWSAccountID is the account that owns the API Gateway deployment.
	AWSAccountID string
	// APIGatewayID is the REST API identifier used when synthesizing method ARNs.
	APIGatewayID string
	// APIGatewayStage is the deployed stage used when synthesizing method ARNs.
	APIGatewayStage string

	// SigningSecret is the symmetric key for session token verification. Used
	// directly when non-empty; otherwise SigningSecretSSMName is consulted.
	SigningSecret string
	// SigningSecretSSMName is the SSM parameter holding the signing secret.
	SigningSecretSSMName string
	// TokenExpiration is how long minted session tokens stay valid.
	TokenExpiration time.Duration

	// UserTable, LeagueTable, and PlayerTable are the DynamoDB table names.
	UserTable   string
	LeagueTable string
	PlayerTable string

	// FromEmail is the verified SES sender address.
	FromEmail string
	// SiteURL is the public product URL linked from transactional emails.
	SiteURL string

	// SleeperBaseURL is the base URL of the Sleeper fantasy-sports API.
	SleeperBaseURL string
	// SleeperRetryMax is the retry budget for Sleeper API calls.
	SleeperRetryMax int

	// RateLimitEnabled indicates whether request rate limiting is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// AWS / API Gateway
		AWSRegion:       env.GetString("AWS_REGION", "us-east-1"),
		AWSAccountID:    env.GetString("AWS_ACCOUNT_ID", ""),
		APIGatewayID:    env.GetString("API_GATEWAY_ID", ""),
		APIGatewayStage: env.GetString("API_GATEWAY_STAGE", "prod"),

		// Session tokens
		SigningSecret:        env.GetString("API_SECRET_KEY", ""),
		SigningSecretSSMName: env.GetString("API_SECRET_KEY_SSM_NAME", "/xomper/api/API_SECRET_KEY"),
		TokenExpiration:      env.GetDuration("TOKEN_EXPIRATION_SECONDS", 86400, time.Second),

		// Tables
		UserTable:   env.GetString("USER_DATA_TABLE_NAME", "xomper-user-data"),
		LeagueTable: env.GetString("LEAGUE_DATA_TABLE_NAME", "xomper-league-data"),
		PlayerTable: env.GetString("PLAYER_DATA_TABLE_NAME", "xomper-player-data"),

		// Email
		FromEmail: env.GetString("FROM_EMAIL", "noreply@xomper.xomware.com"),
		SiteURL:   env.GetString("SITE_URL", "https://xomper.xomware.com"),

		// Sleeper API
		SleeperBaseURL:  env.GetString("SLEEPER_BASE_URL", "https://api.sleeper.app/v1"),
		SleeperRetryMax: env.GetInt("SLEEPER_RETRY_MAX", 3),

		// Rate limiting
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", true),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", "*"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "xomper"),
		MetricsPort:      env.GetInt("METRICS_PORT", 9090),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	default:
		return "release"
	}
}

// MethodArn synthesizes the API Gateway method ARN for a verb and path, the
// same identifier the hosting platform would present to the authorizer.
func (c *Config) MethodArn(method, path string) string {
	return fmt.Sprintf(
		"arn:aws:execute-api:%s:%s:%s/%s/%s%s",
		c.AWSRegion, c.AWSAccountID, c.APIGatewayID, c.APIGatewayStage, method, path,
	)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
