package metrics

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("xomper")

	require.NoError(t, err)
	assert.NotNil(t, provider.meterProvider)
	assert.NotNil(t, provider.exporter)
	assert.NotNil(t, provider.registry)
	assert.NotNil(t, provider.Handler())
	assert.NotNil(t, provider.MeterProvider())

	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestProvider_ShutdownNilMeterProvider(t *testing.T) {
	provider := &Provider{meterProvider: nil}
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestBusinessMetrics_RecordsWithoutError(t *testing.T) {
	provider, err := NewProvider("xomper")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	business, err := NewBusinessMetrics(provider.MeterProvider(), "xomper")
	require.NoError(t, err)

	ctx := context.Background()
	business.RecordOperation(ctx, "user_login", 200)
	business.RecordDuration(ctx, "user_login", 42*time.Millisecond, 200)
	business.RecordDecision(ctx, "Allow")
	business.RecordDecision(ctx, "Deny")
	business.RecordEmails(ctx, "email_taxi", 9, 1)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	business := NewNoOpBusinessMetrics()

	ctx := context.Background()
	business.RecordOperation(ctx, "user_login", 500)
	business.RecordDuration(ctx, "user_login", time.Second, 500)
	business.RecordDecision(ctx, "Deny")
	business.RecordEmails(ctx, "email_taxi", 0, 0)
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	provider, err := NewProvider("xomper")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "xomper"))
	router.GET("/user/data", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/user/data", nil))

	assert.Equal(t, 200, recorder.Code)
}
