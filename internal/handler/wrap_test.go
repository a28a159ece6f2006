package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func apiEvent() Event {
	return Event{
		Path:       "/user/data",
		HTTPMethod: "GET",
		Headers:    map[string]string{"Authorization": "Bearer abc"},
		Body:       "",
	}
}

func decodeErrorBody(t *testing.T, envelope Envelope) map[string]any {
	t.Helper()
	body, ok := envelope.Body.(string)
	require.True(t, ok, "API envelopes carry string bodies")
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	errObj, ok := decoded["error"].(map[string]any)
	require.True(t, ok)
	return errObj
}

func TestWrap_TypedError(t *testing.T) {
	fn := Wrap("user/login", testLogger(), func(ctx context.Context, event Event) (any, error) {
		return nil, apperrors.New(apperrors.KindAuthorization, "bad token", "user/login", "Login")
	})

	envelope := fn(context.Background(), apiEvent())

	assert.Equal(t, 401, envelope.StatusCode)
	assert.False(t, envelope.IsBase64Encoded)
	assert.Equal(t, "application/json", envelope.Headers["Content-Type"])
	assert.Equal(t, "*", envelope.Headers["Access-Control-Allow-Origin"])

	errObj := decodeErrorBody(t, envelope)
	assert.Equal(t, "bad token", errObj["message"])
	assert.Equal(t, float64(401), errObj["status"])
}

func TestWrap_UnexpectedError(t *testing.T) {
	fn := Wrap("league/data", testLogger(), func(ctx context.Context, event Event) (any, error) {
		return nil, errors.New("connection reset by peer")
	})

	envelope := fn(context.Background(), apiEvent())

	assert.Equal(t, 500, envelope.StatusCode)
	errObj := decodeErrorBody(t, envelope)
	assert.Equal(t, "connection reset by peer", errObj["message"])
	details := errObj["details"].(map[string]any)
	assert.Equal(t, "connection reset by peer", details["cause"])
}

func TestWrap_Success(t *testing.T) {
	fn := Wrap("player/data", testLogger(), func(ctx context.Context, event Event) (any, error) {
		return map[string]any{"ok": true}, nil
	})

	envelope := fn(context.Background(), apiEvent())

	assert.Equal(t, 200, envelope.StatusCode)
	assert.Equal(t, `{"ok":true}`, envelope.Body)
}

func TestWrap_SuccessDirectInvocation(t *testing.T) {
	fn := Wrap("email/rule-proposal", testLogger(), func(ctx context.Context, event Event) (any, error) {
		return map[string]any{"successfulEmails": 3, "failedEmails": 0}, nil
	})

	// Direct invocations carry a map body and get their payload back unencoded.
	event := Event{Body: map[string]any{"proposal": map[string]any{}}}
	envelope := fn(context.Background(), event)

	assert.Equal(t, 200, envelope.StatusCode)
	body, ok := envelope.Body.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3, body["successfulEmails"])
}

func TestWrap_PanicBecomesEnvelope(t *testing.T) {
	fn := Wrap("user/data", testLogger(), func(ctx context.Context, event Event) (any, error) {
		panic("nil map write")
	})

	envelope := fn(context.Background(), apiEvent())

	assert.Equal(t, 500, envelope.StatusCode)
	errObj := decodeErrorBody(t, envelope)
	assert.Equal(t, "nil map write", errObj["message"])
}

func TestWrap_NeverLeaksCredentialInBody(t *testing.T) {
	fn := Wrap("user/login", testLogger(), func(ctx context.Context, event Event) (any, error) {
		return nil, apperrors.New(apperrors.KindValidation, "missing fields", "user/login", "Login").
			WithDetails(map[string]any{"password": "hunter2", "field": "leagueId"})
	})

	envelope := fn(context.Background(), apiEvent())

	body := envelope.Body.(string)
	assert.NotContains(t, body, "hunter2")
	assert.Contains(t, body, "leagueId")
}

func TestLogRequestContext_NeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		logRequestContext(testLogger(), "h", Event{Body: make(chan int)})
	})
}
