package handler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
)

func TestSuccess_EncodesForAPICallers(t *testing.T) {
	envelope := Success(map[string]any{"userId": "42"}, true)

	assert.Equal(t, 200, envelope.StatusCode)
	assert.Equal(t, `{"userId":"42"}`, envelope.Body)
	assert.False(t, envelope.IsBase64Encoded)
	assert.Equal(t, "application/json", envelope.Headers["Content-Type"])
}

func TestSuccess_PassesThroughForDirectCallers(t *testing.T) {
	payload := map[string]any{"userId": "42"}
	envelope := Success(payload, false)

	assert.Equal(t, payload, envelope.Body)
}

func TestFailure_BuildsErrorBody(t *testing.T) {
	err := apperrors.New(apperrors.KindNotFound, "no such player", "player/data", "Get")
	envelope := Failure(err, true)

	assert.Equal(t, 404, envelope.StatusCode)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(envelope.Body.(string)), &decoded))
	errObj := decoded["error"].(map[string]any)
	assert.Equal(t, "no such player", errObj["message"])
	assert.Equal(t, "player/data", errObj["handler"])
}

func TestNormalize_WholeNumbersRenderAsIntegers(t *testing.T) {
	body := map[string]any{
		"rank":   float64(4),       // whole store number
		"points": 112.5,            // fractional store number
		"count":  json.Number("7"), // attribute-value number
		"ratio":  json.Number("0.25"),
	}

	encoded := encodeBody(body, true).(string)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(encoded), &decoded))
	assert.Contains(t, encoded, `"rank":4`)
	assert.NotContains(t, encoded, `"rank":4.0`)
	assert.Contains(t, encoded, `"points":112.5`)
	assert.Contains(t, encoded, `"count":7`)
	assert.Contains(t, encoded, `"ratio":0.25`)
}

func TestNormalize_Timestamps(t *testing.T) {
	ts := time.Date(2024, 9, 1, 13, 30, 0, 0, time.UTC)
	encoded := encodeBody(map[string]any{"updatedAt": ts}, true).(string)

	assert.Contains(t, encoded, `"updatedAt":"2024-09-01T13:30:00Z"`)
}

func TestNormalize_SetsRenderSorted(t *testing.T) {
	encoded := encodeBody(map[string]any{
		"userIds": map[string]struct{}{"b": {}, "a": {}, "c": {}},
	}, true).(string)

	assert.Contains(t, encoded, `"userIds":["a","b","c"]`)
}

func TestNormalize_NestedStructures(t *testing.T) {
	body := map[string]any{
		"rosters": []any{
			map[string]any{"wins": float64(10), "pointsFor": 1301.25},
		},
	}
	encoded := encodeBody(body, true).(string)

	assert.Contains(t, encoded, `"wins":10`)
	assert.Contains(t, encoded, `"pointsFor":1301.25`)
}

func TestEvent_FromAPI(t *testing.T) {
	assert.True(t, Event{Body: `{"a":1}`}.FromAPI())
	assert.True(t, Event{Body: nil}.FromAPI())
	assert.False(t, Event{Body: map[string]any{"a": 1}}.FromAPI())
}

func TestEvent_ParseBody(t *testing.T) {
	body, err := Event{Body: `{"userId":"42"}`}.ParseBody()
	require.NoError(t, err)
	assert.Equal(t, "42", body["userId"])

	body, err = Event{Body: map[string]any{"userId": "42"}}.ParseBody()
	require.NoError(t, err)
	assert.Equal(t, "42", body["userId"])

	body, err = Event{}.ParseBody()
	require.NoError(t, err)
	assert.Empty(t, body)

	_, err = Event{Body: "not json"}.ParseBody()
	require.Error(t, err)
	typed, ok := apperrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, typed.Kind)
}
