package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"sort"
	"time"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
)

// ResponseHeaders is the fixed header set every envelope carries, success and
// error paths both.
func ResponseHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin": "*",
		"Strict-Transport-Security":   "max-age=31536000; includeSubDomains; preload",
		"Content-Type":                "application/json",
	}
}

// Envelope is the uniform response shape returned by every operation. Body is a
// JSON string for API-gateway-style callers and a raw value for direct
// invocations.
type Envelope struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            any               `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// Success builds a 200 envelope around the handler's payload.
func Success(body any, fromAPI bool) Envelope {
	return Envelope{
		StatusCode:      http.StatusOK,
		Headers:         ResponseHeaders(),
		Body:            encodeBody(body, fromAPI),
		IsBase64Encoded: false,
	}
}

// Failure builds an error envelope from a typed error, using the error's own
// status and masked payload.
func Failure(err *apperrors.Error, fromAPI bool) Envelope {
	status := err.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return Envelope{
		StatusCode:      status,
		Headers:         ResponseHeaders(),
		Body:            encodeBody(map[string]any{"error": err.Payload()}, fromAPI),
		IsBase64Encoded: false,
	}
}

// encodeBody serializes the payload for gateway callers and passes it through
// untouched for direct invocations. Serialization failures degrade to a fixed
// JSON error body rather than propagating.
func encodeBody(body any, fromAPI bool) any {
	if !fromAPI {
		return body
	}
	encoded, err := json.Marshal(normalize(body))
	if err != nil {
		return `{"error":{"message":"Something went wrong...","status":500}}`
	}
	return string(encoded)
}

// normalize rewrites values encoding/json has no canonical form for: numbers
// from the store arrive as arbitrary-precision values and render as integers
// when exactly whole, timestamps render as RFC 3339, and string sets render as
// sorted arrays.
func normalize(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[k] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = normalize(item)
		}
		return out
	case map[string]struct{}:
		members := make([]string, 0, len(value))
		for member := range value {
			members = append(members, member)
		}
		sort.Strings(members)
		return members
	case json.Number:
		if whole, err := value.Int64(); err == nil {
			return whole
		}
		if f, err := value.Float64(); err == nil {
			return f
		}
		return value.String()
	case float64:
		if value == math.Trunc(value) && math.Abs(value) < math.MaxInt64 {
			return int64(value)
		}
		return value
	case time.Time:
		return value.UTC().Format(time.RFC3339)
	default:
		return v
	}
}
