// Package handler defines the function contract shared by every caller-facing
// operation: an opaque inbound event, a uniform response envelope, and a dispatch
// wrapper that guarantees failures are logged (masked) and shaped rather than
// propagated.
package handler

import (
	"encoding/json"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
)

// Event is the inbound invocation payload. Body is a JSON string when the call
// arrives through the API gateway and a map when invoked directly; only the
// fields listed here are ever read, the rest of the platform payload is ignored.
type Event struct {
	Path                  string            `json:"path"`
	HTTPMethod            string            `json:"httpMethod"`
	Headers               map[string]string `json:"headers"`
	QueryStringParameters map[string]string `json:"queryStringParameters"`
	Body                  any               `json:"body"`
}

// FromAPI reports whether the event arrived through an API-gateway-style caller.
// Gateway callers deliver the body as a JSON string; direct invocations pass a
// map through unserialized.
func (e Event) FromAPI() bool {
	_, isMap := e.Body.(map[string]any)
	return !isMap
}

// ParseBody returns the request body as a map, decoding the JSON string form
// when needed. A missing body yields an empty map; an undecodable body yields a
// validation error.
func (e Event) ParseBody() (map[string]any, error) {
	switch body := e.Body.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return body, nil
	case string:
		if body == "" {
			return map[string]any{}, nil
		}
		var parsed map[string]any
		if err := json.Unmarshal([]byte(body), &parsed); err != nil {
			return nil, apperrors.New(
				apperrors.KindValidation, "request body is not valid JSON", "handler", "ParseBody",
			)
		}
		return parsed, nil
	default:
		return nil, apperrors.New(
			apperrors.KindValidation, "unsupported request body type", "handler", "ParseBody",
		)
	}
}
