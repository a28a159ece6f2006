// Package errors provides the closed error taxonomy used by every handler in the
// application. Each kind carries a fixed HTTP status; handlers construct typed
// errors at the boundary where a collaborator fails, and the dispatch wrapper
// turns whatever reaches it into a uniform error envelope.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/domgiordano/xomper-back-end/internal/masking"
)

// Kind identifies a category of failure. The set is closed: new failure modes
// must map onto one of these kinds.
type Kind string

const (
	// KindAuthorization indicates a missing, invalid, or expired credential.
	KindAuthorization Kind = "authorization"

	// KindValidation indicates caller input with missing or malformed fields.
	KindValidation Kind = "validation"

	// KindNotFound indicates a referenced record absent from the store.
	KindNotFound Kind = "not_found"

	// KindStoreFailure indicates the key-value store collaborator failed.
	KindStoreFailure Kind = "store_failure"

	// KindUpstreamAPIFailure indicates the third-party data API failed.
	KindUpstreamAPIFailure Kind = "upstream_api_failure"

	// KindEmailFailure indicates the email-delivery collaborator failed.
	KindEmailFailure Kind = "email_failure"

	// KindInternal covers anything uncategorized.
	KindInternal Kind = "internal"
)

// Status returns the HTTP status code fixed by the kind.
func (k Kind) Status() int {
	switch k {
	case KindAuthorization:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstreamAPIFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is a typed failure carrying its origin subsystem and operation.
// Construction is pure: nothing is logged until the dispatch wrapper decides to.
type Error struct {
	Kind     Kind
	Message  string
	Handler  string
	Function string
	Status   int
	Details  map[string]any
}

// New creates an Error of the given kind. The status is fixed by the kind.
func New(kind Kind, message, handler, function string) *Error {
	return &Error{
		Kind:     kind,
		Message:  message,
		Handler:  handler,
		Function: function,
		Status:   kind.Status(),
	}
}

// WithDetails attaches non-sensitive context to the error and returns it.
// Details are masked again at serialization time, so an accidentally sensitive
// entry still never reaches a caller or a log line.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s.%s]: %s", e.Kind, e.Handler, e.Function, e.Message)
}

// Payload returns the caller-visible representation of the error. Details pass
// through the masking scrub so no sensitive field name or oversized value is
// ever serialized.
func (e *Error) Payload() map[string]any {
	payload := map[string]any{
		"message":  masking.MaskString(e.Message),
		"handler":  e.Handler,
		"function": e.Function,
		"status":   e.Status,
	}
	if len(e.Details) > 0 {
		payload["details"] = masking.Mask(e.Details)
	}
	return payload
}

// AsError unwraps err into a typed *Error when one exists in its tree.
func AsError(err error) (*Error, bool) {
	var typed *Error
	if errors.As(err, &typed) {
		return typed, true
	}
	return nil, false
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
