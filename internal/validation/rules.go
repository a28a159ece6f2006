// Package validation provides request-payload validation rules shared by the
// handlers.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
)

// emailRegex is a basic email validation pattern.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RequireFields checks that every required field is present and non-blank and
// that the payload carries no unexpected extras beyond required+optional.
// Violations come back as a Validation-kind error naming the offending field.
func RequireFields(data map[string]any, handler string, required []string, optional ...string) error {
	if data == nil {
		return invalid(handler, "missing request payload")
	}

	for _, field := range required {
		value, ok := data[field]
		if !ok {
			return invalid(handler, fmt.Sprintf("missing required field %q", field))
		}
		if err := validation.Validate(value, validation.Required); err != nil {
			return invalid(handler, fmt.Sprintf("required field %q cannot be empty", field))
		}
	}

	allowed := make(map[string]struct{}, len(required)+len(optional))
	for _, field := range required {
		allowed[field] = struct{}{}
	}
	for _, field := range optional {
		allowed[field] = struct{}{}
	}
	for field := range data {
		if _, ok := allowed[field]; !ok {
			return invalid(handler, fmt.Sprintf("unexpected field %q", field))
		}
	}

	return nil
}

// RequireQueryParams applies RequireFields semantics to string query parameters.
func RequireQueryParams(params map[string]string, handler string, required ...string) error {
	data := make(map[string]any, len(params))
	for k, v := range params {
		data[k] = v
	}
	return RequireFields(data, handler, required)
}

// EmailAddresses validates a list of recipient addresses, rejecting empty lists
// and malformed entries.
func EmailAddresses(recipients []string, handler string) error {
	if len(recipients) == 0 {
		return invalid(handler, "recipients list is empty")
	}
	for _, addr := range recipients {
		trimmed := strings.TrimSpace(addr)
		if trimmed == "" || !emailRegex.MatchString(trimmed) {
			return invalid(handler, fmt.Sprintf("invalid recipient address %q", addr))
		}
	}
	return nil
}

// StringList coerces a decoded JSON array into a string slice.
func StringList(value any) ([]string, bool) {
	switch list := value.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func invalid(handler, message string) error {
	return apperrors.New(apperrors.KindValidation, message, handler, "validate")
}
