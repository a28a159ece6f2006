// Package masking redacts sensitive values from arbitrary structures before they
// reach logs or caller-visible payloads. It is the single scrubbing pass shared by
// the error payload builder and the request-context logger.
package masking

import "strings"

// MaskLiteral replaces any value whose key looks sensitive.
const MaskLiteral = "*****"

// Strings longer than maxStringLength are truncated to a prefix+suffix window.
// This bounds log volume and keeps a full encoded credential from slipping
// through under a harmless-looking key name.
const (
	maxStringLength = 100
	truncatePrefix  = 40
	truncateSuffix  = 20
	elisionMarker   = "..."
)

// sensitiveSubstrings is matched case-insensitively against map keys. The match
// is deliberately broad: a false positive like "monkeyName" costs nothing, a
// false negative leaks a credential.
var sensitiveSubstrings = []string{"token", "password", "secret", "key", "auth"}

// IsSensitiveKey reports whether a map key should have its value replaced by
// MaskLiteral.
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveSubstrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// Mask returns a deep copy of v with sensitive map values replaced and long
// strings truncated. The input is never mutated. Masking is idempotent: masking
// an already-masked structure yields an equal structure.
func Mask(v any) any {
	switch value := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(value))
		for k, item := range value {
			if IsSensitiveKey(k) {
				masked[k] = MaskLiteral
				continue
			}
			masked[k] = Mask(item)
		}
		return masked
	case map[string]string:
		masked := make(map[string]any, len(value))
		for k, item := range value {
			if IsSensitiveKey(k) {
				masked[k] = MaskLiteral
				continue
			}
			masked[k] = MaskString(item)
		}
		return masked
	case []any:
		masked := make([]any, len(value))
		for i, item := range value {
			masked[i] = Mask(item)
		}
		return masked
	case []string:
		masked := make([]any, len(value))
		for i, item := range value {
			masked[i] = MaskString(item)
		}
		return masked
	case string:
		return MaskString(value)
	default:
		return v
	}
}

// MaskString truncates strings at maxStringLength, keeping a short prefix and
// suffix around an elision marker. Slicing happens on runes so a multibyte
// character is never split into invalid UTF-8.
func MaskString(s string) string {
	runes := []rune(s)
	if len(runes) < maxStringLength {
		return s
	}
	return string(runes[:truncatePrefix]) + elisionMarker + string(runes[len(runes)-truncateSuffix:])
}
