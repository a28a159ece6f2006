package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
)

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	typed, ok := apperrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, typed.Kind)
	assert.Equal(t, 400, typed.Status)
}

func TestRequireFields(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]any
		required []string
		optional []string
		wantErr  bool
	}{
		{
			name:     "all present",
			data:     map[string]any{"userId": "1", "leagueId": "2", "password": "x"},
			required: []string{"userId", "leagueId", "password"},
		},
		{
			name:     "missing required",
			data:     map[string]any{"userId": "1"},
			required: []string{"userId", "leagueId"},
			wantErr:  true,
		},
		{
			name:     "blank required",
			data:     map[string]any{"userId": ""},
			required: []string{"userId"},
			wantErr:  true,
		},
		{
			name:     "unexpected extra",
			data:     map[string]any{"userId": "1", "bogus": "y"},
			required: []string{"userId"},
			wantErr:  true,
		},
		{
			name:     "optional allowed",
			data:     map[string]any{"userId": "1", "note": "hello"},
			required: []string{"userId"},
			optional: []string{"note"},
		},
		{
			name:     "nil payload",
			data:     nil,
			required: []string{"userId"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireFields(tt.data, "test", tt.required, tt.optional...)
			if tt.wantErr {
				assertValidationError(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequireQueryParams(t *testing.T) {
	assert.NoError(t, RequireQueryParams(map[string]string{"userId": "42"}, "test", "userId"))
	assertValidationError(t, RequireQueryParams(map[string]string{}, "test", "userId"))
	assertValidationError(t, RequireQueryParams(nil, "test", "userId"))
}

func TestEmailAddresses(t *testing.T) {
	assert.NoError(t, EmailAddresses([]string{"a@example.com", "b@example.org"}, "test"))
	assertValidationError(t, EmailAddresses(nil, "test"))
	assertValidationError(t, EmailAddresses([]string{"not-an-email"}, "test"))
	assertValidationError(t, EmailAddresses([]string{""}, "test"))
}

func TestStringList(t *testing.T) {
	list, ok := StringList([]any{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, list)

	list, ok = StringList([]string{"a"})
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, list)

	_, ok = StringList([]any{"a", 1})
	assert.False(t, ok)

	_, ok = StringList("a")
	assert.False(t, ok)
}
