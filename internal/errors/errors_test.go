package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Run("should include the cause when present", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewDatabaseError("save entries", cause)

		assert.Contains(t, err.Error(), "save entries")
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("should format without a cause", func(t *testing.T) {
		err := NewNotFoundError("debt", "abc123")

		assert.Equal(t, "not_found: debt not found: abc123", err.Error())
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewDatabaseError("load", cause)

	assert.ErrorIs(t, err, cause)
}

func TestAsAppError(t *testing.T) {
	appErr := NewValidationError("bad input", nil)
	wrapped := fmt.Errorf("context: %w", appErr)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.True(t, got.IsType(ErrorTypeValidation))

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsErrorType(t *testing.T) {
	assert.True(t, IsErrorType(NewNotFoundError("debt", "x"), ErrorTypeNotFound))
	assert.False(t, IsErrorType(NewNotFoundError("debt", "x"), ErrorTypeDatabase))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeNotFound))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "should pass through validation messages",
			err:      NewValidationError("duration must be positive", nil),
			expected: "duration must be positive",
		},
		{
			name:     "should pass through not found messages",
			err:      NewNotFoundError("debt", "abc123"),
			expected: "debt not found: abc123",
		},
		{
			name:     "should hide database details",
			err:      NewDatabaseError("save", errors.New("locked")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "should pass through plain errors",
			err:      errors.New("plain"),
			expected: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("debt", "x")))
	assert.True(t, ShouldLogError(NewDatabaseError("save", nil)))
	assert.True(t, ShouldLogError(errors.New("unknown")))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewInvalidInputError("amount", 0, "must be positive").WithContext("command", "payback")

	value, ok := err.GetContext("command")
	require.True(t, ok)
	assert.Equal(t, "payback", value)
}
