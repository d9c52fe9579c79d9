package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	t.Run("should describe a single error", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddInvalidValueError("duration", -1, "must be positive")

		assert.Contains(t, ve.Error(), "duration")
		assert.Contains(t, ve.Error(), "must be positive")
	})

	t.Run("should aggregate multiple errors", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("entry_id")
		ve.AddInvalidValueError("amount", 0, "must be positive")

		assert.Contains(t, ve.Error(), "multiple validation errors")
		assert.Contains(t, ve.Error(), "entry_id")
		assert.Contains(t, ve.Error(), "amount")
	})
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddRequiredError("entry_id")
	assert.True(t, ve.HasErrors())
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	ve.AddInvalidValueError("category", "x", "is not a known category")
	ve.AddInvalidRangeError("interest_rate", 0.5, "must be at least 1.0")

	message := ve.GetUserFriendlyMessage()
	assert.Contains(t, message, "Multiple validation errors")
	assert.Contains(t, message, "category")
	assert.Contains(t, message, "interest_rate")
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError()))
	assert.False(t, IsValidationError(assert.AnError))
}
