package validation

import (
	"timeledger/internal/domain"
)

// Interest rates are daily compounding multipliers; anything below 1.0 would
// make a debt shrink on its own.
const minInterestRate = 1.0

// EntryValidator provides validation for time entry operations
type EntryValidator struct{}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{}
}

// ValidateEntryForCreation validates the inputs for a new time entry
func (ev *EntryValidator) ValidateEntryForCreation(entryType domain.EntryType, duration int, category domain.Category, interestRate float64) error {
	validationError := NewValidationError()

	if !entryType.IsValid() {
		validationError.AddInvalidValueError("type", string(entryType), "must be asset or liability")
	}

	if duration <= 0 {
		validationError.AddInvalidValueError("duration", duration, "must be a positive number of minutes")
	}

	if !category.IsValid() {
		validationError.AddInvalidValueError("category", string(category), "is not a known category")
	}

	// Zero means "use the default for the type"; anything else must be a
	// sane multiplier.
	if interestRate != 0 && interestRate < minInterestRate {
		validationError.AddInvalidRangeError("interest_rate", interestRate, "must be at least 1.0")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePayment validates a payoff amount
func (ev *EntryValidator) ValidatePayment(amountMinutes int) error {
	if amountMinutes <= 0 {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("amount", amountMinutes, "must be a positive number of minutes")
		return validationError
	}
	return nil
}

// ValidateEntryID validates an entry id
func (ev *EntryValidator) ValidateEntryID(id string) error {
	if id == "" {
		validationError := NewValidationError()
		validationError.AddRequiredError("entry_id")
		return validationError
	}
	return nil
}
