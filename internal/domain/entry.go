package domain

import (
	"time"
)

// DefaultInterestRate is the daily compounding multiplier applied to new
// liability entries when no explicit rate is given (10% per day).
const DefaultInterestRate = 1.1

// AssetInterestRate is the multiplier for asset entries, which never grow.
const AssetInterestRate = 1.0

// TimeEntry represents a single time transaction in the ledger.
// This is a pure domain model without database-specific concerns.
//
// Duration is the principal in minutes. AccruedInterest is derived: it is
// recomputed from (Duration, InterestRate, Timestamp, now) while the entry is
// an unpaid liability, and frozen once IsPaidBack is set. Asset entries never
// accrue interest.
type TimeEntry struct {
	ID              string
	Type            EntryType
	Duration        int
	Category        Category
	Description     string
	Timestamp       time.Time
	InterestRate    float64
	IsPaidBack      bool
	AccruedInterest int
}

// TotalOwed returns principal plus accrued interest in minutes.
func (e TimeEntry) TotalOwed() int {
	return e.Duration + e.AccruedInterest
}

// IsActiveDebt returns true if the entry is a liability that has not been
// paid back.
func (e TimeEntry) IsActiveDebt() bool {
	return e.Type == EntryTypeLiability && !e.IsPaidBack
}

// IsValid checks if the entry has valid data.
func (e TimeEntry) IsValid() bool {
	if !e.Type.IsValid() {
		return false
	}
	if !e.Category.IsValid() {
		return false
	}
	if e.Duration < 0 || e.AccruedInterest < 0 {
		return false
	}
	if e.Timestamp.IsZero() {
		return false
	}
	return e.InterestRate >= AssetInterestRate
}
