package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validEntry() TimeEntry {
	return TimeEntry{
		ID:           "abc123",
		Type:         EntryTypeLiability,
		Duration:     60,
		Category:     CategorySocialMedia,
		Timestamp:    time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		InterestRate: DefaultInterestRate,
	}
}

func TestTimeEntry_TotalOwed(t *testing.T) {
	entry := validEntry()
	entry.Duration = 100
	entry.AccruedInterest = 20

	assert.Equal(t, 120, entry.TotalOwed())
}

func TestTimeEntry_IsActiveDebt(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*TimeEntry)
		expected bool
	}{
		{
			name:     "should be true for an unpaid liability",
			mutate:   func(e *TimeEntry) {},
			expected: true,
		},
		{
			name:     "should be false once paid back",
			mutate:   func(e *TimeEntry) { e.IsPaidBack = true },
			expected: false,
		},
		{
			name: "should be false for an asset",
			mutate: func(e *TimeEntry) {
				e.Type = EntryTypeAsset
				e.Category = CategoryDeepWork
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(&entry)
			assert.Equal(t, tt.expected, entry.IsActiveDebt())
		})
	}
}

func TestTimeEntry_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*TimeEntry)
		expected bool
	}{
		{
			name:     "should accept a well-formed entry",
			mutate:   func(e *TimeEntry) {},
			expected: true,
		},
		{
			name:     "should reject an unknown type",
			mutate:   func(e *TimeEntry) { e.Type = "loan" },
			expected: false,
		},
		{
			name:     "should reject an unknown category",
			mutate:   func(e *TimeEntry) { e.Category = "doomscrolling" },
			expected: false,
		},
		{
			name:     "should reject negative duration",
			mutate:   func(e *TimeEntry) { e.Duration = -1 },
			expected: false,
		},
		{
			name:     "should accept zero duration after payoff clamping",
			mutate:   func(e *TimeEntry) { e.Duration = 0 },
			expected: true,
		},
		{
			name:     "should reject negative accrued interest",
			mutate:   func(e *TimeEntry) { e.AccruedInterest = -1 },
			expected: false,
		},
		{
			name:     "should reject a zero timestamp",
			mutate:   func(e *TimeEntry) { e.Timestamp = time.Time{} },
			expected: false,
		},
		{
			name:     "should reject a shrinking interest rate",
			mutate:   func(e *TimeEntry) { e.InterestRate = 0.9 },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(&entry)
			assert.Equal(t, tt.expected, entry.IsValid())
		})
	}
}
