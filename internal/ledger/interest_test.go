package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"timeledger/internal/domain"
)

func TestAccruedInterest(t *testing.T) {
	t0 := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		principal int
		rate      float64
		elapsed   time.Duration
		expected  int
	}{
		{
			name:      "should accrue 12 minutes on 60 at 10% daily after two days",
			principal: 60,
			rate:      1.1,
			elapsed:   48 * time.Hour,
			expected:  12, // floor(60 * (1.1^2 - 1)) = floor(12.6)
		},
		{
			name:      "should accrue nothing at creation time",
			principal: 60,
			rate:      1.1,
			elapsed:   0,
			expected:  0,
		},
		{
			name:      "should compound over fractional days",
			principal: 1000,
			rate:      1.1,
			elapsed:   12 * time.Hour,
			expected:  48, // floor(1000 * (1.1^0.5 - 1)) = floor(48.80...)
		},
		{
			name:      "should floor fractional minutes",
			principal: 10,
			rate:      1.1,
			elapsed:   24 * time.Hour,
			expected:  1, // floor(10 * 0.1)
		},
		{
			name:      "should accrue nothing on a flat rate",
			principal: 500,
			rate:      1.0,
			elapsed:   10 * 24 * time.Hour,
			expected:  0,
		},
		{
			name:      "should clamp to zero when now precedes the entry",
			principal: 60,
			rate:      1.1,
			elapsed:   -24 * time.Hour,
			expected:  0,
		},
		{
			name:      "should accrue nothing on zero principal",
			principal: 0,
			rate:      1.1,
			elapsed:   48 * time.Hour,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AccruedInterest(tt.principal, tt.rate, t0, t0.Add(tt.elapsed))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAccruedInterest_Monotonic(t *testing.T) {
	t0 := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	prev := 0
	for hours := 1; hours <= 240; hours += 7 {
		got := AccruedInterest(90, 1.1, t0, t0.Add(time.Duration(hours)*time.Hour))
		assert.GreaterOrEqual(t, got, prev, "interest decreased at %dh", hours)
		prev = got
	}
}

func TestAccrueEntry(t *testing.T) {
	t0 := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	now := t0.Add(48 * time.Hour)

	tests := []struct {
		name     string
		entry    domain.TimeEntry
		expected int
	}{
		{
			name: "should recompute interest for an unpaid liability",
			entry: domain.TimeEntry{
				Type:         domain.EntryTypeLiability,
				Duration:     60,
				Timestamp:    t0,
				InterestRate: 1.1,
			},
			expected: 12,
		},
		{
			name: "should leave an asset untouched",
			entry: domain.TimeEntry{
				Type:         domain.EntryTypeAsset,
				Duration:     60,
				Timestamp:    t0,
				InterestRate: 1.0,
			},
			expected: 0,
		},
		{
			name: "should leave a paid-back liability frozen",
			entry: domain.TimeEntry{
				Type:            domain.EntryTypeLiability,
				Duration:        60,
				Timestamp:       t0,
				InterestRate:    1.1,
				IsPaidBack:      true,
				AccruedInterest: 5,
			},
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accrueEntry(tt.entry, now)
			assert.Equal(t, tt.expected, got.AccruedInterest)
		})
	}
}
