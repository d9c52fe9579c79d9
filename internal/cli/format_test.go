package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		expected string
	}{
		{name: "zero", minutes: 0, expected: "0m"},
		{name: "under an hour", minutes: 45, expected: "45m"},
		{name: "exactly one hour", minutes: 60, expected: "1h 0m"},
		{name: "hours and minutes", minutes: 135, expected: "2h 15m"},
		{name: "negative minutes", minutes: -30, expected: "-30m"},
		{name: "negative hours", minutes: -90, expected: "-1h 30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMinutes(tt.minutes))
		})
	}
}
