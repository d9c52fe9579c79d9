package cli

import (
	"fmt"
)

// FormatMinutes formats a minute count as a human-readable duration
func FormatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}

	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%s%dh %dm", sign, hours, mins)
	}
	return fmt.Sprintf("%s%dm", sign, mins)
}
