package sqlite

import "time"

// Entry represents a time entry row in the entries table.
type Entry struct {
	ID              string
	EntryType       string
	Duration        int
	Category        string
	Description     string
	Timestamp       time.Time
	InterestRate    float64
	IsPaidBack      bool
	AccruedInterest int
}
