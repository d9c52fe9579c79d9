package ledger

import (
	"math"
	"time"

	"timeledger/internal/domain"
)

const secondsPerDay = 86400

// AccruedInterest computes the interest minutes owed on a principal after the
// elapsed time, compounding the per-day rate continuously over fractional
// days. The elapsed time is real-valued: a liability 12 hours old compounds
// at rate^0.5, not rate^0.
func AccruedInterest(principal int, rate float64, since, now time.Time) int {
	elapsedDays := now.Sub(since).Seconds() / secondsPerDay
	multiplier := math.Pow(rate, elapsedDays)
	accrued := int(math.Floor(float64(principal) * (multiplier - 1)))
	if accrued < 0 {
		return 0
	}
	return accrued
}

// accrueEntry returns the entry with its accrued interest recomputed as of
// now. Asset entries and paid-back liabilities are returned unchanged, so a
// paid-back entry keeps its last frozen interest value.
func accrueEntry(e domain.TimeEntry, now time.Time) domain.TimeEntry {
	if !e.IsActiveDebt() {
		return e
	}
	e.AccruedInterest = AccruedInterest(e.Duration, e.InterestRate, e.Timestamp, now)
	return e
}
