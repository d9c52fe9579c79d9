package ledger

import (
	"time"

	"timeledger/internal/domain"
)

// Stats holds the derived aggregates over the current log. All figures are
// minutes.
type Stats struct {
	TotalAssets            int
	TotalDebt              int
	NetTimeWorth           int
	CurrentInterestAccrued int
	AssetEntries           []domain.TimeEntry
	DebtEntries            []domain.TimeEntry
}

// ComputeStats derives the aggregate figures from the log. Total debt covers
// unpaid liabilities only: principal plus accrued interest. Paid-back entries
// contribute nothing.
func ComputeStats(entries []domain.TimeEntry) Stats {
	var stats Stats
	for _, entry := range entries {
		switch {
		case entry.Type == domain.EntryTypeAsset:
			stats.AssetEntries = append(stats.AssetEntries, entry)
			stats.TotalAssets += entry.Duration
		case entry.IsActiveDebt():
			stats.DebtEntries = append(stats.DebtEntries, entry)
			stats.TotalDebt += entry.TotalOwed()
			stats.CurrentInterestAccrued += entry.AccruedInterest
		}
	}
	stats.NetTimeWorth = stats.TotalAssets - stats.TotalDebt
	return stats
}

// DailySnapshot is one day's point in the weekly series. All figures are
// minutes.
type DailySnapshot struct {
	Date     string
	Boundary time.Time
	Assets   int
	Debt     int
	NetWorth int
}

// ComputeWeeklySnapshots produces one snapshot per day for the 7 days ending
// today, oldest first. Each day's window is cumulative: every entry created
// on or before that day's end (23:59:59.999 local) is included, so totals
// grow across the week rather than resetting daily.
//
// Debt figures use each entry's interest as currently accrued at call time,
// not as of the historical boundary: a past day's debt can include interest
// that only accrued afterward. The series is a projection of today's running
// totals backward by inclusion date, not a true historical ledger.
func ComputeWeeklySnapshots(entries []domain.TimeEntry, now time.Time) []DailySnapshot {
	snapshots := make([]DailySnapshot, 0, 7)

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		boundary := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), day.Location())

		var assets, debt int
		for _, entry := range entries {
			if entry.Timestamp.After(boundary) {
				continue
			}
			switch {
			case entry.Type == domain.EntryTypeAsset:
				assets += entry.Duration
			case entry.IsActiveDebt():
				debt += entry.TotalOwed()
			}
		}

		snapshots = append(snapshots, DailySnapshot{
			Date:     boundary.Format("Mon"),
			Boundary: boundary,
			Assets:   assets,
			Debt:     debt,
			NetWorth: assets - debt,
		})
	}

	return snapshots
}
