package ledger

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"timeledger/internal/domain"
)

var seedAssetCategories = []domain.Category{
	domain.CategoryDeepWork,
	domain.CategoryExercise,
	domain.CategoryLearning,
}

var seedLiabilityCategories = []domain.Category{
	domain.CategorySocialMedia,
	domain.CategoryStreaming,
	domain.CategoryGaming,
	domain.CategoryProcrastination,
}

// SeedEntries generates a demo log spanning the past week, used when no
// saved log exists. Each day gets a random mix of assets and liabilities;
// liabilities carry the given daily rate with interest already accrued for
// their age so the ledger looks lived-in from the first run.
func SeedEntries(now time.Time, liabilityRate float64) []domain.TimeEntry {
	if liabilityRate < 1 {
		liabilityRate = domain.DefaultInterestRate
	}

	var entries []domain.TimeEntry

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)

		if rand.Float64() > 0.3 {
			entries = append(entries, domain.TimeEntry{
				ID:              uuid.NewString(),
				Type:            domain.EntryTypeAsset,
				Duration:        rand.Intn(120) + 30,
				Category:        seedAssetCategories[rand.Intn(len(seedAssetCategories))],
				Timestamp:       day,
				InterestRate:    domain.AssetInterestRate,
				IsPaidBack:      false,
				AccruedInterest: 0,
			})
		}

		if rand.Float64() > 0.4 {
			duration := rand.Intn(90) + 15
			multiplier := math.Pow(liabilityRate, float64(i))
			entries = append(entries, domain.TimeEntry{
				ID:              uuid.NewString(),
				Type:            domain.EntryTypeLiability,
				Duration:        duration,
				Category:        seedLiabilityCategories[rand.Intn(len(seedLiabilityCategories))],
				Timestamp:       day,
				InterestRate:    liabilityRate,
				IsPaidBack:      rand.Float64() > 0.6,
				AccruedInterest: int(math.Floor(float64(duration) * (multiplier - 1))),
			})
		}
	}

	return entries
}
