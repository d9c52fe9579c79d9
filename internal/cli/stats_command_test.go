package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeledger/internal/domain"
)

func TestStatsCommand_Execute(t *testing.T) {
	t.Run("should print zeroes for an empty log", func(t *testing.T) {
		app, _, out := setupTestApp(t)

		require.NoError(t, NewStatsCommand(app).Execute())

		output := out.String()
		assert.Contains(t, output, "Total assets:     0m")
		assert.Contains(t, output, "Net time worth:   0m")
		assert.Contains(t, output, "Active debts:     0")
	})

	t.Run("should print the aggregate figures", func(t *testing.T) {
		app, clock, out := setupTestApp(t)
		_, err := app.api.AddEntry(domain.EntryTypeAsset, 200, domain.CategoryDeepWork, "", 0)
		require.NoError(t, err)
		_, err = app.api.AddEntry(domain.EntryTypeLiability, 100, domain.CategoryStreaming, "", 0)
		require.NoError(t, err)
		clock.Advance(48 * time.Hour)

		require.NoError(t, NewStatsCommand(app).Execute())

		output := out.String()
		assert.Contains(t, output, "Total assets:     3h 20m")
		assert.Contains(t, output, "Total debt:       2h 1m")
		assert.Contains(t, output, "Interest accrued: 21m")
		assert.Contains(t, output, "Net time worth:   1h 19m")
		assert.Contains(t, output, "Active debts:     1")
	})

	t.Run("should print a negative net worth", func(t *testing.T) {
		app, _, out := setupTestApp(t)
		_, err := app.api.AddEntry(domain.EntryTypeLiability, 90, domain.CategoryProcrastination, "", 0)
		require.NoError(t, err)

		require.NoError(t, NewStatsCommand(app).Execute())

		assert.Contains(t, out.String(), "Net time worth:   -1h 30m")
	})
}

func TestChartCommand_Execute(t *testing.T) {
	app, clock, out := setupTestApp(t)
	_, err := app.api.AddEntry(domain.EntryTypeAsset, 60, domain.CategoryLearning, "", 0)
	require.NoError(t, err)
	clock.Advance(24 * time.Hour)

	require.NoError(t, NewChartCommand(app).Execute())

	output := out.String()
	assert.Contains(t, output, "DAY")
	assert.Contains(t, output, "NET WORTH")
	// The clock starts on a Monday and advances one day, so the window runs
	// Wed through Tue and the entry shows up on Monday's row onward
	assert.Contains(t, output, "Mon")
	assert.Contains(t, output, "Tue")
	assert.Contains(t, output, "1h 0m")
}
