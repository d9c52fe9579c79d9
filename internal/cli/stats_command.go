package cli

import (
	"fmt"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app *App
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app}
}

// Execute prints the ledger's aggregate figures
func (c *StatsCommand) Execute() error {
	stats := c.app.api.Stats()

	fmt.Fprintf(c.app.out, "Total assets:     %s\n", FormatMinutes(stats.TotalAssets))
	fmt.Fprintf(c.app.out, "Total debt:       %s\n", FormatMinutes(stats.TotalDebt))
	fmt.Fprintf(c.app.out, "Interest accrued: %s\n", FormatMinutes(stats.CurrentInterestAccrued))
	fmt.Fprintf(c.app.out, "Net time worth:   %s\n", FormatMinutes(stats.NetTimeWorth))
	fmt.Fprintf(c.app.out, "Active debts:     %d\n", len(stats.DebtEntries))
	return nil
}
