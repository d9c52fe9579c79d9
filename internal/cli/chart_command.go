package cli

import (
	"fmt"
	"text/tabwriter"
)

// ChartCommand handles the chart command
type ChartCommand struct {
	app *App
}

// NewChartCommand creates a new chart command handler
func NewChartCommand(app *App) *ChartCommand {
	return &ChartCommand{app: app}
}

// Execute prints the 7-day snapshot series, oldest day first. Debt columns
// use interest as accrued right now, not as of each day; see the engine's
// snapshot documentation.
func (c *ChartCommand) Execute() error {
	snapshots := c.app.api.WeeklySnapshots()

	w := tabwriter.NewWriter(c.app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tASSETS\tDEBT\tNET WORTH")
	for _, snapshot := range snapshots {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			snapshot.Date,
			FormatMinutes(snapshot.Assets),
			FormatMinutes(snapshot.Debt),
			FormatMinutes(snapshot.NetWorth),
		)
	}
	return w.Flush()
}
