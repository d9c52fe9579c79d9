package cli

import (
	"fmt"
	"text/tabwriter"
)

// DebtsCommand handles the debts command
type DebtsCommand struct {
	app *App
}

// NewDebtsCommand creates a new debts command handler
func NewDebtsCommand(app *App) *DebtsCommand {
	return &DebtsCommand{app: app}
}

// Execute lists all active debts, largest total owed first
func (c *DebtsCommand) Execute() error {
	debts := c.app.api.ActiveDebts()
	if len(debts) == 0 {
		fmt.Fprintln(c.app.out, "No active debts")
		return nil
	}

	w := tabwriter.NewWriter(c.app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tBORROWED\tPRINCIPAL\tINTEREST\tTOTAL OWED")
	for _, debt := range debts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			debt.ID,
			debt.Category.Label(),
			debt.Timestamp.Format(c.app.config.Display.TimeFormat),
			FormatMinutes(debt.Duration),
			FormatMinutes(debt.AccruedInterest),
			FormatMinutes(debt.TotalOwed()),
		)
	}
	return w.Flush()
}
