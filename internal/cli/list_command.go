package cli

import (
	"fmt"
	"text/tabwriter"

	"timeledger/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute lists entries, most recent first. With typeFilter set to "asset"
// or "liability" only entries of that type are shown.
func (c *ListCommand) Execute(typeFilter string) error {
	entries := c.app.api.Entries()

	if typeFilter != "" {
		filtered := make([]domain.TimeEntry, 0, len(entries))
		for _, entry := range entries {
			if entry.Type == domain.EntryType(typeFilter) {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}

	if len(entries) == 0 {
		fmt.Fprintln(c.app.out, "No entries found")
		return nil
	}

	w := tabwriter.NewWriter(c.app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tCATEGORY\tWHEN\tDURATION\tINTEREST\tSTATUS")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.ID,
			entry.Type,
			entry.Category.Label(),
			entry.Timestamp.Format(c.app.config.Display.TimeFormat),
			FormatMinutes(entry.Duration),
			FormatMinutes(entry.AccruedInterest),
			entryStatus(entry),
		)
	}
	return w.Flush()
}

func entryStatus(entry domain.TimeEntry) string {
	switch {
	case entry.Type == domain.EntryTypeAsset:
		return "invested"
	case entry.IsPaidBack:
		return "paid back"
	default:
		return "outstanding"
	}
}
