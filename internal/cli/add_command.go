package cli

import (
	"fmt"
	"strconv"

	"timeledger/internal/domain"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute records a new time entry. entryType and durationArg are required;
// rateArg may be empty, in which case the type's default rate applies.
func (c *AddCommand) Execute(entryType, durationArg, categoryArg, description, rateArg string) error {
	duration, err := strconv.Atoi(durationArg)
	if err != nil {
		return fmt.Errorf("invalid duration %q: expected whole minutes", durationArg)
	}

	var rate float64
	if rateArg != "" {
		rate, err = ParseRate(rateArg)
		if err != nil {
			return err
		}
	}

	entry, err := c.app.api.AddEntry(domain.EntryType(entryType), duration, domain.Category(categoryArg), description, rate)
	if err != nil {
		return c.errorHandler.Handle("add entry", err)
	}

	fmt.Fprintf(c.app.out, "Added %s: %s of %s (id: %s)\n",
		entry.Type, FormatMinutes(entry.Duration), entry.Category.Label(), entry.ID)
	if entry.Type == domain.EntryTypeLiability {
		fmt.Fprintf(c.app.out, "Borrowed time compounds at %.0f%% per day until paid back\n",
			(entry.InterestRate-1)*100)
	}
	return nil
}
