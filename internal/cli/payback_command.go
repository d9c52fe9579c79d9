package cli

import (
	"fmt"
	"strconv"
)

// PaybackCommand handles the payback command
type PaybackCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewPaybackCommand creates a new payback command handler
func NewPaybackCommand(app *App) *PaybackCommand {
	return &PaybackCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute applies a payment against a debt. With session set, one 25-minute
// work session is paid instead of an explicit amount.
func (c *PaybackCommand) Execute(entryID, amountArg string, session bool) error {
	if session {
		paid, err := c.app.api.LiquidateSession(entryID)
		if err != nil {
			return c.errorHandler.Handle("pay back debt", err)
		}
		fmt.Fprintf(c.app.out, "Paid back %s against debt %s\n", FormatMinutes(paid), entryID)
		return c.printRemaining(entryID)
	}

	amount, err := strconv.Atoi(amountArg)
	if err != nil {
		return fmt.Errorf("invalid amount %q: expected whole minutes", amountArg)
	}

	if err := c.app.api.PayOffDebt(entryID, amount); err != nil {
		return c.errorHandler.Handle("pay back debt", err)
	}

	fmt.Fprintf(c.app.out, "Paid back %s against debt %s\n", FormatMinutes(amount), entryID)
	return c.printRemaining(entryID)
}

// printRemaining reports what is still owed on the entry, if anything.
func (c *PaybackCommand) printRemaining(entryID string) error {
	for _, debt := range c.app.api.ActiveDebts() {
		if debt.ID == entryID {
			fmt.Fprintf(c.app.out, "Still owed: %s (%s principal + %s interest)\n",
				FormatMinutes(debt.TotalOwed()), FormatMinutes(debt.Duration), FormatMinutes(debt.AccruedInterest))
			return nil
		}
	}
	fmt.Fprintln(c.app.out, "Debt cleared")
	return nil
}
