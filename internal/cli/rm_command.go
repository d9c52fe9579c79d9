package cli

import (
	"fmt"
)

// RemoveCommand handles the rm command
type RemoveCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewRemoveCommand creates a new rm command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute removes an entry from the ledger. Removing an unknown id is a
// no-op, matching the engine's best-effort contract.
func (c *RemoveCommand) Execute(entryID string) error {
	if err := c.app.api.DeleteEntry(entryID); err != nil {
		return c.errorHandler.Handle("remove entry", err)
	}

	fmt.Fprintf(c.app.out, "Removed entry %s\n", entryID)
	return nil
}
