package cli

import (
	"context"
	"fmt"
)

// WatchCommand handles the watch command
type WatchCommand struct {
	app *App
}

// NewWatchCommand creates a new watch command handler
func NewWatchCommand(app *App) *WatchCommand {
	return &WatchCommand{app: app}
}

// Execute runs the accrual scheduler until the context is cancelled,
// persisting updated interest on every tick so other commands see fresh
// figures.
func (c *WatchCommand) Execute(ctx context.Context) error {
	interval := c.app.config.Ledger.AccrualInterval
	fmt.Fprintf(c.app.out, "Accruing interest every %s (ctrl-c to stop)\n", interval)

	c.app.api.RunAccrual(ctx, interval)

	fmt.Fprintln(c.app.out, "Stopped")
	return nil
}
