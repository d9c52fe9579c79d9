package cli

import (
	"io"
	"os"

	"timeledger/internal/api"
	"timeledger/internal/config"
)

// App bundles the dependencies shared by all command handlers
type App struct {
	api    api.API
	config *config.Config
	out    io.Writer
}

// NewApp creates a new App with the injected API and configuration
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		out:    os.Stdout,
	}
}

// WithOutput returns a copy of the App writing to the given writer, used in
// tests to capture command output
func (a *App) WithOutput(out io.Writer) *App {
	return &App{
		api:    a.api,
		config: a.config,
		out:    out,
	}
}
