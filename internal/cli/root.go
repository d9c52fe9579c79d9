package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"timeledger/internal/api"
	"timeledger/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app: NewApp(apiInstance, cfg),
	}

	root.cmd = &cobra.Command{
		Use:   "timeledger",
		Short: "Track your time as a personal finance ledger",
		Long: `Time Ledger (timeledger) treats your time like money: productive time is an
asset, unproductive time is a liability that accrues compound interest until
you pay it back with focused work.

EXAMPLES:
  timeledger add liability 60 social-media      # Borrow an hour of doomscrolling
  timeledger add asset 90 deep-work             # Invest 90 minutes of focus
  timeledger debts                              # What do you owe, largest first
  timeledger payback <id> 30                    # Pay 30 minutes against a debt
  timeledger payback <id> --session             # Pay one 25-minute work session
  timeledger stats                              # Assets, debt, net time worth
  timeledger chart                              # Last 7 days as a table
  timeledger watch                              # Keep interest accruing

CATEGORIES:
  assets:      deep-work, exercise, learning, creative, meetings
  liabilities: social-media, streaming, gaming, procrastination, other
  (the split is a convention; any category is accepted on either type)

CONFIGURATION:
  TL_DB_DIR                  Database directory (default: ~/.timeledger)
  TL_DB_FILENAME             Database filename (default: ledger.db)
  TL_ACCRUAL_INTERVAL        Accrual cadence for watch (default: 1m)
  TL_DEFAULT_INTEREST_RATE   Default daily multiplier (default: 1.1)
  TL_TIME_DISPLAY_FORMAT     Timestamp display format
  TL_DEBUG                   Enable debug output`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()
	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var (
		addDescription string
		addRate        string
	)
	addCmd := &cobra.Command{
		Use:   "add [asset|liability] [minutes] [category]",
		Short: "Record a time entry",
		Long:  "Record a block of time as an asset (invested) or a liability (borrowed). Liabilities accrue compound interest daily until paid back.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewAddCommand(r.app)
			return handler.Execute(args[0], args[1], args[2], addDescription, addRate)
		},
	}
	addCmd.Flags().StringVarP(&addDescription, "desc", "d", "", "Optional description for the entry")
	addCmd.Flags().StringVarP(&addRate, "rate", "r", "", `Daily interest rate as multiplier ("1.1") or percentage ("10%")`)

	var paybackSession bool
	paybackCmd := &cobra.Command{
		Use:   "payback [id] [minutes]",
		Short: "Pay off a debt, partially or fully",
		Long:  "Pay minutes against a liability. A payment covering the total owed clears the debt; a partial payment reduces principal only, so interest keeps compounding on what remains.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount := ""
			if len(args) > 1 {
				amount = args[1]
			}
			if !paybackSession && amount == "" {
				return cmd.Usage()
			}
			handler := NewPaybackCommand(r.app)
			return handler.Execute(args[0], amount, paybackSession)
		},
	}
	paybackCmd.Flags().BoolVarP(&paybackSession, "session", "s", false, "Pay one 25-minute work session instead of an explicit amount")

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove an entry from the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewRemoveCommand(r.app)
			return handler.Execute(args[0])
		},
	}

	debtsCmd := &cobra.Command{
		Use:   "debts",
		Short: "List active debts, largest total owed first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewDebtsCommand(r.app)
			return handler.Execute()
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show assets, debt and net time worth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewStatsCommand(r.app)
			return handler.Execute()
		},
	}

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Show the last 7 days of assets, debt and net worth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewChartCommand(r.app)
			return handler.Execute()
		},
	}

	var listType string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger entries, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := NewListCommand(r.app)
			return handler.Execute(listType)
		},
	}
	listCmd.Flags().StringVarP(&listType, "type", "t", "", `Only show entries of this type ("asset" or "liability")`)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep interest accruing until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handler := NewWatchCommand(r.app)
			return handler.Execute(ctx)
		},
	}

	r.cmd.AddCommand(addCmd, paybackCmd, rmCmd, debtsCmd, statsCmd, chartCmd, listCmd, watchCmd)
}
