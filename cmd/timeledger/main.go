package main

import (
	"fmt"
	"os"

	"timeledger/internal/api"
	"timeledger/internal/cli"
	"timeledger/internal/config"
	"timeledger/internal/ledger"
	"timeledger/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logging.SetVerbose(cfg.Application.Verbose)

	factory := NewRepositoryFactory(getEnvironment(), cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	persister := api.NewPersister(repo, cfg.Database.QueryTimeout, cfg.Database.WriteTimeout)
	store, err := ledger.NewStore(ledger.SystemClock(), persister, cfg.Ledger.DefaultInterestRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(api.New(store), cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
