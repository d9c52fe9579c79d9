package api

import (
	"context"
	"time"

	"timeledger/internal/domain"
	"timeledger/internal/ledger"
	"timeledger/internal/repository/sqlite"
)

// repositoryPersister adapts the sqlite repository to the engine's Persister
// contract.
type repositoryPersister struct {
	repo         sqlite.Repository
	mapper       *domain.EntryMapper
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// NewPersister wraps a sqlite repository as a ledger.Persister.
func NewPersister(repo sqlite.Repository, queryTimeout, writeTimeout time.Duration) ledger.Persister {
	return &repositoryPersister{
		repo:         repo,
		mapper:       domain.NewEntryMapper(),
		queryTimeout: queryTimeout,
		writeTimeout: writeTimeout,
	}
}

// Load reads the stored log.
func (p *repositoryPersister) Load() ([]domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.queryTimeout)
	defer cancel()

	dbEntries, err := p.repo.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}
	return p.mapper.FromDatabaseSlice(dbEntries), nil
}

// Save replaces the stored log with the given entries.
func (p *repositoryPersister) Save(entries []domain.TimeEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.writeTimeout)
	defer cancel()

	return p.repo.ReplaceEntries(ctx, p.mapper.ToDatabaseSlice(entries))
}
