package sqlite

import (
	"context"
	"database/sql"

	"timeledger/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for ledger persistence. The engine's log
// is replaced wholesale on every mutation, so the write path is a full
// replacement rather than row-level updates.
type Repository interface {
	LoadEntries(ctx context.Context) ([]*Entry, error)
	ReplaceEntries(ctx context.Context, entries []*Entry) error
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, HandleDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, HandleDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// LoadEntries retrieves the full entry log, most recent first
func (r *SQLiteRepository) LoadEntries(ctx context.Context) ([]*Entry, error) {
	query := `
	SELECT id, entry_type, duration, category, description, timestamp, interest_rate, is_paid_back, accrued_interest
	FROM entries
	ORDER BY timestamp DESC`

	return QueryMultiple(ctx, r.db, query, ScanEntries, "entries")
}

// ReplaceEntries replaces the stored log with the given entries in a single
// transaction
func (r *SQLiteRepository) ReplaceEntries(ctx context.Context, entries []*Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		tx.Rollback()
		return HandleDatabaseError("clear entries", err)
	}

	insert := `
	INSERT INTO entries (id, entry_type, duration, category, description, timestamp, interest_rate, is_paid_back, accrued_interest)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, entry := range entries {
		_, err := tx.ExecContext(ctx, insert,
			entry.ID,
			entry.EntryType,
			entry.Duration,
			entry.Category,
			entry.Description,
			FormatTimeForDB(entry.Timestamp),
			entry.InterestRate,
			entry.IsPaidBack,
			entry.AccruedInterest,
		)
		if err != nil {
			tx.Rollback()
			return HandleDatabaseError("insert entry", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit entries", err)
	}
	return nil
}
