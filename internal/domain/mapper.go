package domain

import (
	"timeledger/internal/repository/sqlite"
)

// EntryMapper handles conversion between domain and database entry models.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToDatabase converts a domain TimeEntry to a database Entry.
func (m *EntryMapper) ToDatabase(entry TimeEntry) sqlite.Entry {
	return sqlite.Entry{
		ID:              entry.ID,
		EntryType:       string(entry.Type),
		Duration:        entry.Duration,
		Category:        string(entry.Category),
		Description:     entry.Description,
		Timestamp:       entry.Timestamp,
		InterestRate:    entry.InterestRate,
		IsPaidBack:      entry.IsPaidBack,
		AccruedInterest: entry.AccruedInterest,
	}
}

// FromDatabase converts a database Entry to a domain TimeEntry.
func (m *EntryMapper) FromDatabase(dbEntry sqlite.Entry) TimeEntry {
	return TimeEntry{
		ID:              dbEntry.ID,
		Type:            EntryType(dbEntry.EntryType),
		Duration:        dbEntry.Duration,
		Category:        Category(dbEntry.Category),
		Description:     dbEntry.Description,
		Timestamp:       dbEntry.Timestamp,
		InterestRate:    dbEntry.InterestRate,
		IsPaidBack:      dbEntry.IsPaidBack,
		AccruedInterest: dbEntry.AccruedInterest,
	}
}

// ToDatabaseSlice converts a slice of domain TimeEntries to database Entries.
func (m *EntryMapper) ToDatabaseSlice(entries []TimeEntry) []*sqlite.Entry {
	dbEntries := make([]*sqlite.Entry, len(entries))
	for i, entry := range entries {
		dbEntry := m.ToDatabase(entry)
		dbEntries[i] = &dbEntry
	}
	return dbEntries
}

// FromDatabaseSlice converts a slice of database Entries to domain TimeEntries.
func (m *EntryMapper) FromDatabaseSlice(dbEntries []*sqlite.Entry) []TimeEntry {
	entries := make([]TimeEntry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entries[i] = m.FromDatabase(*dbEntry)
	}
	return entries
}
