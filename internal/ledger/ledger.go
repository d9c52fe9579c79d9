package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"timeledger/internal/domain"
	"timeledger/internal/logging"
)

// Persister stores and retrieves the entry log. Save is invoked after every
// mutation with the full log; failures are logged and never surfaced, so the
// in-memory log stays authoritative regardless of persistence outcome.
type Persister interface {
	Load() ([]domain.TimeEntry, error)
	Save(entries []domain.TimeEntry) error
}

// NewEntry holds the caller-supplied fields for a new time entry. ID,
// timestamp and accrued interest are assigned by the store.
type NewEntry struct {
	Type         domain.EntryType
	Duration     int
	Category     domain.Category
	Description  string
	InterestRate float64
}

// Store owns the ordered log of time entries. Mutations replace the log
// wholesale (copy-on-write), so readers always observe either the previous
// or the new snapshot, never a partially updated one.
type Store struct {
	mu          sync.RWMutex
	entries     []domain.TimeEntry
	clock       Clock
	persister   Persister
	defaultRate float64
}

// NewStore creates a Store with the injected clock and persister. The prior
// log is loaded from the persister; if none exists a seed log is generated.
// A nil persister keeps the store purely in-memory. defaultRate is the daily
// multiplier stamped on liabilities created without an explicit rate; values
// below 1.0 (including zero) fall back to the built-in default.
func NewStore(clock Clock, persister Persister, defaultRate float64) (*Store, error) {
	if defaultRate < 1 {
		defaultRate = domain.DefaultInterestRate
	}
	s := &Store{
		clock:       clock,
		persister:   persister,
		defaultRate: defaultRate,
	}

	if persister != nil {
		entries, err := persister.Load()
		if err != nil {
			return nil, err
		}
		s.entries = entries
	}

	if len(s.entries) == 0 {
		s.entries = SeedEntries(clock.Now(), s.defaultRate)
		s.persist(s.entries)
	}

	return s, nil
}

// NewEmptyStore creates a Store with no entries and no persistence.
func NewEmptyStore(clock Clock) *Store {
	return &Store{clock: clock, defaultRate: domain.DefaultInterestRate}
}

// Entries returns a snapshot of the log, most recent first.
func (s *Store) Entries() []domain.TimeEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.TimeEntry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// AddEntry creates a new entry from the input, stamps it with the current
// time and a fresh id, and prepends it to the log. A zero interest rate is
// replaced by the default for the entry type: 1.0 for assets, the store's
// configured default for liabilities. Input validation is the caller's
// concern; see the api package.
func (s *Store) AddEntry(input NewEntry) domain.TimeEntry {
	rate := input.InterestRate
	if rate == 0 {
		rate = domain.AssetInterestRate
		if input.Type == domain.EntryTypeLiability {
			rate = s.defaultRate
		}
	}

	entry := domain.TimeEntry{
		ID:              uuid.NewString(),
		Type:            input.Type,
		Duration:        input.Duration,
		Category:        input.Category,
		Description:     input.Description,
		Timestamp:       s.clock.Now(),
		InterestRate:    rate,
		IsPaidBack:      false,
		AccruedInterest: 0,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.TimeEntry, 0, len(s.entries)+1)
	next = append(next, entry)
	next = append(next, s.entries...)
	s.entries = next
	s.persist(next)

	return entry
}

// PayOffDebt applies a payment in minutes against an unpaid liability. A
// payment covering the total owed marks the entry paid back, freezing its
// principal and interest for the historical record. A partial payment
// reduces the principal only; accrued interest stays untouched and keeps
// compounding on the reduced principal. Unknown ids, assets and already
// paid-back entries are silent no-ops.
func (s *Store) PayOffDebt(entryID string, amountMinutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	next := make([]domain.TimeEntry, len(s.entries))
	for i, entry := range s.entries {
		if entry.ID == entryID && entry.IsActiveDebt() {
			if amountMinutes >= entry.TotalOwed() {
				entry.IsPaidBack = true
			} else {
				entry.Duration = max(0, entry.Duration-amountMinutes)
			}
			changed = true
		}
		next[i] = entry
	}

	if !changed {
		return
	}
	s.entries = next
	s.persist(next)
}

// DeleteEntry removes the entry from the log. Deleting an unknown id is a
// no-op.
func (s *Store) DeleteEntry(entryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.TimeEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.ID != entryID {
			next = append(next, entry)
		}
	}

	if len(next) == len(s.entries) {
		return
	}
	s.entries = next
	s.persist(next)
}

// AccrueInterest recomputes the accrued interest of every unpaid liability
// as of now. The computation is a pure function of each entry's principal,
// rate and age, so repeated calls with the same time are idempotent.
func (s *Store) AccrueInterest(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.TimeEntry, len(s.entries))
	for i, entry := range s.entries {
		next[i] = accrueEntry(entry, now)
	}
	s.entries = next
	s.persist(next)
}

// ActiveDebts returns every unpaid liability, largest total owed first. The
// sort is stable, so ties keep their log order.
func (s *Store) ActiveDebts() []domain.TimeEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var debts []domain.TimeEntry
	for _, entry := range s.entries {
		if entry.IsActiveDebt() {
			debts = append(debts, entry)
		}
	}

	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].TotalOwed() > debts[j].TotalOwed()
	})
	return debts
}

// Clock returns the store's time source.
func (s *Store) Clock() Clock {
	return s.clock
}

// persist saves the log, fire-and-forget. Callers must hold the lock only to
// pass a consistent snapshot; the save itself never mutates state.
func (s *Store) persist(entries []domain.TimeEntry) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(entries); err != nil {
		logging.Debugf("failed to persist ledger: %v\n", err)
	}
}
