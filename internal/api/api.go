package api

import (
	"context"
	"time"

	"timeledger/internal/domain"
	"timeledger/internal/errors"
	"timeledger/internal/ledger"
	"timeledger/internal/validation"
)

// SessionMinutes is the size of one liquidation work session.
const SessionMinutes = 25

// API defines the interface for all ledger operations.
type API interface {
	// Mutations
	AddEntry(entryType domain.EntryType, duration int, category domain.Category, description string, interestRate float64) (*domain.TimeEntry, error)
	PayOffDebt(entryID string, amountMinutes int) error
	LiquidateSession(entryID string) (int, error)
	DeleteEntry(entryID string) error
	AccrueInterest()
	RunAccrual(ctx context.Context, interval time.Duration)

	// Queries
	Entries() []domain.TimeEntry
	ActiveDebts() []domain.TimeEntry
	Stats() ledger.Stats
	WeeklySnapshots() []ledger.DailySnapshot
}

type apiImpl struct {
	store          *ledger.Store
	entryValidator *validation.EntryValidator
}

// New creates a new API instance over the given store.
func New(store *ledger.Store) API {
	return &apiImpl{
		store:          store,
		entryValidator: validation.NewEntryValidator(),
	}
}

// AddEntry validates the input and records a new time entry stamped with the
// current time. Interest across the log is brought up to date so the new
// state is immediately displayable.
func (a *apiImpl) AddEntry(entryType domain.EntryType, duration int, category domain.Category, description string, interestRate float64) (*domain.TimeEntry, error) {
	if err := a.entryValidator.ValidateEntryForCreation(entryType, duration, category, interestRate); err != nil {
		return nil, err
	}

	entry := a.store.AddEntry(ledger.NewEntry{
		Type:         entryType,
		Duration:     duration,
		Category:     category,
		Description:  description,
		InterestRate: interestRate,
	})
	a.store.AccrueInterest(a.store.Clock().Now())
	return &entry, nil
}

// PayOffDebt applies a payment against an unpaid liability. The amount must
// be positive; beyond that the operation is best-effort and unknown or
// ineligible ids are silent no-ops. Accrued interest is deliberately not
// recomputed here: a full payoff freezes the entry as-is, and a partial
// payment reduces principal only, leaving interest to regrow on the reduced
// principal at the next accrual.
func (a *apiImpl) PayOffDebt(entryID string, amountMinutes int) error {
	if err := a.entryValidator.ValidateEntryID(entryID); err != nil {
		return err
	}
	if err := a.entryValidator.ValidatePayment(amountMinutes); err != nil {
		return err
	}

	a.store.PayOffDebt(entryID, amountMinutes)
	return nil
}

// LiquidateSession pays off one work session (25 minutes, or the remaining
// total owed if smaller) against the given debt. Returns the minutes paid.
func (a *apiImpl) LiquidateSession(entryID string) (int, error) {
	if err := a.entryValidator.ValidateEntryID(entryID); err != nil {
		return 0, err
	}

	for _, debt := range a.ActiveDebts() {
		if debt.ID == entryID {
			amount := min(SessionMinutes, debt.TotalOwed())
			a.store.PayOffDebt(entryID, amount)
			return amount, nil
		}
	}
	return 0, errors.NewNotFoundError("debt", entryID)
}

// DeleteEntry removes the entry from the log. Unknown ids are silent no-ops.
func (a *apiImpl) DeleteEntry(entryID string) error {
	if err := a.entryValidator.ValidateEntryID(entryID); err != nil {
		return err
	}

	a.store.DeleteEntry(entryID)
	return nil
}

// AccrueInterest brings every unpaid liability's interest up to the current
// time.
func (a *apiImpl) AccrueInterest() {
	a.store.AccrueInterest(a.store.Clock().Now())
}

// RunAccrual drives periodic interest accrual until the context is
// cancelled. Intended for long-running hosts; one-shot commands rely on the
// eager accrual in the query methods instead.
func (a *apiImpl) RunAccrual(ctx context.Context, interval time.Duration) {
	ledger.NewAccrualScheduler(a.store, a.store.Clock(), interval).Run(ctx)
}

// Entries returns the full log with interest accrued to now, most recent
// first.
func (a *apiImpl) Entries() []domain.TimeEntry {
	a.store.AccrueInterest(a.store.Clock().Now())
	return a.store.Entries()
}

// ActiveDebts returns unpaid liabilities with interest accrued to now,
// largest total owed first.
func (a *apiImpl) ActiveDebts() []domain.TimeEntry {
	a.store.AccrueInterest(a.store.Clock().Now())
	return a.store.ActiveDebts()
}

// Stats returns the aggregate figures over the log with interest accrued to
// now.
func (a *apiImpl) Stats() ledger.Stats {
	a.store.AccrueInterest(a.store.Clock().Now())
	return ledger.ComputeStats(a.store.Entries())
}

// WeeklySnapshots returns the 7-day series with interest accrued to now.
func (a *apiImpl) WeeklySnapshots() []ledger.DailySnapshot {
	now := a.store.Clock().Now()
	a.store.AccrueInterest(now)
	return ledger.ComputeWeeklySnapshots(a.store.Entries(), now)
}
