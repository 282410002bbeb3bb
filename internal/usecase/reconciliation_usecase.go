package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
)

// ReconciliationUseCase re-derives balances from entries. This is the only
// place balances are ever recomputed by summation; everywhere else the
// denormalized Party.Balance is authoritative.
type ReconciliationUseCase struct {
	partyRepo  PartyRepository
	entryRepo  EntryRepository
	ledgerRepo LedgerRepository
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(
	partyRepo PartyRepository,
	entryRepo EntryRepository,
	ledgerRepo LedgerRepository,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		partyRepo:  partyRepo,
		entryRepo:  entryRepo,
		ledgerRepo: ledgerRepo,
	}
}

// ReconciliationResult compares a party's stored balance against the sum of
// its entries.
type ReconciliationResult struct {
	PartyID           string
	RecordedBalance   decimal.Decimal
	CalculatedBalance decimal.Decimal
	Difference        decimal.Decimal
	IsReconciled      bool
	CheckedAt         time.Time
}

// ReconcileParty verifies the balance invariant for one party.
func (uc *ReconciliationUseCase) ReconcileParty(ctx context.Context, partyID string) (*ReconciliationResult, error) {
	party, err := uc.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	calculated, err := uc.entryRepo.SumByParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	difference := party.Balance.Sub(calculated)

	return &ReconciliationResult{
		PartyID:           partyID,
		RecordedBalance:   party.Balance,
		CalculatedBalance: calculated,
		Difference:        difference,
		IsReconciled:      difference.IsZero(),
		CheckedAt:         time.Now().UTC(),
	}, nil
}

// ReconcileAll verifies the balance invariant for every party.
func (uc *ReconciliationUseCase) ReconcileAll(ctx context.Context) ([]*ReconciliationResult, error) {
	limit, offset := domain.ValidatePagination(1000, 0)

	var results []*ReconciliationResult

	for {
		parties, err := uc.partyRepo.List(ctx, "", limit, offset)
		if err != nil {
			return nil, err
		}

		for _, party := range parties {
			result, err := uc.ReconcileParty(ctx, party.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to reconcile party %s: %w", party.ID, err)
			}

			results = append(results, result)
		}

		if len(parties) < limit {
			break
		}

		offset += limit
	}

	return results, nil
}

// CheckLedgerConsistency verifies that the sum of all party balances equals
// the sum of all signed entry amounts.
func (uc *ReconciliationUseCase) CheckLedgerConsistency(ctx context.Context) error {
	totalBalance, totalEntrySum, err := uc.ledgerRepo.CheckConsistency(ctx)
	if err != nil {
		return err
	}

	if !totalBalance.Equal(totalEntrySum) {
		return fmt.Errorf(
			"ledger inconsistency detected: balances=%s entries=%s difference=%s",
			totalBalance.String(),
			totalEntrySum.String(),
			totalBalance.Sub(totalEntrySum).String(),
		)
	}

	return nil
}
