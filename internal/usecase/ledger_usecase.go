package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
)

// LedgerUseCase is the transactional core of the ledger. It owns the only
// mutation path of Party.Balance and the only creation path of ledger
// entries: both writes happen in one transaction, under a row lock on the
// party, so no caller can ever observe an entry without its balance change
// or the reverse.
type LedgerUseCase struct {
	txManager  TransactionManager
	partyRepo  PartyRepository
	entryRepo  EntryRepository
	outboxRepo OutboxRepository
	idGen      IDGenerator
	retrier    Retrier
	cache      Cache
}

// NewLedgerUseCase creates a new LedgerUseCase. cache may be nil to disable
// balance caching.
func NewLedgerUseCase(
	txManager TransactionManager,
	partyRepo PartyRepository,
	entryRepo EntryRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:  txManager,
		partyRepo:  partyRepo,
		entryRepo:  entryRepo,
		outboxRepo: outboxRepo,
		idGen:      idGen,
		retrier:    retrier,
		cache:      cache,
	}
}

// Apply atomically appends a ledger entry and updates the owning party's
// balance. On serialization conflicts the whole unit is retried; when
// retries exhaust the caller receives domain.ErrConcurrentModification and
// must re-run the full resolve+apply sequence.
func (uc *LedgerUseCase) Apply(ctx context.Context, instruction domain.LedgerInstruction) (*domain.LedgerEntry, error) {
	return uc.ApplyWith(ctx, instruction, nil)
}

// ApplyWith is Apply with a prepare hook that runs inside the same
// transaction before the balance mutation. Movement recording uses it to
// persist the source row atomically with its ledger effect.
func (uc *LedgerUseCase) ApplyWith(ctx context.Context, instruction domain.LedgerInstruction, prepare func(ctx context.Context, tx Transaction) error) (*domain.LedgerEntry, error) {
	if err := instruction.Validate(); err != nil {
		return nil, err
	}

	var entry *domain.LedgerEntry

	err := uc.retrier.Retry(ctx, func() error {
		var applyErr error

		entry, applyErr = uc.applyOnce(ctx, instruction, prepare)

		return applyErr
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateBalance(ctx, instruction.PartyID)

	return entry, nil
}

func (uc *LedgerUseCase) applyOnce(ctx context.Context, instruction domain.LedgerInstruction, prepare func(ctx context.Context, tx Transaction) error) (*domain.LedgerEntry, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if prepare != nil {
		if err := prepare(ctx, tx); err != nil {
			return nil, err
		}
	}

	// Lock the party row for the duration of the update. Concurrent applies
	// against the same party serialize here; different parties do not block
	// each other.
	party, err := uc.partyRepo.GetByIDForUpdate(ctx, tx, instruction.PartyID)
	if err != nil {
		return nil, err
	}

	if party.Role != instruction.PartyRole {
		return nil, domain.ErrRoleMismatch
	}

	now := time.Now().UTC()
	newBalance := party.ApplyDelta(instruction.Delta())

	entry := &domain.LedgerEntry{
		ID:           uc.idGen.Generate(),
		PartyID:      party.ID,
		Kind:         instruction.Kind,
		Amount:       instruction.Amount,
		BalanceAfter: newBalance,
		Reference:    instruction.Reference,
		SourceType:   instruction.SourceType,
		SourceID:     instruction.SourceID,
		PartyVersion: party.Version + 1,
		CreatedAt:    now,
	}

	if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.partyRepo.UpdateBalance(ctx, tx, party.ID, newBalance, party.Version+1, now); err != nil {
		return nil, err
	}

	if uc.outboxRepo != nil {
		event := &domain.OutboxEvent{
			ID:            uc.idGen.Generate(),
			AggregateID:   party.ID,
			AggregateType: domain.AggregateTypeParty,
			EventType:     domain.EventTypeEntryApplied,
			Payload: map[string]any{
				"entry_id":      entry.ID,
				"party_id":      party.ID,
				"kind":          string(entry.Kind),
				"amount":        entry.Amount.String(),
				"balance_after": entry.BalanceAfter.String(),
				"source_type":   string(entry.SourceType),
				"source_id":     entry.SourceID,
			},
			CreatedAt: now,
		}

		if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

// GetBalance returns the party's current balance. Reads go through the
// cache and never block writers.
func (uc *LedgerUseCase) GetBalance(ctx context.Context, partyID string) (decimal.Decimal, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, balanceCacheKey(partyID)); err == nil {
			if balance, parseErr := decimal.NewFromString(string(raw)); parseErr == nil {
				return balance, nil
			}
		}
	}

	party, err := uc.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		return decimal.Zero, err
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, balanceCacheKey(partyID), []byte(party.Balance.String()), BalanceCacheTTL)
	}

	return party.Balance, nil
}

// ListEntries lists committed entries for a party ordered by creation
// ascending, optionally bounded by a date range.
func (uc *LedgerUseCase) ListEntries(ctx context.Context, q EntryQuery) ([]*domain.LedgerEntry, error) {
	if q.PartyID == "" {
		return nil, domain.ErrPartyNotFound
	}

	q.Limit, q.Offset = domain.ValidatePagination(q.Limit, q.Offset)

	return uc.entryRepo.ListByParty(ctx, q)
}

func (uc *LedgerUseCase) invalidateBalance(ctx context.Context, partyID string) {
	if uc.cache == nil {
		return
	}

	_ = uc.cache.Delete(ctx, balanceCacheKey(partyID))
}

func balanceCacheKey(partyID string) string {
	return "balance:" + partyID
}
