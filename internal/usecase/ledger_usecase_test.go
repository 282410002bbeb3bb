package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/usecase"
	"github.com/gestion/ledger/internal/usecase/mocks"
)

type ledgerFixture struct {
	txManager  *mocks.MockTransactionManager
	partyRepo  *mocks.MockPartyRepository
	entryRepo  *mocks.MockEntryRepository
	outboxRepo *mocks.MockOutboxRepository
	cache      *mocks.MockCache
	uc         *usecase.LedgerUseCase
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		txManager:  mocks.NewMockTransactionManager(),
		partyRepo:  mocks.NewMockPartyRepository(),
		entryRepo:  mocks.NewMockEntryRepository(),
		outboxRepo: mocks.NewMockOutboxRepository(),
		cache:      mocks.NewMockCache(),
	}
	f.uc = usecase.NewLedgerUseCase(
		f.txManager,
		f.partyRepo,
		f.entryRepo,
		f.outboxRepo,
		mocks.NewMockIDGenerator(),
		mocks.NewMockRetrier(),
		f.cache,
	)
	return f
}

func (f *ledgerFixture) seedClient(id string, balance int64) {
	f.partyRepo.Seed(&domain.Party{
		ID:      id,
		Role:    domain.PartyRoleClient,
		Name:    "Test Client",
		Balance: decimal.NewFromInt(balance),
	})
}

func creditInstruction(partyID string, amount int64) domain.LedgerInstruction {
	return domain.LedgerInstruction{
		PartyID:    partyID,
		PartyRole:  domain.PartyRoleClient,
		Kind:       domain.EntryKindCredit,
		Amount:     decimal.NewFromInt(amount),
		SourceType: domain.SourceTypeSale,
		SourceID:   "sale-1",
	}
}

func debitInstruction(partyID string, amount int64) domain.LedgerInstruction {
	return domain.LedgerInstruction{
		PartyID:    partyID,
		PartyRole:  domain.PartyRoleClient,
		Kind:       domain.EntryKindDebit,
		Amount:     decimal.NewFromInt(amount),
		SourceType: domain.SourceTypePayment,
		SourceID:   "pay-1",
	}
}

func TestApplyCreditThenDebit(t *testing.T) {
	f := newLedgerFixture()
	f.seedClient("client-1", 0)
	ctx := context.Background()

	// sale of 500 credits the client
	entry, err := f.uc.Apply(ctx, creditInstruction("client-1", 500))
	if err != nil {
		t.Fatalf("apply credit: %v", err)
	}
	if entry.Kind != domain.EntryKindCredit {
		t.Errorf("kind = %s, want CREDIT", entry.Kind)
	}
	if !entry.BalanceAfter.Equal(decimal.NewFromInt(500)) {
		t.Errorf("balance after credit = %s, want 500", entry.BalanceAfter)
	}
	if entry.PartyVersion != 1 {
		t.Errorf("party version = %d, want 1", entry.PartyVersion)
	}

	// payment of 200 debits the client
	entry, err = f.uc.Apply(ctx, debitInstruction("client-1", 200))
	if err != nil {
		t.Fatalf("apply debit: %v", err)
	}
	if !entry.BalanceAfter.Equal(decimal.NewFromInt(300)) {
		t.Errorf("balance after debit = %s, want 300", entry.BalanceAfter)
	}
	if entry.PartyVersion != 2 {
		t.Errorf("party version = %d, want 2", entry.PartyVersion)
	}

	party, err := f.partyRepo.GetByID(ctx, "client-1")
	if err != nil {
		t.Fatalf("get party: %v", err)
	}
	if !party.Balance.Equal(decimal.NewFromInt(300)) {
		t.Errorf("stored balance = %s, want 300", party.Balance)
	}
}

func TestApplyAllowsNegativeBalance(t *testing.T) {
	f := newLedgerFixture()
	f.seedClient("client-1", 100)

	entry, err := f.uc.Apply(context.Background(), debitInstruction("client-1", 250))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !entry.BalanceAfter.Equal(decimal.NewFromInt(-150)) {
		t.Errorf("balance after = %s, want -150", entry.BalanceAfter)
	}
}

func TestApplyRejectsInvalidInstruction(t *testing.T) {
	f := newLedgerFixture()
	f.seedClient("client-1", 0)

	tests := []struct {
		name    string
		mutate  func(*domain.LedgerInstruction)
		wantErr error
	}{
		{
			name:    "zero amount",
			mutate:  func(i *domain.LedgerInstruction) { i.Amount = decimal.Zero },
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(i *domain.LedgerInstruction) { i.Amount = decimal.NewFromInt(-10) },
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "unknown kind",
			mutate:  func(i *domain.LedgerInstruction) { i.Kind = "TRANSFER" },
			wantErr: domain.ErrInvalidInstruction,
		},
		{
			name:    "missing party",
			mutate:  func(i *domain.LedgerInstruction) { i.PartyID = "" },
			wantErr: domain.ErrPartyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instruction := creditInstruction("client-1", 100)
			tt.mutate(&instruction)

			_, err := f.uc.Apply(context.Background(), instruction)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if len(f.entryRepo.All()) != 0 {
				t.Error("rejected instruction must not produce entries")
			}
		})
	}
}

func TestApplyRejectsRoleMismatch(t *testing.T) {
	f := newLedgerFixture()
	f.partyRepo.Seed(&domain.Party{ID: "provider-1", Role: domain.PartyRoleProvider, Balance: decimal.Zero})

	instruction := creditInstruction("provider-1", 100)

	_, err := f.uc.Apply(context.Background(), instruction)
	if !errors.Is(err, domain.ErrRoleMismatch) {
		t.Fatalf("err = %v, want ErrRoleMismatch", err)
	}
}

func TestApplyRollsBackOnEntryFailure(t *testing.T) {
	f := newLedgerFixture()
	f.seedClient("client-1", 100)

	boom := errors.New("insert failed")
	f.entryRepo.CreateFunc = func(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
		return boom
	}

	_, err := f.uc.Apply(context.Background(), creditInstruction("client-1", 50))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}

	party, _ := f.partyRepo.GetByID(context.Background(), "client-1")
	if !party.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("balance = %s, want unchanged 100", party.Balance)
	}
	if party.Version != 0 {
		t.Errorf("version = %d, want unchanged 0", party.Version)
	}
}

func TestApplyRollsBackOnBalanceUpdateFailure(t *testing.T) {
	f := newLedgerFixture()
	f.seedClient("client-1", 100)

	boom := errors.New("update failed")
	f.partyRepo.UpdateBalanceFunc = func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, version int64, updatedAt time.Time) error {
		return boom
	}

	var tx *mocks.MockTransaction
	f.txManager.BeginFunc = func(ctx context.Context) (usecase.Transaction, error) {
		tx = &mocks.MockTransaction{}
		return tx, nil
	}

	_, err := f.uc.Apply(context.Background(), creditInstruction("client-1", 50))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if tx == nil || !tx.RolledBack {
		t.Error("transaction must be rolled back on balance update failure")
	}
}

func TestApplySurfacesConcurrentModification(t *testing.T) {
	f := newLedgerFixture()
	f.seedClient("client-1", 0)

	retrier := mocks.NewMockRetrier()
	retrier.RetryFunc = func(ctx context.Context, operation func() error) error {
		return fmt.Errorf("retries exhausted: %w", domain.ErrConcurrentModification)
	}
	uc := usecase.NewLedgerUseCase(f.txManager, f.partyRepo, f.entryRepo, f.outboxRepo, mocks.NewMockIDGenerator(), retrier, nil)

	_, err := uc.Apply(context.Background(), creditInstruction("client-1", 100))
	if !errors.Is(err, domain.ErrConcurrentModification) {
		t.Fatalf("err = %v, want ErrConcurrentModification", err)
	}
}

func TestApplyWritesOutboxEvent(t *testing.T) {
	f := newLedgerFixture()
	f.seedClient("client-1", 0)

	entry, err := f.uc.Apply(context.Background(), creditInstruction("client-1", 500))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	events := f.outboxRepo.Events()
	if len(events) != 1 {
		t.Fatalf("outbox events = %d, want 1", len(events))
	}
	if events[0].EventType != domain.EventTypeEntryApplied {
		t.Errorf("event type = %s, want %s", events[0].EventType, domain.EventTypeEntryApplied)
	}
	if events[0].Payload["entry_id"] != entry.ID {
		t.Errorf("payload entry_id = %v, want %s", events[0].Payload["entry_id"], entry.ID)
	}
}

func TestApplyConcurrentSameParty(t *testing.T) {
	f := newLedgerFixture()
	f.seedClient("client-1", 0)

	const workers = 50

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Apply(context.Background(), creditInstruction("client-1", 1))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent apply: %v", err)
		}
	}

	party, _ := f.partyRepo.GetByID(context.Background(), "client-1")
	if !party.Balance.Equal(decimal.NewFromInt(workers)) {
		t.Errorf("final balance = %s, want %d", party.Balance, workers)
	}
	if party.Version != workers {
		t.Errorf("final version = %d, want %d", party.Version, workers)
	}

	// every entry's running balance must replay to the final balance
	entries := f.entryRepo.All()
	if len(entries) != workers {
		t.Fatalf("entries = %d, want %d", len(entries), workers)
	}

	running := decimal.Zero
	for i, e := range entries {
		running = running.Add(e.SignedAmount())
		if !e.BalanceAfter.Equal(running) {
			t.Fatalf("entry %d: balance_after = %s, want %s", i, e.BalanceAfter, running)
		}
		if e.PartyVersion != int64(i+1) {
			t.Fatalf("entry %d: party_version = %d, want %d", i, e.PartyVersion, i+1)
		}
	}
}

func TestGetBalanceUsesCache(t *testing.T) {
	f := newLedgerFixture()
	f.seedClient("client-1", 700)
	ctx := context.Background()

	balance, err := f.uc.GetBalance(ctx, "client-1")
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(700)) {
		t.Errorf("balance = %s, want 700", balance)
	}

	// second read must come from the cache, not the repository
	f.partyRepo.GetByIDFunc = func(ctx context.Context, id string) (*domain.Party, error) {
		t.Error("repository hit on cached read")
		return nil, domain.ErrPartyNotFound
	}

	balance, err = f.uc.GetBalance(ctx, "client-1")
	if err != nil {
		t.Fatalf("cached get balance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(700)) {
		t.Errorf("cached balance = %s, want 700", balance)
	}
}

func TestApplyInvalidatesBalanceCache(t *testing.T) {
	f := newLedgerFixture()
	f.seedClient("client-1", 0)
	ctx := context.Background()

	if _, err := f.uc.GetBalance(ctx, "client-1"); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	if _, err := f.uc.Apply(ctx, creditInstruction("client-1", 500)); err != nil {
		t.Fatalf("apply: %v", err)
	}

	balance, err := f.uc.GetBalance(ctx, "client-1")
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("balance = %s, want 500 after invalidation", balance)
	}
}

func TestListEntriesRequiresParty(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.uc.ListEntries(context.Background(), usecase.EntryQuery{})
	if !errors.Is(err, domain.ErrPartyNotFound) {
		t.Fatalf("err = %v, want ErrPartyNotFound", err)
	}
}

func TestListEntriesFiltersByDateRange(t *testing.T) {
	f := newLedgerFixture()
	f.seedClient("client-1", 0)
	ctx := context.Background()

	if _, err := f.uc.Apply(ctx, creditInstruction("client-1", 100)); err != nil {
		t.Fatalf("apply: %v", err)
	}

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)

	entries, err := f.uc.ListEntries(ctx, usecase.EntryQuery{PartyID: "client-1", DateFrom: &past, DateTo: &future})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("entries in range = %d, want 1", len(entries))
	}

	entries, err = f.uc.ListEntries(ctx, usecase.EntryQuery{PartyID: "client-1", DateTo: &past})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries before range = %d, want 0", len(entries))
	}
}
