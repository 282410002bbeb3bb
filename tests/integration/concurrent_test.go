package integration

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/usecase"
	"github.com/gestion/ledger/tests/testutil"
)

func TestConcurrentAppliesOnOneParty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	ctx := context.Background()
	testDB.TruncateAll(ctx)

	stack := newLedgerStack(t, testDB)

	client := testDB.CreateTestParty(ctx, "Supermercado La Plaza", domain.PartyRoleClient)

	const workers = 20

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := stack.movementUC.RecordAdjustment(ctx, usecase.RecordAdjustmentInput{
				PartyID:   client.ID,
				Kind:      domain.EntryKindCredit,
				Amount:    decimal.NewFromInt(10),
				Reference: "stress",
			})
			if err == nil {
				succeeded.Add(1)
			}
		}()
	}

	wg.Wait()

	// Row locking serializes writers on the same party, so every apply
	// should land.
	require.Equal(t, int64(workers), succeeded.Load())

	party, err := stack.partyRepo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, party.Balance.Equal(decimal.NewFromInt(workers*10)),
		"expected balance %d, got %s", workers*10, party.Balance)
	assert.Equal(t, int64(workers), party.Version)

	entries, err := stack.ledgerUC.ListEntries(ctx, usecase.EntryQuery{PartyID: client.ID, Limit: workers * 2})
	require.NoError(t, err)
	require.Len(t, entries, workers)

	// Replaying the entries must reproduce the stored balance, and every
	// BalanceAfter snapshot must match the running sum at its version.
	byVersion := make(map[int64]*domain.LedgerEntry, len(entries))
	for _, entry := range entries {
		byVersion[entry.PartyVersion] = entry
	}
	require.Len(t, byVersion, workers, "party versions must be unique")

	running := decimal.Zero
	for v := int64(1); v <= int64(workers); v++ {
		entry := byVersion[v]
		require.NotNil(t, entry, "missing entry for version %d", v)
		running = running.Add(entry.SignedAmount())
		assert.True(t, entry.BalanceAfter.Equal(running),
			"version %d: balance_after=%s running=%s", v, entry.BalanceAfter, running)
	}
	assert.True(t, running.Equal(party.Balance))

	result, err := stack.reconciliationUC.ReconcileParty(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, result.IsReconciled)
}

func TestConcurrentAppliesOnDistinctParties(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	ctx := context.Background()
	testDB.TruncateAll(ctx)

	stack := newLedgerStack(t, testDB)

	const parties = 8

	clients := make([]*domain.Party, parties)
	for i := range clients {
		clients[i] = testDB.CreateTestParty(ctx, "Cliente", domain.PartyRoleClient)
	}

	var wg sync.WaitGroup
	errs := make([]error, parties)

	for i, client := range clients {
		wg.Add(1)
		go func(i int, clientID string) {
			defer wg.Done()

			_, _, errs[i] = stack.movementUC.RecordSale(ctx, usecase.RecordSaleInput{
				ClientID: clientID,
				Total:    decimal.NewFromInt(int64(100 + i)),
			})
		}(i, client.ID)
	}

	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "sale %d failed", i)
	}

	for i, client := range clients {
		refreshed, err := stack.partyRepo.GetByID(ctx, client.ID)
		require.NoError(t, err)
		assert.True(t, refreshed.Balance.Equal(decimal.NewFromInt(int64(100+i))))
		assert.Equal(t, int64(1), refreshed.Version)
	}

	require.NoError(t, stack.reconciliationUC.CheckLedgerConsistency(ctx))
}
