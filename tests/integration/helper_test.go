package integration

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/gestion/ledger/internal/adapter/repository/postgres"
	"github.com/gestion/ledger/internal/usecase"
	"github.com/gestion/ledger/tests/testutil"
)

// ledgerStack wires the full write path against a real database.
type ledgerStack struct {
	txManager    *postgres.TxManager
	partyRepo    *postgres.PartyRepository
	saleRepo     *postgres.SaleRepository
	purchaseRepo *postgres.PurchaseRepository
	outboxRepo   *postgres.OutboxRepository

	ledgerUC         *usecase.LedgerUseCase
	movementUC       *usecase.MovementUseCase
	partyUC          *usecase.PartyUseCase
	archiveUC        *usecase.ArchiveUseCase
	reconciliationUC *usecase.ReconciliationUseCase
}

func newLedgerStack(t *testing.T, testDB *testutil.TestDB) *ledgerStack {
	t.Helper()

	pool := testDB.Pool

	txManager := postgres.NewTxManager(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	checkRepo := postgres.NewCheckRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	outboxRepo := postgres.NewOutboxRepository(pool)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier(zerolog.Nop())

	ledgerUC := usecase.NewLedgerUseCase(txManager, partyRepo, entryRepo, outboxRepo, idGen, retrier, nil)
	resolver := usecase.NewResolver(partyRepo)
	movementUC := usecase.NewMovementUseCase(ledgerUC, resolver, saleRepo, purchaseRepo, paymentRepo, checkRepo, idGen)
	partyUC := usecase.NewPartyUseCase(partyRepo, idGen)
	archiveUC := usecase.NewArchiveUseCase(saleRepo, purchaseRepo, outboxRepo, txManager, idGen, 0)
	reconciliationUC := usecase.NewReconciliationUseCase(partyRepo, entryRepo, ledgerRepo)

	return &ledgerStack{
		txManager:        txManager,
		partyRepo:        partyRepo,
		saleRepo:         saleRepo,
		purchaseRepo:     purchaseRepo,
		outboxRepo:       outboxRepo,
		ledgerUC:         ledgerUC,
		movementUC:       movementUC,
		partyUC:          partyUC,
		archiveUC:        archiveUC,
		reconciliationUC: reconciliationUC,
	}
}
