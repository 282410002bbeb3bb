package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/infrastructure/postgres/generated"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// CheckConsistency returns the sum of all party balances and the signed sum
// of all ledger entries. The two are equal when the ledger is consistent.
func (r *LedgerRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	totalBalance, err := r.queries.SumPartyBalances(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	totalEntries, err := r.queries.SumSignedEntries(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(totalBalance), numericToDecimal(totalEntries), nil
}
