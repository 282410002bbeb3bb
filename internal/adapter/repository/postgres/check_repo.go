package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/infrastructure/postgres/generated"
	"github.com/gestion/ledger/internal/usecase"
)

// CheckRepository implements usecase.CheckRepository.
type CheckRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewCheckRepository creates a new CheckRepository.
func NewCheckRepository(pool *pgxpool.Pool) *CheckRepository {
	return &CheckRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create persists an issued check within a transaction.
func (r *CheckRepository) Create(ctx context.Context, tx usecase.Transaction, check *domain.Check) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateCheck(ctx, generated.CreateCheckParams{
		ID:         check.ID,
		ProviderID: check.ProviderID,
		Number:     check.Number,
		Bank:       check.Bank,
		Amount:     decimalToNumeric(check.Amount),
		DueDate:    timeToPgTimestamptz(check.DueDate),
		CreatedAt:  timeToPgTimestamptz(check.CreatedAt),
	})

	return err
}
