package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/infrastructure/postgres/generated"
	"github.com/gestion/ledger/internal/usecase"
)

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create persists a payment within a transaction.
func (r *PaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreatePayment(ctx, generated.CreatePaymentParams{
		ID:         payment.ID,
		ClientID:   stringToPgText(payment.ClientID),
		ProviderID: stringToPgText(payment.ProviderID),
		Amount:     decimalToNumeric(payment.Amount),
		Method:     stringToPgText(payment.Method),
		CreatedAt:  timeToPgTimestamptz(payment.CreatedAt),
	})

	return err
}
