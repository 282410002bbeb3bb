package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/infrastructure/postgres/generated"
	"github.com/gestion/ledger/internal/usecase"
)

// PurchaseRepository implements usecase.PurchaseRepository.
type PurchaseRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPurchaseRepository creates a new PurchaseRepository.
func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create persists a purchase within a transaction.
func (r *PurchaseRepository) Create(ctx context.Context, tx usecase.Transaction, purchase *domain.Purchase) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreatePurchase(ctx, generated.CreatePurchaseParams{
		ID:            purchase.ID,
		ProviderID:    purchase.ProviderID,
		Total:         decimalToNumeric(purchase.Total),
		PaymentMethod: stringToPgText(purchase.PaymentMethod),
		Status:        stringToPgText(purchase.Status),
		Archived:      purchase.Archived,
		CreatedAt:     timeToPgTimestamptz(purchase.CreatedAt),
	})

	return err
}

// GetByID retrieves a purchase by ID.
func (r *PurchaseRepository) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	row, err := r.queries.GetPurchaseByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPurchaseNotFound
		}

		return nil, err
	}

	return rowToPurchase(row), nil
}

// ArchiveBefore marks active purchases created before cutoff as archived
// and returns how many rows changed.
func (r *PurchaseRepository) ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.queries.ArchivePurchasesBefore(ctx, timeToPgTimestamptz(cutoff))
}

func rowToPurchase(row generated.Purchase) *domain.Purchase {
	return &domain.Purchase{
		ID:            row.ID,
		ProviderID:    row.ProviderID,
		Total:         numericToDecimal(row.Total),
		PaymentMethod: row.PaymentMethod.String,
		Status:        row.Status.String,
		Archived:      row.Archived,
		CreatedAt:     row.CreatedAt.Time,
	}
}
