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

// SaleRepository implements usecase.SaleRepository.
type SaleRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewSaleRepository creates a new SaleRepository.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create persists a sale within a transaction.
func (r *SaleRepository) Create(ctx context.Context, tx usecase.Transaction, sale *domain.Sale) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateSale(ctx, generated.CreateSaleParams{
		ID:        sale.ID,
		ClientID:  sale.ClientID,
		Total:     decimalToNumeric(sale.Total),
		Reference: stringToPgText(sale.Reference),
		Archived:  sale.Archived,
		CreatedAt: timeToPgTimestamptz(sale.CreatedAt),
	})

	return err
}

// GetByID retrieves a sale by ID.
func (r *SaleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	row, err := r.queries.GetSaleByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSaleNotFound
		}

		return nil, err
	}

	return rowToSale(row), nil
}

// ArchiveBefore marks active sales created before cutoff as archived and
// returns how many rows changed. The single UPDATE makes the sweep
// naturally idempotent.
func (r *SaleRepository) ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.queries.ArchiveSalesBefore(ctx, timeToPgTimestamptz(cutoff))
}

func rowToSale(row generated.Sale) *domain.Sale {
	return &domain.Sale{
		ID:        row.ID,
		ClientID:  row.ClientID,
		Total:     numericToDecimal(row.Total),
		Reference: row.Reference.String,
		Archived:  row.Archived,
		CreatedAt: row.CreatedAt.Time,
	}
}
