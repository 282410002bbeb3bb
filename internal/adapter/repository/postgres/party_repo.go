package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/infrastructure/postgres/generated"
	"github.com/gestion/ledger/internal/usecase"
)

// PartyRepository implements usecase.PartyRepository.
type PartyRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPartyRepository creates a new PartyRepository.
func NewPartyRepository(pool *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new party.
func (r *PartyRepository) Create(ctx context.Context, party *domain.Party) error {
	_, err := r.queries.CreateParty(ctx, generated.CreatePartyParams{
		ID:        party.ID,
		Role:      string(party.Role),
		Name:      party.Name,
		Address:   stringToPgText(party.Address),
		TaxID:     stringToPgText(party.TaxID),
		Zone:      stringToPgText(party.Zone),
		Balance:   decimalToNumeric(party.Balance),
		Version:   party.Version,
		CreatedAt: timeToPgTimestamptz(party.CreatedAt),
		UpdatedAt: timeToPgTimestamptz(party.UpdatedAt),
	})

	return err
}

// GetByID retrieves a party by ID.
func (r *PartyRepository) GetByID(ctx context.Context, id string) (*domain.Party, error) {
	row, err := r.queries.GetPartyByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}

		return nil, err
	}

	return rowToParty(row), nil
}

// GetByIDForUpdate retrieves a party by ID with a FOR UPDATE lock.
func (r *PartyRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Party, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetPartyByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}

		return nil, err
	}

	return rowToParty(row), nil
}

// UpdateBalance updates the balance and version of a party.
func (r *PartyRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, version int64, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdatePartyBalance(ctx, generated.UpdatePartyBalanceParams{
		ID:        id,
		Balance:   decimalToNumeric(balance),
		Version:   version,
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
}

// List lists parties with pagination, optionally filtered by role.
func (r *PartyRepository) List(ctx context.Context, role domain.PartyRole, limit, offset int) ([]*domain.Party, error) {
	var (
		rows []generated.Party
		err  error
	)

	if role == "" {
		rows, err = r.queries.ListParties(ctx, generated.ListPartiesParams{
			Limit:  int32(limit),
			Offset: int32(offset),
		})
	} else {
		rows, err = r.queries.ListPartiesByRole(ctx, generated.ListPartiesByRoleParams{
			Role:   string(role),
			Limit:  int32(limit),
			Offset: int32(offset),
		})
	}
	if err != nil {
		return nil, err
	}

	parties := make([]*domain.Party, 0, len(rows))
	for _, row := range rows {
		parties = append(parties, rowToParty(row))
	}

	return parties, nil
}

func rowToParty(row generated.Party) *domain.Party {
	return &domain.Party{
		ID:        row.ID,
		Role:      domain.PartyRole(row.Role),
		Name:      row.Name,
		Address:   row.Address.String,
		TaxID:     row.TaxID.String,
		Zone:      row.Zone.String,
		Balance:   numericToDecimal(row.Balance),
		Version:   row.Version,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func stringToPgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}

	return pgtype.Text{String: s, Valid: true}
}
