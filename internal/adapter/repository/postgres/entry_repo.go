package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/infrastructure/postgres/generated"
	"github.com/gestion/ledger/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository. Entries are append
// only: there is no update or delete path.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends a ledger entry within a transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateLedgerEntry(ctx, generated.CreateLedgerEntryParams{
		ID:           entry.ID,
		PartyID:      entry.PartyID,
		Kind:         string(entry.Kind),
		Amount:       decimalToNumeric(entry.Amount),
		BalanceAfter: decimalToNumeric(entry.BalanceAfter),
		Reference:    entry.Reference,
		SourceType:   string(entry.SourceType),
		SourceID:     stringToPgText(entry.SourceID),
		PartyVersion: entry.PartyVersion,
		CreatedAt:    timeToPgTimestamptz(entry.CreatedAt),
	})

	return err
}

// ListByParty lists entries for a party in creation order.
func (r *EntryRepository) ListByParty(ctx context.Context, q usecase.EntryQuery) ([]*domain.LedgerEntry, error) {
	var dateFrom, dateTo pgtype.Timestamptz
	if q.DateFrom != nil {
		dateFrom = timeToPgTimestamptz(*q.DateFrom)
	}
	if q.DateTo != nil {
		dateTo = timeToPgTimestamptz(*q.DateTo)
	}

	rows, err := r.queries.ListEntriesByParty(ctx, generated.ListEntriesByPartyParams{
		PartyID:  q.PartyID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Limit:    int32(q.Limit),
		Offset:   int32(q.Offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// SumByParty returns the signed sum of all entries for a party.
func (r *EntryRepository) SumByParty(ctx context.Context, partyID string) (decimal.Decimal, error) {
	total, err := r.queries.SumEntriesByParty(ctx, partyID)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

func rowToEntry(row generated.LedgerEntry) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:           row.ID,
		PartyID:      row.PartyID,
		Kind:         domain.EntryKind(row.Kind),
		Amount:       numericToDecimal(row.Amount),
		BalanceAfter: numericToDecimal(row.BalanceAfter),
		Reference:    row.Reference,
		SourceType:   domain.SourceType(row.SourceType),
		SourceID:     row.SourceID.String,
		PartyVersion: row.PartyVersion,
		CreatedAt:    row.CreatedAt.Time,
	}
}
