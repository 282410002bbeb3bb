package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
)

// PartyRepository defines data access for clients and providers.
type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, id string) (*domain.Party, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Party, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, version int64, updatedAt time.Time) error
	List(ctx context.Context, role domain.PartyRole, limit, offset int) ([]*domain.Party, error)
}

// EntryQuery filters entry listings. Zero date bounds mean unbounded.
type EntryQuery struct {
	PartyID  string
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

// EntryRepository defines data access for ledger entries. Entries are
// append-only: the interface deliberately has no update or delete.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.LedgerEntry) error
	ListByParty(ctx context.Context, q EntryQuery) ([]*domain.LedgerEntry, error)
	SumByParty(ctx context.Context, partyID string) (decimal.Decimal, error)
}

// SaleRepository defines data access for sale source records.
type SaleRepository interface {
	Create(ctx context.Context, tx Transaction, sale *domain.Sale) error
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PurchaseRepository defines data access for purchase source records.
type PurchaseRepository interface {
	Create(ctx context.Context, tx Transaction, purchase *domain.Purchase) error
	GetByID(ctx context.Context, id string) (*domain.Purchase, error)
	ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PaymentRepository defines data access for payment source records.
type PaymentRepository interface {
	Create(ctx context.Context, tx Transaction, payment *domain.Payment) error
}

// CheckRepository defines data access for check source records.
type CheckRepository interface {
	Create(ctx context.Context, tx Transaction, check *domain.Check) error
}

// LedgerRepository defines data access for ledger-wide operations.
type LedgerRepository interface {
	CheckConsistency(ctx context.Context) (totalBalance, totalEntrySum decimal.Decimal, err error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation on transient storage conflicts. When retries
// exhaust on a serialization conflict it returns an error wrapping
// domain.ErrConcurrentModification.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
