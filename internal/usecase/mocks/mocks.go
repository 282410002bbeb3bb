package mocks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/usecase"
)

// MockPartyRepository is an in-memory mock of PartyRepository.
type MockPartyRepository struct {
	mu      sync.RWMutex
	parties map[string]*domain.Party

	CreateFunc           func(ctx context.Context, party *domain.Party) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Party, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Party, error)
	UpdateBalanceFunc    func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, version int64, updatedAt time.Time) error
	ListFunc             func(ctx context.Context, role domain.PartyRole, limit, offset int) ([]*domain.Party, error)
}

func NewMockPartyRepository() *MockPartyRepository {
	return &MockPartyRepository{parties: make(map[string]*domain.Party)}
}

// Seed stores a party directly, bypassing any Func override.
func (m *MockPartyRepository) Seed(party *domain.Party) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parties[party.ID] = party
}

func (m *MockPartyRepository) Create(ctx context.Context, party *domain.Party) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, party)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parties[party.ID] = party
	return nil
}

func (m *MockPartyRepository) GetByID(ctx context.Context, id string) (*domain.Party, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.parties[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPartyNotFound
}

func (m *MockPartyRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Party, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockPartyRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, version int64, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, version, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.parties[id]
	if !ok {
		return domain.ErrPartyNotFound
	}
	p.Balance = balance
	p.Version = version
	p.UpdatedAt = updatedAt
	return nil
}

func (m *MockPartyRepository) List(ctx context.Context, role domain.PartyRole, limit, offset int) ([]*domain.Party, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, role, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var parties []*domain.Party
	for _, p := range m.parties {
		if role != "" && p.Role != role {
			continue
		}
		clone := *p
		parties = append(parties, &clone)
	}

	sort.Slice(parties, func(i, j int) bool { return parties[i].ID < parties[j].ID })

	if offset >= len(parties) {
		return nil, nil
	}
	parties = parties[offset:]
	if limit > 0 && len(parties) > limit {
		parties = parties[:limit]
	}
	return parties, nil
}

// MockEntryRepository is an in-memory mock of EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries []*domain.LedgerEntry

	CreateFunc      func(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error
	ListByPartyFunc func(ctx context.Context, q usecase.EntryQuery) ([]*domain.LedgerEntry, error)
	SumByPartyFunc  func(ctx context.Context, partyID string) (decimal.Decimal, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{}
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *entry
	m.entries = append(m.entries, &clone)
	return nil
}

func (m *MockEntryRepository) ListByParty(ctx context.Context, q usecase.EntryQuery) ([]*domain.LedgerEntry, error) {
	if m.ListByPartyFunc != nil {
		return m.ListByPartyFunc(ctx, q)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var entries []*domain.LedgerEntry
	for _, e := range m.entries {
		if e.PartyID != q.PartyID {
			continue
		}
		if q.DateFrom != nil && e.CreatedAt.Before(*q.DateFrom) {
			continue
		}
		if q.DateTo != nil && e.CreatedAt.After(*q.DateTo) {
			continue
		}
		clone := *e
		entries = append(entries, &clone)
	}
	return entries, nil
}

func (m *MockEntryRepository) SumByParty(ctx context.Context, partyID string) (decimal.Decimal, error) {
	if m.SumByPartyFunc != nil {
		return m.SumByPartyFunc(ctx, partyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	sum := decimal.Zero
	for _, e := range m.entries {
		if e.PartyID == partyID {
			sum = sum.Add(e.SignedAmount())
		}
	}
	return sum, nil
}

// All returns a copy of every stored entry in creation order.
func (m *MockEntryRepository) All() []*domain.LedgerEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.LedgerEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// MockSaleRepository is an in-memory mock of SaleRepository.
type MockSaleRepository struct {
	mu    sync.RWMutex
	sales map[string]*domain.Sale

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, sale *domain.Sale) error
	ArchiveBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func NewMockSaleRepository() *MockSaleRepository {
	return &MockSaleRepository{sales: make(map[string]*domain.Sale)}
}

func (m *MockSaleRepository) Seed(sale *domain.Sale) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales[sale.ID] = sale
}

func (m *MockSaleRepository) Create(ctx context.Context, tx usecase.Transaction, sale *domain.Sale) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, sale)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales[sale.ID] = sale
	return nil
}

func (m *MockSaleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sales[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrSaleNotFound
}

func (m *MockSaleRepository) ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.ArchiveBeforeFunc != nil {
		return m.ArchiveBeforeFunc(ctx, cutoff)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var archived int64
	for _, s := range m.sales {
		if !s.Archived && s.CreatedAt.Before(cutoff) {
			s.Archived = true
			archived++
		}
	}
	return archived, nil
}

// MockPurchaseRepository is an in-memory mock of PurchaseRepository.
type MockPurchaseRepository struct {
	mu        sync.RWMutex
	purchases map[string]*domain.Purchase

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, purchase *domain.Purchase) error
	ArchiveBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func NewMockPurchaseRepository() *MockPurchaseRepository {
	return &MockPurchaseRepository{purchases: make(map[string]*domain.Purchase)}
}

func (m *MockPurchaseRepository) Seed(purchase *domain.Purchase) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purchases[purchase.ID] = purchase
}

func (m *MockPurchaseRepository) Create(ctx context.Context, tx usecase.Transaction, purchase *domain.Purchase) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, purchase)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purchases[purchase.ID] = purchase
	return nil
}

func (m *MockPurchaseRepository) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.purchases[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPurchaseNotFound
}

func (m *MockPurchaseRepository) ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.ArchiveBeforeFunc != nil {
		return m.ArchiveBeforeFunc(ctx, cutoff)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var archived int64
	for _, p := range m.purchases {
		if !p.Archived && p.CreatedAt.Before(cutoff) {
			p.Archived = true
			archived++
		}
	}
	return archived, nil
}

// MockPaymentRepository is an in-memory mock of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.Mutex
	payments []*domain.Payment

	CreateFunc func(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{}
}

func (m *MockPaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments = append(m.payments, payment)
	return nil
}

// MockCheckRepository is an in-memory mock of CheckRepository.
type MockCheckRepository struct {
	mu     sync.Mutex
	checks []*domain.Check

	CreateFunc func(ctx context.Context, tx usecase.Transaction, check *domain.Check) error
}

func NewMockCheckRepository() *MockCheckRepository {
	return &MockCheckRepository{}
}

func (m *MockCheckRepository) Create(ctx context.Context, tx usecase.Transaction, check *domain.Check) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, check)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks = append(m.checks, check)
	return nil
}

// MockOutboxRepository is an in-memory mock of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.Mutex
	events []*domain.OutboxEvent

	CreateFunc func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			e.PublishedAt = &publishedAt
			return nil
		}
	}
	return errors.New("event not found")
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.events[:0]
	for _, e := range m.events {
		if !e.Published || e.PublishedAt == nil || !e.PublishedAt.Before(before) {
			kept = append(kept, e)
		}
	}
	m.events = kept
	return nil
}

// Events returns a copy of every stored event.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.OutboxEvent, len(m.events))
	copy(out, m.events)
	return out
}

// MockTransactionManager serializes transactions behind a single mutex,
// mimicking the row-lock discipline of the real store: a transaction holds
// the lock from Begin until Commit or Rollback.
type MockTransactionManager struct {
	mu sync.Mutex

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	tx := &MockTransaction{}
	tx.release = func() { m.mu.Unlock() }
	return tx, nil
}

// MockTransaction is a no-op transaction that releases its manager's lock
// exactly once.
type MockTransaction struct {
	once       sync.Once
	release    func()
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	if t.release != nil {
		t.once.Do(t.release)
	}
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	if t.release != nil {
		t.once.Do(t.release)
	}
	return nil
}

// MockIDGenerator generates sequential IDs.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%04d", m.counter)
}

// MockRetrier runs the operation once without retrying.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCache is an in-memory mock of Cache. TTLs are ignored.
type MockCache struct {
	mu     sync.RWMutex
	values map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return nil, errors.New("cache miss")
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
