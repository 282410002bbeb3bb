package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
)

// MovementUseCase records balance-affecting operations. Each Record method
// resolves the source record into a ledger instruction and applies it
// through the engine, persisting the source row in the same transaction as
// the entry and the balance update.
type MovementUseCase struct {
	ledger       *LedgerUseCase
	resolver     *Resolver
	saleRepo     SaleRepository
	purchaseRepo PurchaseRepository
	paymentRepo  PaymentRepository
	checkRepo    CheckRepository
	idGen        IDGenerator
}

// NewMovementUseCase creates a new MovementUseCase.
func NewMovementUseCase(
	ledger *LedgerUseCase,
	resolver *Resolver,
	saleRepo SaleRepository,
	purchaseRepo PurchaseRepository,
	paymentRepo PaymentRepository,
	checkRepo CheckRepository,
	idGen IDGenerator,
) *MovementUseCase {
	return &MovementUseCase{
		ledger:       ledger,
		resolver:     resolver,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		paymentRepo:  paymentRepo,
		checkRepo:    checkRepo,
		idGen:        idGen,
	}
}

// RecordSaleInput represents input for recording a sale.
type RecordSaleInput struct {
	ClientID  string
	Total     decimal.Decimal
	Reference string
}

// RecordSale persists a sale and credits the client's balance.
func (uc *MovementUseCase) RecordSale(ctx context.Context, input RecordSaleInput) (*domain.Sale, *domain.LedgerEntry, error) {
	sale := &domain.Sale{
		ID:        uc.idGen.Generate(),
		ClientID:  input.ClientID,
		Total:     input.Total,
		Reference: input.Reference,
		CreatedAt: time.Now().UTC(),
	}

	instruction, err := uc.resolver.ResolveSale(ctx, sale)
	if err != nil {
		return nil, nil, err
	}

	entry, err := uc.ledger.ApplyWith(ctx, instruction, func(ctx context.Context, tx Transaction) error {
		return uc.saleRepo.Create(ctx, tx, sale)
	})
	if err != nil {
		return nil, nil, err
	}

	return sale, entry, nil
}

// RecordPurchaseInput represents input for recording a purchase.
type RecordPurchaseInput struct {
	ProviderID    string
	Total         decimal.Decimal
	PaymentMethod string
	Status        string
}

// RecordPurchase persists a purchase and credits the provider's balance.
func (uc *MovementUseCase) RecordPurchase(ctx context.Context, input RecordPurchaseInput) (*domain.Purchase, *domain.LedgerEntry, error) {
	purchase := &domain.Purchase{
		ID:            uc.idGen.Generate(),
		ProviderID:    input.ProviderID,
		Total:         input.Total,
		PaymentMethod: input.PaymentMethod,
		Status:        input.Status,
		CreatedAt:     time.Now().UTC(),
	}

	instruction, err := uc.resolver.ResolvePurchase(ctx, purchase)
	if err != nil {
		return nil, nil, err
	}

	entry, err := uc.ledger.ApplyWith(ctx, instruction, func(ctx context.Context, tx Transaction) error {
		return uc.purchaseRepo.Create(ctx, tx, purchase)
	})
	if err != nil {
		return nil, nil, err
	}

	return purchase, entry, nil
}

// RecordPaymentInput represents input for recording a payment. Exactly one
// of ClientID or ProviderID must be set.
type RecordPaymentInput struct {
	ClientID   string
	ProviderID string
	Amount     decimal.Decimal
	Method     string
}

// RecordPayment persists a payment and debits the referenced party.
func (uc *MovementUseCase) RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.Payment, *domain.LedgerEntry, error) {
	payment := &domain.Payment{
		ID:         uc.idGen.Generate(),
		ClientID:   input.ClientID,
		ProviderID: input.ProviderID,
		Amount:     input.Amount,
		Method:     input.Method,
		CreatedAt:  time.Now().UTC(),
	}

	instruction, err := uc.resolver.ResolvePayment(ctx, payment)
	if err != nil {
		return nil, nil, err
	}

	entry, err := uc.ledger.ApplyWith(ctx, instruction, func(ctx context.Context, tx Transaction) error {
		return uc.paymentRepo.Create(ctx, tx, payment)
	})
	if err != nil {
		return nil, nil, err
	}

	return payment, entry, nil
}

// RecordCheckInput represents input for recording an issued check.
type RecordCheckInput struct {
	ProviderID string
	Number     string
	Bank       string
	Amount     decimal.Decimal
	DueDate    time.Time
}

// RecordCheck persists an issued check and debits the provider.
func (uc *MovementUseCase) RecordCheck(ctx context.Context, input RecordCheckInput) (*domain.Check, *domain.LedgerEntry, error) {
	check := &domain.Check{
		ID:         uc.idGen.Generate(),
		ProviderID: input.ProviderID,
		Number:     input.Number,
		Bank:       input.Bank,
		Amount:     input.Amount,
		DueDate:    input.DueDate,
		CreatedAt:  time.Now().UTC(),
	}

	instruction, err := uc.resolver.ResolveCheck(ctx, check)
	if err != nil {
		return nil, nil, err
	}

	entry, err := uc.ledger.ApplyWith(ctx, instruction, func(ctx context.Context, tx Transaction) error {
		return uc.checkRepo.Create(ctx, tx, check)
	})
	if err != nil {
		return nil, nil, err
	}

	return check, entry, nil
}

// RecordAdjustmentInput represents input for a manual correction entry.
type RecordAdjustmentInput struct {
	PartyID   string
	Kind      domain.EntryKind
	Amount    decimal.Decimal
	Reference string
}

// RecordAdjustment appends a compensating entry against a party.
func (uc *MovementUseCase) RecordAdjustment(ctx context.Context, input RecordAdjustmentInput) (*domain.LedgerEntry, error) {
	instruction, err := uc.resolver.ResolveAdjustment(ctx, input.PartyID, input.Kind, input.Amount, input.Reference)
	if err != nil {
		return nil, err
	}

	return uc.ledger.Apply(ctx, instruction)
}
