package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/gestion/ledger/internal/domain"
)

// ArchiveUseCase is the archival sweeper. It reclassifies old sale and
// purchase rows as archived without touching ledger entries, balances,
// payments or checks. The transition is one-way: there is no unarchive.
type ArchiveUseCase struct {
	saleRepo     SaleRepository
	purchaseRepo PurchaseRepository
	outboxRepo   OutboxRepository
	txManager    TransactionManager
	idGen        IDGenerator
	retention    time.Duration
}

// NewArchiveUseCase creates a new ArchiveUseCase. retention <= 0 falls back
// to DefaultRetentionPeriod.
func NewArchiveUseCase(
	saleRepo SaleRepository,
	purchaseRepo PurchaseRepository,
	outboxRepo OutboxRepository,
	txManager TransactionManager,
	idGen IDGenerator,
	retention time.Duration,
) *ArchiveUseCase {
	if retention <= 0 {
		retention = DefaultRetentionPeriod
	}

	return &ArchiveUseCase{
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		outboxRepo:   outboxRepo,
		txManager:    txManager,
		idGen:        idGen,
		retention:    retention,
	}
}

// SweepResult reports how many records a sweep archived.
type SweepResult struct {
	Cutoff            time.Time
	SalesArchived     int64
	PurchasesArchived int64
}

// Total returns the number of records the sweep archived.
func (r SweepResult) Total() int64 {
	return r.SalesArchived + r.PurchasesArchived
}

// Sweep archives active sale and purchase rows created before cutoff.
// Re-running with the same cutoff archives nothing further. A failure on
// one table does not block the sweep of the other.
func (uc *ArchiveUseCase) Sweep(ctx context.Context, cutoff time.Time) (SweepResult, error) {
	result := SweepResult{Cutoff: cutoff}

	var errs []error

	salesArchived, err := uc.saleRepo.ArchiveBefore(ctx, cutoff)
	if err != nil {
		errs = append(errs, err)
	}
	result.SalesArchived = salesArchived

	purchasesArchived, err := uc.purchaseRepo.ArchiveBefore(ctx, cutoff)
	if err != nil {
		errs = append(errs, err)
	}
	result.PurchasesArchived = purchasesArchived

	if result.Total() > 0 {
		if err := uc.recordSweepEvent(ctx, result); err != nil {
			errs = append(errs, err)
		}
	}

	return result, errors.Join(errs...)
}

// SweepExpired runs Sweep with the configured retention cutoff.
func (uc *ArchiveUseCase) SweepExpired(ctx context.Context) (SweepResult, error) {
	return uc.Sweep(ctx, time.Now().UTC().Add(-uc.retention))
}

func (uc *ArchiveUseCase) recordSweepEvent(ctx context.Context, result SweepResult) error {
	if uc.outboxRepo == nil || uc.txManager == nil {
		return nil
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   uc.idGen.Generate(),
		AggregateType: domain.AggregateTypeArchive,
		EventType:     domain.EventTypeSweepCompleted,
		Payload: map[string]any{
			"cutoff":             result.Cutoff.Format(time.RFC3339),
			"sales_archived":     result.SalesArchived,
			"purchases_archived": result.PurchasesArchived,
		},
		CreatedAt: now,
	}

	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
