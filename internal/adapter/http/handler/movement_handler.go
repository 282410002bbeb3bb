package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gestion/ledger/internal/adapter/http/dto"
	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/infrastructure/metrics"
	"github.com/gestion/ledger/internal/usecase"
)

// MovementService defines the behavior needed by MovementHandler.
type MovementService interface {
	RecordSale(ctx context.Context, input usecase.RecordSaleInput) (*domain.Sale, *domain.LedgerEntry, error)
	RecordPurchase(ctx context.Context, input usecase.RecordPurchaseInput) (*domain.Purchase, *domain.LedgerEntry, error)
	RecordPayment(ctx context.Context, input usecase.RecordPaymentInput) (*domain.Payment, *domain.LedgerEntry, error)
	RecordCheck(ctx context.Context, input usecase.RecordCheckInput) (*domain.Check, *domain.LedgerEntry, error)
	RecordAdjustment(ctx context.Context, input usecase.RecordAdjustmentInput) (*domain.LedgerEntry, error)
}

// MovementHandler handles balance-affecting operations.
type MovementHandler struct {
	movementUC MovementService
	metrics    *metrics.Metrics
}

// NewMovementHandler creates a new MovementHandler. metrics may be nil.
func NewMovementHandler(movementUC MovementService, m *metrics.Metrics) *MovementHandler {
	return &MovementHandler{movementUC: movementUC, metrics: m}
}

func (h *MovementHandler) recordApplied(entry *domain.LedgerEntry, elapsed time.Duration) {
	if h.metrics == nil {
		return
	}

	h.metrics.EntriesApplied.WithLabelValues(string(entry.SourceType), string(entry.Kind)).Inc()
	h.metrics.ApplyDuration.Observe(elapsed.Seconds())
	h.metrics.EntryAmount.Observe(entry.Amount.InexactFloat64())
}

func (h *MovementHandler) recordFailure(err error) {
	if h.metrics == nil {
		return
	}

	switch {
	case errors.Is(err, domain.ErrConcurrentModification):
		h.metrics.ApplyConflicts.Inc()
		h.metrics.LedgerErrors.WithLabelValues("conflict").Inc()
	case errors.Is(err, domain.ErrPartyNotFound):
		h.metrics.LedgerErrors.WithLabelValues("party_not_found").Inc()
	case errors.Is(err, domain.ErrRoleMismatch):
		h.metrics.LedgerErrors.WithLabelValues("role_mismatch").Inc()
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrAmountTooLarge):
		h.metrics.LedgerErrors.WithLabelValues("invalid_amount").Inc()
	default:
		h.metrics.LedgerErrors.WithLabelValues("other").Inc()
	}
}

// CreateSale records a sale against a client.
func (h *MovementHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	start := time.Now()

	sale, entry, err := h.movementUC.RecordSale(r.Context(), input)
	if err != nil {
		h.recordFailure(err)
		status := mapDomainError(err)
		writeError(w, status, "failed to record sale", err.Error())

		return
	}

	h.recordApplied(entry, time.Since(start))
	writeJSON(w, http.StatusCreated, dto.SaleFromDomain(sale, entry))
}

// CreatePurchase records a purchase from a provider.
func (h *MovementHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	start := time.Now()

	purchase, entry, err := h.movementUC.RecordPurchase(r.Context(), input)
	if err != nil {
		h.recordFailure(err)
		status := mapDomainError(err)
		writeError(w, status, "failed to record purchase", err.Error())

		return
	}

	h.recordApplied(entry, time.Since(start))
	writeJSON(w, http.StatusCreated, dto.PurchaseFromDomain(purchase, entry))
}

// CreatePayment records a payment from a client or to a provider.
func (h *MovementHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	start := time.Now()

	payment, entry, err := h.movementUC.RecordPayment(r.Context(), input)
	if err != nil {
		h.recordFailure(err)
		status := mapDomainError(err)
		writeError(w, status, "failed to record payment", err.Error())

		return
	}

	h.recordApplied(entry, time.Since(start))
	writeJSON(w, http.StatusCreated, dto.PaymentFromDomain(payment, entry))
}

// CreateCheck records a check issued to a provider.
func (h *MovementHandler) CreateCheck(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	start := time.Now()

	check, entry, err := h.movementUC.RecordCheck(r.Context(), input)
	if err != nil {
		h.recordFailure(err)
		status := mapDomainError(err)
		writeError(w, status, "failed to record check", err.Error())

		return
	}

	h.recordApplied(entry, time.Since(start))
	writeJSON(w, http.StatusCreated, dto.CheckFromDomain(check, entry))
}

// CreateAdjustment appends a manual correction entry against a party.
func (h *MovementHandler) CreateAdjustment(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	start := time.Now()

	entry, err := h.movementUC.RecordAdjustment(r.Context(), input)
	if err != nil {
		h.recordFailure(err)
		status := mapDomainError(err)
		writeError(w, status, "failed to record adjustment", err.Error())

		return
	}

	h.recordApplied(entry, time.Since(start))
	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}
