package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gestion/ledger/internal/adapter/http/dto"
	"github.com/gestion/ledger/internal/usecase"
)

// ReconciliationService defines the behavior needed by LedgerHandler.
type ReconciliationService interface {
	ReconcileParty(ctx context.Context, partyID string) (*usecase.ReconciliationResult, error)
	CheckLedgerConsistency(ctx context.Context) error
}

// LedgerHandler handles ledger-wide operations.
type LedgerHandler struct {
	reconciliationUC ReconciliationService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(reconciliationUC ReconciliationService) *LedgerHandler {
	return &LedgerHandler{reconciliationUC: reconciliationUC}
}

// CheckConsistency verifies that the sum of balances matches the sum of
// signed entry amounts across the whole ledger.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	if err := h.reconciliationUC.CheckLedgerConsistency(r.Context()); err != nil {
		writeJSON(w, http.StatusConflict, map[string]any{
			"status":     "inconsistent",
			"consistent": false,
			"message":    err.Error(),
		})

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "consistent",
		"consistent": true,
	})
}

// ReconcileParty compares one party's stored balance against the sum of its
// entries.
func (h *LedgerHandler) ReconcileParty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	result, err := h.reconciliationUC.ReconcileParty(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to reconcile party", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationFromResult(result))
}
