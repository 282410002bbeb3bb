package handler

import (
	"context"
	"net/http"

	"github.com/gestion/ledger/internal/adapter/http/dto"
	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/usecase"
)

// EntryService defines the entry read path needed by EntryHandler.
type EntryService interface {
	ListEntries(ctx context.Context, q usecase.EntryQuery) ([]*domain.LedgerEntry, error)
}

// EntryHandler handles ledger entry listings.
type EntryHandler struct {
	entryUC EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryUC EntryService) *EntryHandler {
	return &EntryHandler{entryUC: entryUC}
}

// List lists entries for a party, optionally bounded by a date range.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	partyID := r.URL.Query().Get("party_id")
	if partyID == "" {
		writeError(w, http.StatusBadRequest, "missing party_id parameter", "")
		return
	}

	dateFrom, err := parseTimeQuery(r, "date_from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date_from (use RFC3339)", err.Error())
		return
	}

	dateTo, err := parseTimeQuery(r, "date_to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date_to (use RFC3339)", err.Error())
		return
	}

	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	entries, err := h.entryUC.ListEntries(r.Context(), usecase.EntryQuery{
		PartyID:  partyID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list entries", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}
