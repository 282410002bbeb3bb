package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/adapter/http/dto"
	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/infrastructure/metrics"
	"github.com/gestion/ledger/internal/usecase"
)

// PartyService defines the behavior needed by PartyHandler.
type PartyService interface {
	CreateParty(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error)
	GetParty(ctx context.Context, id string) (*domain.Party, error)
	ListParties(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error)
}

// BalanceService defines the balance read path needed by PartyHandler.
type BalanceService interface {
	GetBalance(ctx context.Context, partyID string) (decimal.Decimal, error)
}

// PartyHandler handles party-related HTTP requests.
type PartyHandler struct {
	partyUC   PartyService
	balanceUC BalanceService
	metrics   *metrics.Metrics
}

// NewPartyHandler creates a new PartyHandler. metrics may be nil.
func NewPartyHandler(partyUC PartyService, balanceUC BalanceService, m *metrics.Metrics) *PartyHandler {
	return &PartyHandler{partyUC: partyUC, balanceUC: balanceUC, metrics: m}
}

// Create registers a new client or provider.
func (h *PartyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	party, err := h.partyUC.CreateParty(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create party", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.PartiesCreated.WithLabelValues(string(party.Role)).Inc()
	}

	writeJSON(w, http.StatusCreated, dto.PartyFromDomain(party))
}

// Get retrieves a party by ID.
func (h *PartyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	party, err := h.partyUC.GetParty(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get party", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PartyFromDomain(party))
}

// List lists parties, optionally filtered by role.
func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)
	role := r.URL.Query().Get("role")

	parties, err := h.partyUC.ListParties(r.Context(), usecase.ListPartiesInput{
		Role:   domain.PartyRole(role),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list parties", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ListPartiesResponse{
		Parties: dto.PartiesFromDomain(parties),
		Total:   int64(len(parties)),
	})
}

// GetBalance returns a single party's current balance.
func (h *PartyHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	balance, err := h.balanceUC.GetBalance(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get balance", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		PartyID: id,
		Balance: balance,
	})
}

// ListBalances returns the balances of all parties, optionally filtered by
// role.
func (h *PartyHandler) ListBalances(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 1000)
	offset := parseIntQuery(r, "offset", 0)
	role := r.URL.Query().Get("role")

	parties, err := h.partyUC.ListParties(r.Context(), usecase.ListPartiesInput{
		Role:   domain.PartyRole(role),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list balances", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BalancesFromDomain(parties))
}
