package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/adapter/http/dto"
	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/usecase"
)

type partyServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error)
	getFn    func(ctx context.Context, id string) (*domain.Party, error)
	listFn   func(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error)
}

func (s *partyServiceStub) CreateParty(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
	return s.createFn(ctx, input)
}

func (s *partyServiceStub) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	return s.getFn(ctx, id)
}

func (s *partyServiceStub) ListParties(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error) {
	return s.listFn(ctx, input)
}

type balanceServiceStub struct {
	getBalanceFn func(ctx context.Context, partyID string) (decimal.Decimal, error)
}

func (s *balanceServiceStub) GetBalance(ctx context.Context, partyID string) (decimal.Decimal, error) {
	return s.getBalanceFn(ctx, partyID)
}

func TestPartyHandler_Create_Success(t *testing.T) {
	party := &domain.Party{
		ID:   "party-1",
		Role: domain.PartyRoleClient,
		Name: "Comercial Andina",
	}

	var captured usecase.CreatePartyInput
	handler := NewPartyHandler(&partyServiceStub{
		createFn: func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
			captured = input
			return party, nil
		},
		getFn:  func(ctx context.Context, id string) (*domain.Party, error) { return nil, nil },
		listFn: func(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error) { return nil, nil },
	}, nil, nil)

	body, _ := json.Marshal(dto.CreatePartyRequest{
		Role: "CLIENT",
		Name: "Comercial Andina",
	})

	req := httptest.NewRequest(http.MethodPost, "/parties", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Role != domain.PartyRoleClient || captured.Name != "Comercial Andina" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.PartyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "party-1" {
		t.Fatalf("expected party ID party-1, got %s", resp.ID)
	}
}

func TestPartyHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewPartyHandler(&partyServiceStub{
		createFn: func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
			t.Fatal("CreateParty should not be called for invalid payload")
			return nil, nil
		},
		getFn:  func(ctx context.Context, id string) (*domain.Party, error) { return nil, nil },
		listFn: func(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error) { return nil, nil },
	}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/parties", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPartyHandler_Create_RoleMismatch(t *testing.T) {
	handler := NewPartyHandler(&partyServiceStub{
		createFn: func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
			return nil, domain.ErrRoleMismatch
		},
		getFn:  func(ctx context.Context, id string) (*domain.Party, error) { return nil, nil },
		listFn: func(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error) { return nil, nil },
	}, nil, nil)

	body, _ := json.Marshal(dto.CreatePartyRequest{Role: "EMPLOYEE", Name: "x"})
	req := httptest.NewRequest(http.MethodPost, "/parties", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPartyHandler_Get_NotFound(t *testing.T) {
	handler := NewPartyHandler(&partyServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Party, error) {
			return nil, domain.ErrPartyNotFound
		},
		createFn: func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) { return nil, nil },
		listFn:   func(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error) { return nil, nil },
	}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/parties/party-1", nil)
	req = setChiURLParam(req, "id", "party-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPartyHandler_List(t *testing.T) {
	handler := NewPartyHandler(&partyServiceStub{
		listFn: func(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error) {
			if input.Limit != 5 || input.Offset != 2 || input.Role != domain.PartyRoleClient {
				t.Fatalf("expected limit=5 offset=2 role=CLIENT, got %+v", input)
			}
			return []*domain.Party{{ID: "party-1"}, {ID: "party-2"}}, nil
		},
		createFn: func(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) { return nil, nil },
		getFn:    func(ctx context.Context, id string) (*domain.Party, error) { return nil, nil },
	}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/parties?limit=5&offset=2&role=CLIENT", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListPartiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Parties) != 2 {
		t.Fatalf("expected 2 parties, got %d", len(resp.Parties))
	}
}

func TestPartyHandler_GetBalance(t *testing.T) {
	handler := NewPartyHandler(&partyServiceStub{}, &balanceServiceStub{
		getBalanceFn: func(ctx context.Context, partyID string) (decimal.Decimal, error) {
			if partyID != "party-1" {
				t.Fatalf("expected party-1, got %s", partyID)
			}
			return decimal.RequireFromString("300"), nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/parties/party-1/balance", nil)
	req = setChiURLParam(req, "id", "party-1")
	rec := httptest.NewRecorder()

	handler.GetBalance(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Balance.Equal(decimal.RequireFromString("300")) {
		t.Fatalf("expected balance 300, got %s", resp.Balance)
	}
}

func TestPartyHandler_ListBalances_Error(t *testing.T) {
	handler := NewPartyHandler(&partyServiceStub{
		listFn: func(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error) {
			return nil, errors.New("db down")
		},
	}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/saldos", nil)
	rec := httptest.NewRecorder()

	handler.ListBalances(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
