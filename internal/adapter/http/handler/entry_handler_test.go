package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/adapter/http/dto"
	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/usecase"
)

type entryServiceStub struct {
	listFn func(ctx context.Context, q usecase.EntryQuery) ([]*domain.LedgerEntry, error)
}

func (s *entryServiceStub) ListEntries(ctx context.Context, q usecase.EntryQuery) ([]*domain.LedgerEntry, error) {
	return s.listFn(ctx, q)
}

func TestEntryHandler_List_Success(t *testing.T) {
	entries := []*domain.LedgerEntry{
		{
			ID:           "entry-1",
			PartyID:      "party-1",
			Kind:         domain.EntryKindCredit,
			Amount:       decimal.RequireFromString("500"),
			BalanceAfter: decimal.RequireFromString("500"),
			SourceType:   domain.SourceTypeSale,
			PartyVersion: 1,
		},
		{
			ID:           "entry-2",
			PartyID:      "party-1",
			Kind:         domain.EntryKindDebit,
			Amount:       decimal.RequireFromString("200"),
			BalanceAfter: decimal.RequireFromString("300"),
			SourceType:   domain.SourceTypePayment,
			PartyVersion: 2,
		},
	}

	var captured usecase.EntryQuery
	handler := NewEntryHandler(&entryServiceStub{
		listFn: func(ctx context.Context, q usecase.EntryQuery) ([]*domain.LedgerEntry, error) {
			captured = q
			return entries, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/movimientos?party_id=party-1&limit=10&offset=5", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.PartyID != "party-1" || captured.Limit != 10 || captured.Offset != 5 {
		t.Fatalf("unexpected query: %+v", captured)
	}

	var resp []*dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp))
	}
	if resp[0].Kind != "CREDIT" || resp[1].Kind != "DEBIT" {
		t.Fatalf("unexpected entry kinds: %s, %s", resp[0].Kind, resp[1].Kind)
	}
}

func TestEntryHandler_List_MissingPartyID(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		listFn: func(ctx context.Context, q usecase.EntryQuery) ([]*domain.LedgerEntry, error) {
			t.Fatal("ListEntries should not be called without party_id")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/movimientos", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_List_DateRange(t *testing.T) {
	var captured usecase.EntryQuery
	handler := NewEntryHandler(&entryServiceStub{
		listFn: func(ctx context.Context, q usecase.EntryQuery) ([]*domain.LedgerEntry, error) {
			captured = q
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet,
		"/movimientos?party_id=party-1&date_from=2026-01-01T00:00:00Z&date_to=2026-02-01T00:00:00Z", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if captured.DateFrom == nil || captured.DateTo == nil {
		t.Fatalf("expected both date bounds, got %+v", captured)
	}
	if !captured.DateFrom.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date_from: %s", captured.DateFrom)
	}
}

func TestEntryHandler_List_InvalidDate(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		listFn: func(ctx context.Context, q usecase.EntryQuery) ([]*domain.LedgerEntry, error) {
			t.Fatal("ListEntries should not be called for an invalid date")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/movimientos?party_id=party-1&date_from=yesterday", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_List_PartyNotFound(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		listFn: func(ctx context.Context, q usecase.EntryQuery) ([]*domain.LedgerEntry, error) {
			return nil, domain.ErrPartyNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/movimientos?party_id=missing", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
