package dto

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/usecase"
)

func TestCreatePartyRequest_ToUseCaseInput(t *testing.T) {
	req := &CreatePartyRequest{
		Role:    "CLIENT",
		Name:    "Comercial Andina",
		Address: "Av. Siempreviva 742",
		TaxID:   "20-12345678-9",
		Zone:    "Norte",
	}

	got := req.ToUseCaseInput()
	want := usecase.CreatePartyInput{
		Role:    domain.PartyRoleClient,
		Name:    "Comercial Andina",
		Address: "Av. Siempreviva 742",
		TaxID:   "20-12345678-9",
		Zone:    "Norte",
	}

	if got != want {
		t.Fatalf("ToUseCaseInput() = %+v, want %+v", got, want)
	}
}

func TestRecordSaleRequest_ToUseCaseInput(t *testing.T) {
	tests := []struct {
		name        string
		request     *RecordSaleRequest
		want        usecase.RecordSaleInput
		expectError bool
	}{
		{
			name: "valid total",
			request: &RecordSaleRequest{
				ClientID:  "client-1",
				Total:     "500",
				Reference: "Invoice 0001",
			},
			want: usecase.RecordSaleInput{
				ClientID:  "client-1",
				Total:     decimal.RequireFromString("500"),
				Reference: "Invoice 0001",
			},
		},
		{
			name:        "invalid total",
			request:     &RecordSaleRequest{ClientID: "client-1", Total: "bad"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.ToUseCaseInput()

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.ClientID != tt.want.ClientID || !got.Total.Equal(tt.want.Total) || got.Reference != tt.want.Reference {
				t.Fatalf("ToUseCaseInput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRecordPaymentRequest_ToUseCaseInput(t *testing.T) {
	req := &RecordPaymentRequest{
		ClientID: "client-1",
		Amount:   "200.50",
		Method:   "cash",
	}

	got, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ClientID != "client-1" || got.ProviderID != "" {
		t.Fatalf("unexpected party fields: %+v", got)
	}
	if !got.Amount.Equal(decimal.RequireFromString("200.50")) {
		t.Fatalf("Amount = %s, want 200.50", got.Amount)
	}

	if _, err := (&RecordPaymentRequest{Amount: "nope"}).ToUseCaseInput(); err == nil {
		t.Fatalf("expected error for invalid amount")
	}
}

func TestRecordAdjustmentRequest_ToUseCaseInput(t *testing.T) {
	req := &RecordAdjustmentRequest{
		PartyID:   "party-1",
		Kind:      "DEBIT",
		Amount:    "15",
		Reference: "rounding correction",
	}

	got, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Kind != domain.EntryKindDebit || !got.Amount.Equal(decimal.RequireFromString("15")) {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
}
