package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/usecase"
)

// CreatePartyRequest represents a request to register a client or provider.
type CreatePartyRequest struct {
	Role    string `json:"role"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`
	Zone    string `json:"zone,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePartyRequest) ToUseCaseInput() usecase.CreatePartyInput {
	return usecase.CreatePartyInput{
		Role:    domain.PartyRole(r.Role),
		Name:    r.Name,
		Address: r.Address,
		TaxID:   r.TaxID,
		Zone:    r.Zone,
	}
}

// RecordSaleRequest represents a request to record a sale against a client.
type RecordSaleRequest struct {
	ClientID  string `json:"client_id"`
	Total     string `json:"total"`
	Reference string `json:"reference,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordSaleRequest) ToUseCaseInput() (usecase.RecordSaleInput, error) {
	total, err := parseAmount(r.Total)
	if err != nil {
		return usecase.RecordSaleInput{}, err
	}

	return usecase.RecordSaleInput{
		ClientID:  r.ClientID,
		Total:     total,
		Reference: r.Reference,
	}, nil
}

// RecordPurchaseRequest represents a request to record a purchase from a
// provider.
type RecordPurchaseRequest struct {
	ProviderID    string `json:"provider_id"`
	Total         string `json:"total"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Status        string `json:"status,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordPurchaseRequest) ToUseCaseInput() (usecase.RecordPurchaseInput, error) {
	total, err := parseAmount(r.Total)
	if err != nil {
		return usecase.RecordPurchaseInput{}, err
	}

	return usecase.RecordPurchaseInput{
		ProviderID:    r.ProviderID,
		Total:         total,
		PaymentMethod: r.PaymentMethod,
		Status:        r.Status,
	}, nil
}

// RecordPaymentRequest represents a request to record a payment. Exactly one
// of client_id or provider_id must be set.
type RecordPaymentRequest struct {
	ClientID   string `json:"client_id,omitempty"`
	ProviderID string `json:"provider_id,omitempty"`
	Amount     string `json:"amount"`
	Method     string `json:"method,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordPaymentRequest) ToUseCaseInput() (usecase.RecordPaymentInput, error) {
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return usecase.RecordPaymentInput{}, err
	}

	return usecase.RecordPaymentInput{
		ClientID:   r.ClientID,
		ProviderID: r.ProviderID,
		Amount:     amount,
		Method:     r.Method,
	}, nil
}

// RecordCheckRequest represents a request to record a check issued to a
// provider.
type RecordCheckRequest struct {
	ProviderID string     `json:"provider_id"`
	Number     string     `json:"number"`
	Bank       string     `json:"bank,omitempty"`
	Amount     string     `json:"amount"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordCheckRequest) ToUseCaseInput() (usecase.RecordCheckInput, error) {
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return usecase.RecordCheckInput{}, err
	}

	input := usecase.RecordCheckInput{
		ProviderID: r.ProviderID,
		Number:     r.Number,
		Bank:       r.Bank,
		Amount:     amount,
	}
	if r.DueDate != nil {
		input.DueDate = *r.DueDate
	}

	return input, nil
}

// RecordAdjustmentRequest represents a request for a manual correction
// entry.
type RecordAdjustmentRequest struct {
	PartyID   string `json:"party_id"`
	Kind      string `json:"kind"`
	Amount    string `json:"amount"`
	Reference string `json:"reference,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordAdjustmentRequest) ToUseCaseInput() (usecase.RecordAdjustmentInput, error) {
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return usecase.RecordAdjustmentInput{}, err
	}

	return usecase.RecordAdjustmentInput{
		PartyID:   r.PartyID,
		Kind:      domain.EntryKind(r.Kind),
		Amount:    amount,
		Reference: r.Reference,
	}, nil
}

// SweepRequest represents a request to run the archival sweep. Cutoff is
// optional; when absent the configured retention period applies.
type SweepRequest struct {
	Cutoff *time.Time `json:"cutoff,omitempty"`
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}

	return amount, nil
}
