package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/usecase"
)

// PartyResponse represents a party in API responses.
type PartyResponse struct {
	ID        string          `json:"id"`
	Role      string          `json:"role"`
	Name      string          `json:"name"`
	Address   string          `json:"address,omitempty"`
	TaxID     string          `json:"tax_id,omitempty"`
	Zone      string          `json:"zone,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PartyFromDomain converts a domain party to a response.
func PartyFromDomain(p *domain.Party) *PartyResponse {
	return &PartyResponse{
		ID:        p.ID,
		Role:      string(p.Role),
		Name:      p.Name,
		Address:   p.Address,
		TaxID:     p.TaxID,
		Zone:      p.Zone,
		Balance:   p.Balance,
		Version:   p.Version,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PartiesFromDomain converts domain parties to responses.
func PartiesFromDomain(parties []*domain.Party) []*PartyResponse {
	result := make([]*PartyResponse, len(parties))
	for i, p := range parties {
		result[i] = PartyFromDomain(p)
	}
	return result
}

// ListPartiesResponse wraps a page of parties.
type ListPartiesResponse struct {
	Parties []*PartyResponse `json:"parties"`
	Total   int64            `json:"total"`
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID           string          `json:"id"`
	PartyID      string          `json:"party_id"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Reference    string          `json:"reference,omitempty"`
	SourceType   string          `json:"source_type"`
	SourceID     string          `json:"source_id,omitempty"`
	PartyVersion int64           `json:"party_version"`
	CreatedAt    time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.LedgerEntry) *EntryResponse {
	return &EntryResponse{
		ID:           e.ID,
		PartyID:      e.PartyID,
		Kind:         string(e.Kind),
		Amount:       e.Amount,
		BalanceAfter: e.BalanceAfter,
		Reference:    e.Reference,
		SourceType:   string(e.SourceType),
		SourceID:     e.SourceID,
		PartyVersion: e.PartyVersion,
		CreatedAt:    e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.LedgerEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// SaleResponse represents a recorded sale together with the ledger entry it
// produced.
type SaleResponse struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"client_id"`
	Total     decimal.Decimal `json:"total"`
	Reference string          `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Entry     *EntryResponse  `json:"entry"`
}

// SaleFromDomain converts a domain sale and its entry to a response.
func SaleFromDomain(s *domain.Sale, entry *domain.LedgerEntry) *SaleResponse {
	return &SaleResponse{
		ID:        s.ID,
		ClientID:  s.ClientID,
		Total:     s.Total,
		Reference: s.Reference,
		CreatedAt: s.CreatedAt,
		Entry:     EntryFromDomain(entry),
	}
}

// PurchaseResponse represents a recorded purchase together with its entry.
type PurchaseResponse struct {
	ID            string          `json:"id"`
	ProviderID    string          `json:"provider_id"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Status        string          `json:"status,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	Entry         *EntryResponse  `json:"entry"`
}

// PurchaseFromDomain converts a domain purchase and its entry to a response.
func PurchaseFromDomain(p *domain.Purchase, entry *domain.LedgerEntry) *PurchaseResponse {
	return &PurchaseResponse{
		ID:            p.ID,
		ProviderID:    p.ProviderID,
		Total:         p.Total,
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		Entry:         EntryFromDomain(entry),
	}
}

// PaymentResponse represents a recorded payment together with its entry.
type PaymentResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id,omitempty"`
	ProviderID string          `json:"provider_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	Entry      *EntryResponse  `json:"entry"`
}

// PaymentFromDomain converts a domain payment and its entry to a response.
func PaymentFromDomain(p *domain.Payment, entry *domain.LedgerEntry) *PaymentResponse {
	return &PaymentResponse{
		ID:         p.ID,
		ClientID:   p.ClientID,
		ProviderID: p.ProviderID,
		Amount:     p.Amount,
		Method:     p.Method,
		CreatedAt:  p.CreatedAt,
		Entry:      EntryFromDomain(entry),
	}
}

// CheckResponse represents a recorded check together with its entry.
type CheckResponse struct {
	ID         string          `json:"id"`
	ProviderID string          `json:"provider_id"`
	Number     string          `json:"number"`
	Bank       string          `json:"bank,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"due_date"`
	CreatedAt  time.Time       `json:"created_at"`
	Entry      *EntryResponse  `json:"entry"`
}

// CheckFromDomain converts a domain check and its entry to a response.
func CheckFromDomain(c *domain.Check, entry *domain.LedgerEntry) *CheckResponse {
	return &CheckResponse{
		ID:         c.ID,
		ProviderID: c.ProviderID,
		Number:     c.Number,
		Bank:       c.Bank,
		Amount:     c.Amount,
		DueDate:    c.DueDate,
		CreatedAt:  c.CreatedAt,
		Entry:      EntryFromDomain(entry),
	}
}

// BalanceResponse represents a single party balance.
type BalanceResponse struct {
	PartyID string          `json:"party_id"`
	Role    string          `json:"role,omitempty"`
	Name    string          `json:"name,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

// BalancesFromDomain converts parties to balance rows.
func BalancesFromDomain(parties []*domain.Party) []*BalanceResponse {
	result := make([]*BalanceResponse, len(parties))
	for i, p := range parties {
		result[i] = &BalanceResponse{
			PartyID: p.ID,
			Role:    string(p.Role),
			Name:    p.Name,
			Balance: p.Balance,
		}
	}
	return result
}

// SweepResponse represents the outcome of an archival sweep.
type SweepResponse struct {
	Cutoff            time.Time `json:"cutoff"`
	SalesArchived     int64     `json:"sales_archived"`
	PurchasesArchived int64     `json:"purchases_archived"`
	Total             int64     `json:"total"`
}

// SweepFromResult converts a sweep result to a response.
func SweepFromResult(r usecase.SweepResult) *SweepResponse {
	return &SweepResponse{
		Cutoff:            r.Cutoff,
		SalesArchived:     r.SalesArchived,
		PurchasesArchived: r.PurchasesArchived,
		Total:             r.Total(),
	}
}

// ReconciliationResponse represents a per-party reconciliation outcome.
type ReconciliationResponse struct {
	PartyID           string          `json:"party_id"`
	RecordedBalance   decimal.Decimal `json:"recorded_balance"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	Difference        decimal.Decimal `json:"difference"`
	IsReconciled      bool            `json:"is_reconciled"`
	CheckedAt         time.Time       `json:"checked_at"`
}

// ReconciliationFromResult converts a reconciliation result to a response.
func ReconciliationFromResult(r *usecase.ReconciliationResult) *ReconciliationResponse {
	return &ReconciliationResponse{
		PartyID:           r.PartyID,
		RecordedBalance:   r.RecordedBalance,
		CalculatedBalance: r.CalculatedBalance,
		Difference:        r.Difference,
		IsReconciled:      r.IsReconciled,
		CheckedAt:         r.CheckedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
