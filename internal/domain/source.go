package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a sale recorded against a client. Archived sales are historical
// rows excluded from day-to-day listings; archiving never touches the
// ledger entries the sale produced.
type Sale struct {
	ID        string
	ClientID  string
	Total     decimal.Decimal
	Reference string
	Archived  bool
	CreatedAt time.Time
}

// Purchase is a purchase recorded against a provider.
type Purchase struct {
	ID            string
	ProviderID    string
	Total         decimal.Decimal
	PaymentMethod string
	Status        string
	Archived      bool
	CreatedAt     time.Time
}

// Payment settles part of a party's balance. Exactly one of ClientID or
// ProviderID is set: a payment received from a client debits the client, a
// payment made to a provider debits the provider.
type Payment struct {
	ID         string
	ClientID   string
	ProviderID string
	Amount     decimal.Decimal
	Method     string
	CreatedAt  time.Time
}

// Check is a check issued to a provider. Issuing it debits the provider's
// balance.
type Check struct {
	ID         string
	ProviderID string
	Number     string
	Bank       string
	Amount     decimal.Decimal
	DueDate    time.Time
	CreatedAt  time.Time
}
