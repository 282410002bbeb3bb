package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyRole distinguishes the debtor and creditor sides of the ledger.
type PartyRole string

const (
	// PartyRoleClient is the debtor side: a positive balance is the amount
	// the client owes us.
	PartyRoleClient PartyRole = "CLIENT"
	// PartyRoleProvider is the creditor side: a positive balance is the
	// amount we owe the provider.
	PartyRoleProvider PartyRole = "PROVIDER"
)

// Valid reports whether the role is one of the known roles.
func (r PartyRole) Valid() bool {
	return r == PartyRoleClient || r == PartyRoleProvider
}

// Party is a client or provider with a running balance. Balance is a
// denormalized cache of the sum of all ledger entries for the party and is
// written only by the ledger engine, in the same transaction as the entry
// that defines it.
type Party struct {
	ID        string
	Role      PartyRole
	Name      string
	Address   string
	TaxID     string
	Zone      string
	Balance   decimal.Decimal
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyDelta returns the balance after applying a signed delta.
func (p *Party) ApplyDelta(delta decimal.Decimal) decimal.Decimal {
	return p.Balance.Add(delta)
}
