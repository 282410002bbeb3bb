package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind is the direction of a balance change.
type EntryKind string

const (
	EntryKindCredit EntryKind = "CREDIT"
	EntryKindDebit  EntryKind = "DEBIT"
)

// Valid reports whether the kind is CREDIT or DEBIT.
func (k EntryKind) Valid() bool {
	return k == EntryKindCredit || k == EntryKindDebit
}

// SourceType identifies the operation that originated a ledger entry.
type SourceType string

const (
	SourceTypeSale       SourceType = "SALE"
	SourceTypePurchase   SourceType = "PURCHASE"
	SourceTypePayment    SourceType = "PAYMENT"
	SourceTypeCheck      SourceType = "CHECK"
	SourceTypeAdjustment SourceType = "ADJUSTMENT"
)

// Valid reports whether the source type is known.
func (s SourceType) Valid() bool {
	switch s {
	case SourceTypeSale, SourceTypePurchase, SourceTypePayment, SourceTypeCheck, SourceTypeAdjustment:
		return true
	}

	return false
}

// LedgerEntry is an immutable record of a single balance-affecting event.
// Entries are append-only: there is no update or delete path, corrections
// are made by appending a compensating entry.
type LedgerEntry struct {
	CreatedAt    time.Time
	ID           string
	PartyID      string
	Kind         EntryKind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Reference    string
	SourceType   SourceType
	SourceID     string
	PartyVersion int64
}

// SignedAmount returns the entry amount with the sign implied by its kind:
// positive for CREDIT, negative for DEBIT.
func (e *LedgerEntry) SignedAmount() decimal.Decimal {
	if e.Kind == EntryKindDebit {
		return e.Amount.Neg()
	}

	return e.Amount
}
