package domain

import "github.com/shopspring/decimal"

// LedgerInstruction is a normalized, validated request to mutate one
// party's balance. Resolvers produce instructions from source records; the
// ledger engine is the only consumer.
type LedgerInstruction struct {
	PartyID    string
	PartyRole  PartyRole
	Kind       EntryKind
	Amount     decimal.Decimal
	Reference  string
	SourceType SourceType
	SourceID   string
}

// Delta returns the signed balance change the instruction describes.
func (i LedgerInstruction) Delta() decimal.Decimal {
	if i.Kind == EntryKindDebit {
		return i.Amount.Neg()
	}

	return i.Amount
}

// Validate checks the instruction is internally consistent. Party existence
// and role are re-verified by the engine under lock.
func (i LedgerInstruction) Validate() error {
	if i.PartyID == "" {
		return ErrPartyNotFound
	}

	if !i.PartyRole.Valid() {
		return ErrRoleMismatch
	}

	if !i.Kind.Valid() || !i.SourceType.Valid() {
		return ErrInvalidInstruction
	}

	return ValidateAmount(i.Amount)
}
