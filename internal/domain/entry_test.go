package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLedgerEntry_SignedAmount(t *testing.T) {
	tests := []struct {
		name   string
		kind   EntryKind
		amount decimal.Decimal
		want   decimal.Decimal
	}{
		{"credit is positive", EntryKindCredit, decimal.NewFromInt(500), decimal.NewFromInt(500)},
		{"debit is negative", EntryKindDebit, decimal.NewFromInt(200), decimal.NewFromInt(-200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &LedgerEntry{Kind: tt.kind, Amount: tt.amount}
			if got := e.SignedAmount(); !got.Equal(tt.want) {
				t.Errorf("SignedAmount() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLedgerInstruction_Delta(t *testing.T) {
	credit := LedgerInstruction{Kind: EntryKindCredit, Amount: decimal.NewFromInt(100)}
	if !credit.Delta().Equal(decimal.NewFromInt(100)) {
		t.Errorf("credit delta = %s, want 100", credit.Delta())
	}

	debit := LedgerInstruction{Kind: EntryKindDebit, Amount: decimal.NewFromInt(100)}
	if !debit.Delta().Equal(decimal.NewFromInt(-100)) {
		t.Errorf("debit delta = %s, want -100", debit.Delta())
	}
}

func TestLedgerInstruction_Validate(t *testing.T) {
	valid := LedgerInstruction{
		PartyID:    "party-1",
		PartyRole:  PartyRoleClient,
		Kind:       EntryKindCredit,
		Amount:     decimal.NewFromInt(100),
		SourceType: SourceTypeSale,
		SourceID:   "sale-1",
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*LedgerInstruction)
		want   error
	}{
		{"missing party", func(i *LedgerInstruction) { i.PartyID = "" }, ErrPartyNotFound},
		{"unknown role", func(i *LedgerInstruction) { i.PartyRole = "VENDOR" }, ErrRoleMismatch},
		{"unknown kind", func(i *LedgerInstruction) { i.Kind = "TRANSFER" }, ErrInvalidInstruction},
		{"unknown source type", func(i *LedgerInstruction) { i.SourceType = "INVOICE" }, ErrInvalidInstruction},
		{"zero amount", func(i *LedgerInstruction) { i.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(i *LedgerInstruction) { i.Amount = decimal.NewFromInt(-5) }, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instr := valid
			tt.mutate(&instr)

			if err := instr.Validate(); err != tt.want {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParty_ApplyDelta(t *testing.T) {
	p := &Party{Balance: decimal.NewFromInt(300)}

	if got := p.ApplyDelta(decimal.NewFromInt(200)); !got.Equal(decimal.NewFromInt(500)) {
		t.Errorf("ApplyDelta(+200) = %s, want 500", got)
	}

	if got := p.ApplyDelta(decimal.NewFromInt(-500)); !got.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("ApplyDelta(-500) = %s, want -200", got)
	}
}
