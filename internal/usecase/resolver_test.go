package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/usecase"
	"github.com/gestion/ledger/internal/usecase/mocks"
)

func seedParties(t *testing.T) *mocks.MockPartyRepository {
	t.Helper()

	repo := mocks.NewMockPartyRepository()
	repo.Seed(&domain.Party{ID: "client-1", Role: domain.PartyRoleClient, Name: "Acme Retail", Balance: decimal.Zero})
	repo.Seed(&domain.Party{ID: "provider-1", Role: domain.PartyRoleProvider, Name: "Norte Supplies", Balance: decimal.Zero})
	return repo
}

func TestResolveSale(t *testing.T) {
	resolver := usecase.NewResolver(seedParties(t))

	sale := &domain.Sale{
		ID:       "sale-1",
		ClientID: "client-1",
		Total:    decimal.NewFromInt(500),
	}

	instruction, err := resolver.ResolveSale(context.Background(), sale)
	require.NoError(t, err)

	assert.Equal(t, "client-1", instruction.PartyID)
	assert.Equal(t, domain.PartyRoleClient, instruction.PartyRole)
	assert.Equal(t, domain.EntryKindCredit, instruction.Kind)
	assert.True(t, instruction.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, domain.SourceTypeSale, instruction.SourceType)
	assert.Equal(t, "sale-1", instruction.SourceID)
	assert.Equal(t, "Sale #sale-1", instruction.Reference)
}

func TestResolveSaleKeepsExplicitReference(t *testing.T) {
	resolver := usecase.NewResolver(seedParties(t))

	sale := &domain.Sale{
		ID:        "sale-2",
		ClientID:  "client-1",
		Total:     decimal.NewFromInt(120),
		Reference: "Invoice A-0042",
	}

	instruction, err := resolver.ResolveSale(context.Background(), sale)
	require.NoError(t, err)
	assert.Equal(t, "Invoice A-0042", instruction.Reference)
}

func TestResolvePurchase(t *testing.T) {
	resolver := usecase.NewResolver(seedParties(t))

	purchase := &domain.Purchase{
		ID:         "purchase-1",
		ProviderID: "provider-1",
		Total:      decimal.NewFromInt(800),
	}

	instruction, err := resolver.ResolvePurchase(context.Background(), purchase)
	require.NoError(t, err)

	assert.Equal(t, "provider-1", instruction.PartyID)
	assert.Equal(t, domain.PartyRoleProvider, instruction.PartyRole)
	assert.Equal(t, domain.EntryKindCredit, instruction.Kind)
	assert.Equal(t, domain.SourceTypePurchase, instruction.SourceType)
}

func TestResolvePayment(t *testing.T) {
	tests := []struct {
		name      string
		payment   *domain.Payment
		wantParty string
		wantRole  domain.PartyRole
		wantErr   error
	}{
		{
			name:      "from client",
			payment:   &domain.Payment{ID: "pay-1", ClientID: "client-1", Amount: decimal.NewFromInt(200)},
			wantParty: "client-1",
			wantRole:  domain.PartyRoleClient,
		},
		{
			name:      "to provider",
			payment:   &domain.Payment{ID: "pay-2", ProviderID: "provider-1", Amount: decimal.NewFromInt(300)},
			wantParty: "provider-1",
			wantRole:  domain.PartyRoleProvider,
		},
		{
			name:    "both parties set",
			payment: &domain.Payment{ID: "pay-3", ClientID: "client-1", ProviderID: "provider-1", Amount: decimal.NewFromInt(50)},
			wantErr: domain.ErrRoleMismatch,
		},
		{
			name:    "no party set",
			payment: &domain.Payment{ID: "pay-4", Amount: decimal.NewFromInt(50)},
			wantErr: domain.ErrPartyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := usecase.NewResolver(seedParties(t))

			instruction, err := resolver.ResolvePayment(context.Background(), tt.payment)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantParty, instruction.PartyID)
			assert.Equal(t, tt.wantRole, instruction.PartyRole)
			assert.Equal(t, domain.EntryKindDebit, instruction.Kind)
			assert.Equal(t, domain.SourceTypePayment, instruction.SourceType)
		})
	}
}

func TestResolveCheck(t *testing.T) {
	resolver := usecase.NewResolver(seedParties(t))

	check := &domain.Check{
		ID:         "check-1",
		ProviderID: "provider-1",
		Number:     "00012345",
		Bank:       "Banco Norte",
		Amount:     decimal.NewFromInt(150),
		DueDate:    time.Now().Add(30 * 24 * time.Hour),
	}

	instruction, err := resolver.ResolveCheck(context.Background(), check)
	require.NoError(t, err)

	assert.Equal(t, domain.EntryKindDebit, instruction.Kind)
	assert.Equal(t, domain.SourceTypeCheck, instruction.SourceType)
	assert.Equal(t, "Check #00012345 Banco Norte", instruction.Reference)
}

func TestResolveRejectsRoleMismatch(t *testing.T) {
	resolver := usecase.NewResolver(seedParties(t))

	// provider-1 is a provider, not a client
	sale := &domain.Sale{ID: "sale-x", ClientID: "provider-1", Total: decimal.NewFromInt(10)}

	_, err := resolver.ResolveSale(context.Background(), sale)
	require.ErrorIs(t, err, domain.ErrRoleMismatch)
}

func TestResolveRejectsUnknownParty(t *testing.T) {
	resolver := usecase.NewResolver(seedParties(t))

	sale := &domain.Sale{ID: "sale-x", ClientID: "ghost", Total: decimal.NewFromInt(10)}

	_, err := resolver.ResolveSale(context.Background(), sale)
	require.ErrorIs(t, err, domain.ErrPartyNotFound)
}

func TestResolveRejectsNonPositiveAmounts(t *testing.T) {
	resolver := usecase.NewResolver(seedParties(t))

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		sale := &domain.Sale{ID: "sale-x", ClientID: "client-1", Total: amount}

		_, err := resolver.ResolveSale(context.Background(), sale)
		require.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %s", amount)
	}
}

func TestResolveRejectsOverlongReference(t *testing.T) {
	resolver := usecase.NewResolver(seedParties(t))

	sale := &domain.Sale{
		ID:        "sale-x",
		ClientID:  "client-1",
		Total:     decimal.NewFromInt(10),
		Reference: strings.Repeat("x", domain.MaxReferenceLength+1),
	}

	_, err := resolver.ResolveSale(context.Background(), sale)
	require.ErrorIs(t, err, domain.ErrReferenceTooLong)
}

func TestResolveAdjustment(t *testing.T) {
	resolver := usecase.NewResolver(seedParties(t))

	instruction, err := resolver.ResolveAdjustment(context.Background(), "provider-1", domain.EntryKindDebit, decimal.NewFromInt(25), "duplicate invoice reversal")
	require.NoError(t, err)

	// adjustments take the party's actual role
	assert.Equal(t, domain.PartyRoleProvider, instruction.PartyRole)
	assert.Equal(t, domain.EntryKindDebit, instruction.Kind)
	assert.Equal(t, domain.SourceTypeAdjustment, instruction.SourceType)
	assert.Empty(t, instruction.SourceID)
}

func TestResolveAdjustmentRejectsBadKind(t *testing.T) {
	resolver := usecase.NewResolver(seedParties(t))

	_, err := resolver.ResolveAdjustment(context.Background(), "provider-1", domain.EntryKind("TRANSFER"), decimal.NewFromInt(25), "")
	require.ErrorIs(t, err, domain.ErrInvalidInstruction)
}
