package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
)

// Resolver turns source records into normalized ledger instructions. It
// validates amounts, party existence and party role before any write
// begins; it has no side effects. The sign policy is fixed:
//
//	Sale                     -> CREDIT client   (client owes more)
//	Payment from client      -> DEBIT  client
//	Purchase                 -> CREDIT provider (we owe more)
//	Payment to provider      -> DEBIT  provider
//	Check issued to provider -> DEBIT  provider
type Resolver struct {
	partyRepo PartyRepository
}

// NewResolver creates a new Resolver.
func NewResolver(partyRepo PartyRepository) *Resolver {
	return &Resolver{partyRepo: partyRepo}
}

// ResolveSale maps a sale to a client credit.
func (r *Resolver) ResolveSale(ctx context.Context, sale *domain.Sale) (domain.LedgerInstruction, error) {
	reference := sale.Reference
	if reference == "" {
		reference = fmt.Sprintf("Sale #%s", sale.ID)
	}

	return r.resolve(ctx, resolveParams{
		partyID:    sale.ClientID,
		role:       domain.PartyRoleClient,
		kind:       domain.EntryKindCredit,
		amount:     sale.Total,
		reference:  reference,
		sourceType: domain.SourceTypeSale,
		sourceID:   sale.ID,
	})
}

// ResolvePurchase maps a purchase to a provider credit.
func (r *Resolver) ResolvePurchase(ctx context.Context, purchase *domain.Purchase) (domain.LedgerInstruction, error) {
	return r.resolve(ctx, resolveParams{
		partyID:    purchase.ProviderID,
		role:       domain.PartyRoleProvider,
		kind:       domain.EntryKindCredit,
		amount:     purchase.Total,
		reference:  fmt.Sprintf("Purchase #%s", purchase.ID),
		sourceType: domain.SourceTypePurchase,
		sourceID:   purchase.ID,
	})
}

// ResolvePayment maps a payment to a debit against the single party it
// references. A payment must reference exactly one of client or provider.
func (r *Resolver) ResolvePayment(ctx context.Context, payment *domain.Payment) (domain.LedgerInstruction, error) {
	var partyID string
	var role domain.PartyRole

	switch {
	case payment.ClientID != "" && payment.ProviderID != "":
		return domain.LedgerInstruction{}, fmt.Errorf("%w: payment references both client and provider", domain.ErrRoleMismatch)
	case payment.ClientID != "":
		partyID, role = payment.ClientID, domain.PartyRoleClient
	case payment.ProviderID != "":
		partyID, role = payment.ProviderID, domain.PartyRoleProvider
	default:
		return domain.LedgerInstruction{}, fmt.Errorf("%w: payment references no party", domain.ErrPartyNotFound)
	}

	return r.resolve(ctx, resolveParams{
		partyID:    partyID,
		role:       role,
		kind:       domain.EntryKindDebit,
		amount:     payment.Amount,
		reference:  fmt.Sprintf("Payment #%s", payment.ID),
		sourceType: domain.SourceTypePayment,
		sourceID:   payment.ID,
	})
}

// ResolveCheck maps an issued check to a provider debit.
func (r *Resolver) ResolveCheck(ctx context.Context, check *domain.Check) (domain.LedgerInstruction, error) {
	return r.resolve(ctx, resolveParams{
		partyID:    check.ProviderID,
		role:       domain.PartyRoleProvider,
		kind:       domain.EntryKindDebit,
		amount:     check.Amount,
		reference:  fmt.Sprintf("Check #%s %s", check.Number, check.Bank),
		sourceType: domain.SourceTypeCheck,
		sourceID:   check.ID,
	})
}

// ResolveAdjustment maps a manual correction to an entry against the
// party's actual role. Adjustments are how committed entries are corrected,
// since entries themselves are immutable.
func (r *Resolver) ResolveAdjustment(ctx context.Context, partyID string, kind domain.EntryKind, amount decimal.Decimal, reference string) (domain.LedgerInstruction, error) {
	if !kind.Valid() {
		return domain.LedgerInstruction{}, domain.ErrInvalidInstruction
	}

	if err := domain.ValidateAmount(amount); err != nil {
		return domain.LedgerInstruction{}, err
	}

	if err := domain.ValidateReference(reference); err != nil {
		return domain.LedgerInstruction{}, err
	}

	party, err := r.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		return domain.LedgerInstruction{}, err
	}

	return domain.LedgerInstruction{
		PartyID:    party.ID,
		PartyRole:  party.Role,
		Kind:       kind,
		Amount:     amount,
		Reference:  reference,
		SourceType: domain.SourceTypeAdjustment,
	}, nil
}

type resolveParams struct {
	partyID    string
	role       domain.PartyRole
	kind       domain.EntryKind
	amount     decimal.Decimal
	reference  string
	sourceType domain.SourceType
	sourceID   string
}

func (r *Resolver) resolve(ctx context.Context, p resolveParams) (domain.LedgerInstruction, error) {
	if err := domain.ValidateAmount(p.amount); err != nil {
		return domain.LedgerInstruction{}, err
	}

	if err := domain.ValidateReference(p.reference); err != nil {
		return domain.LedgerInstruction{}, err
	}

	if p.partyID == "" {
		return domain.LedgerInstruction{}, domain.ErrPartyNotFound
	}

	party, err := r.partyRepo.GetByID(ctx, p.partyID)
	if err != nil {
		return domain.LedgerInstruction{}, err
	}

	if party.Role != p.role {
		return domain.LedgerInstruction{}, fmt.Errorf("%w: expected %s, party %s is %s", domain.ErrRoleMismatch, p.role, party.ID, party.Role)
	}

	return domain.LedgerInstruction{
		PartyID:    party.ID,
		PartyRole:  p.role,
		Kind:       p.kind,
		Amount:     p.amount,
		Reference:  p.reference,
		SourceType: p.sourceType,
		SourceID:   p.sourceID,
	}, nil
}
