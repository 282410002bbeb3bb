package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestion/ledger/internal/domain"
)

// PartyUseCase handles party registration and lookups.
type PartyUseCase struct {
	partyRepo PartyRepository
	idGen     IDGenerator
}

// NewPartyUseCase creates a new PartyUseCase.
func NewPartyUseCase(partyRepo PartyRepository, idGen IDGenerator) *PartyUseCase {
	return &PartyUseCase{
		partyRepo: partyRepo,
		idGen:     idGen,
	}
}

// CreatePartyInput represents input for registering a party.
type CreatePartyInput struct {
	Role    domain.PartyRole
	Name    string
	Address string
	TaxID   string
	Zone    string
}

// CreateParty registers a client or provider with a zero opening balance.
func (uc *PartyUseCase) CreateParty(ctx context.Context, input CreatePartyInput) (*domain.Party, error) {
	if !input.Role.Valid() {
		return nil, domain.ErrRoleMismatch
	}

	if err := domain.ValidatePartyName(input.Name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	party := &domain.Party{
		ID:        uc.idGen.Generate(),
		Role:      input.Role,
		Name:      input.Name,
		Address:   input.Address,
		TaxID:     input.TaxID,
		Zone:      input.Zone,
		Balance:   decimal.Zero,
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.partyRepo.Create(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// GetParty retrieves a party by ID.
func (uc *PartyUseCase) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	return uc.partyRepo.GetByID(ctx, id)
}

// ListPartiesInput represents input for listing parties. Role is optional.
type ListPartiesInput struct {
	Role   domain.PartyRole
	Limit  int
	Offset int
}

// ListParties lists parties with their current balances.
func (uc *PartyUseCase) ListParties(ctx context.Context, input ListPartiesInput) ([]*domain.Party, error) {
	if input.Role != "" && !input.Role.Valid() {
		return nil, domain.ErrRoleMismatch
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.partyRepo.List(ctx, input.Role, limit, offset)
}
