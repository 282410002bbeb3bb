package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/gestion/ledger/internal/domain"
	"github.com/gestion/ledger/internal/usecase"
	"github.com/gestion/ledger/internal/usecase/mocks"
)

func TestReconcilePartyBalanced(t *testing.T) {
	ctrl := gomock.NewController(t)
	partyRepo := mocks.NewGomockPartyRepository(ctrl)
	entryRepo := mocks.NewGomockEntryRepository(ctrl)
	uc := usecase.NewReconciliationUseCase(partyRepo, entryRepo, nil)

	partyRepo.EXPECT().
		GetByID(gomock.Any(), "client-1").
		Return(&domain.Party{ID: "client-1", Role: domain.PartyRoleClient, Balance: decimal.NewFromInt(300)}, nil)
	entryRepo.EXPECT().
		SumByParty(gomock.Any(), "client-1").
		Return(decimal.NewFromInt(300), nil)

	result, err := uc.ReconcileParty(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if !result.IsReconciled {
		t.Error("balanced party must reconcile")
	}
	if !result.Difference.IsZero() {
		t.Errorf("difference = %s, want 0", result.Difference)
	}
}

func TestReconcilePartyDrifted(t *testing.T) {
	ctrl := gomock.NewController(t)
	partyRepo := mocks.NewGomockPartyRepository(ctrl)
	entryRepo := mocks.NewGomockEntryRepository(ctrl)
	uc := usecase.NewReconciliationUseCase(partyRepo, entryRepo, nil)

	partyRepo.EXPECT().
		GetByID(gomock.Any(), "client-1").
		Return(&domain.Party{ID: "client-1", Role: domain.PartyRoleClient, Balance: decimal.NewFromInt(300)}, nil)
	entryRepo.EXPECT().
		SumByParty(gomock.Any(), "client-1").
		Return(decimal.NewFromInt(250), nil)

	result, err := uc.ReconcileParty(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if result.IsReconciled {
		t.Error("drifted party must not reconcile")
	}
	if !result.Difference.Equal(decimal.NewFromInt(50)) {
		t.Errorf("difference = %s, want 50", result.Difference)
	}
}

func TestReconcilePartyNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	partyRepo := mocks.NewGomockPartyRepository(ctrl)
	entryRepo := mocks.NewGomockEntryRepository(ctrl)
	uc := usecase.NewReconciliationUseCase(partyRepo, entryRepo, nil)

	partyRepo.EXPECT().
		GetByID(gomock.Any(), "ghost").
		Return(nil, domain.ErrPartyNotFound)

	_, err := uc.ReconcileParty(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrPartyNotFound) {
		t.Fatalf("err = %v, want ErrPartyNotFound", err)
	}
}

func TestReconcileAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	partyRepo := mocks.NewGomockPartyRepository(ctrl)
	entryRepo := mocks.NewGomockEntryRepository(ctrl)
	uc := usecase.NewReconciliationUseCase(partyRepo, entryRepo, nil)

	parties := []*domain.Party{
		{ID: "c1", Role: domain.PartyRoleClient, Balance: decimal.NewFromInt(100)},
		{ID: "p1", Role: domain.PartyRoleProvider, Balance: decimal.NewFromInt(-40)},
	}

	partyRepo.EXPECT().
		List(gomock.Any(), domain.PartyRole(""), gomock.Any(), 0).
		Return(parties, nil)
	partyRepo.EXPECT().
		GetByID(gomock.Any(), "c1").
		Return(parties[0], nil)
	partyRepo.EXPECT().
		GetByID(gomock.Any(), "p1").
		Return(parties[1], nil)
	entryRepo.EXPECT().
		SumByParty(gomock.Any(), "c1").
		Return(decimal.NewFromInt(100), nil)
	entryRepo.EXPECT().
		SumByParty(gomock.Any(), "p1").
		Return(decimal.NewFromInt(-40), nil)

	results, err := uc.ReconcileAll(context.Background())
	if err != nil {
		t.Fatalf("reconcile all: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for _, r := range results {
		if !r.IsReconciled {
			t.Errorf("party %s must reconcile", r.PartyID)
		}
	}
}

func TestCheckLedgerConsistency(t *testing.T) {
	tests := []struct {
		name     string
		balances decimal.Decimal
		entries  decimal.Decimal
		wantErr  bool
	}{
		{
			name:     "consistent",
			balances: decimal.NewFromInt(1200),
			entries:  decimal.NewFromInt(1200),
		},
		{
			name:     "inconsistent",
			balances: decimal.NewFromInt(1200),
			entries:  decimal.NewFromInt(1150),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ledgerRepo := mocks.NewGomockLedgerRepository(ctrl)
			uc := usecase.NewReconciliationUseCase(nil, nil, ledgerRepo)

			ledgerRepo.EXPECT().
				CheckConsistency(gomock.Any()).
				Return(tt.balances, tt.entries, nil)

			err := uc.CheckLedgerConsistency(context.Background())
			if tt.wantErr && err == nil {
				t.Fatal("expected inconsistency error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
