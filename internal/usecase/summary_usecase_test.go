package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/veloz/fondos/internal/domain"
	"github.com/veloz/fondos/internal/usecase"
	"github.com/veloz/fondos/internal/usecase/mocks"
)

func TestSummaryUseCase_MonthlyBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGenSummaryRepository(ctrl)
	uc := usecase.NewSummaryUseCase(repo)

	repo.EXPECT().MonthlyBalance(gomock.Any(), 2026).Return([]*domain.MonthlySummary{
		{Month: "2026-01", Ingresos: decimal.NewFromInt(500), Egresos: decimal.NewFromInt(200), Balance: decimal.NewFromInt(300)},
		{Month: "2026-02", Ingresos: decimal.NewFromInt(100), Egresos: decimal.NewFromInt(400), Balance: decimal.NewFromInt(-300)},
	}, nil)

	rows, totals, err := uc.MonthlyBalance(context.Background(), 2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !totals.TotalIngresos.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected total ingresos 600, got %s", totals.TotalIngresos)
	}
	if !totals.TotalEgresos.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected total egresos 600, got %s", totals.TotalEgresos)
	}
	if !totals.BalanceTotal.IsZero() {
		t.Errorf("expected zero total balance, got %s", totals.BalanceTotal)
	}
}

func TestSummaryUseCase_CheckConsistency(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGenSummaryRepository(ctrl)
	uc := usecase.NewSummaryUseCase(repo)

	t.Run("consistent ledger", func(t *testing.T) {
		repo.EXPECT().DriftedAccounts(gomock.Any()).Return(nil, nil)

		ok, drifts, err := uc.CheckConsistency(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || len(drifts) != 0 {
			t.Error("expected consistent ledger")
		}
	})

	t.Run("drifted account reported", func(t *testing.T) {
		repo.EXPECT().DriftedAccounts(gomock.Any()).Return([]*domain.AccountDrift{
			{AccountID: 1, Account: "Caja", Balance: decimal.NewFromInt(1000), MovementSum: decimal.NewFromInt(900)},
		}, nil)

		ok, drifts, err := uc.CheckConsistency(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected inconsistent ledger")
		}
		if len(drifts) != 1 || !drifts[0].Difference().Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected one drift of 100, got %v", drifts)
		}
	})
}
