package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloz/fondos/internal/domain"
)

// SummaryUseCase serves the aggregate views over the movement log and the
// ledger consistency check.
type SummaryUseCase struct {
	summaryRepo SummaryRepository
}

// NewSummaryUseCase creates a new SummaryUseCase.
func NewSummaryUseCase(summaryRepo SummaryRepository) *SummaryUseCase {
	return &SummaryUseCase{summaryRepo: summaryRepo}
}

// MonthlyTotals are the grand totals across a monthly summary.
type MonthlyTotals struct {
	TotalIngresos decimal.Decimal
	TotalEgresos  decimal.Decimal
	BalanceTotal  decimal.Decimal
}

// MonthlyBalance returns per-month ingresos/egresos/balance, optionally
// restricted to one year (year <= 0 means all years), plus grand totals.
func (uc *SummaryUseCase) MonthlyBalance(ctx context.Context, year int) ([]*domain.MonthlySummary, MonthlyTotals, error) {
	rows, err := uc.summaryRepo.MonthlyBalance(ctx, year)
	if err != nil {
		return nil, MonthlyTotals{}, err
	}

	totals := MonthlyTotals{
		TotalIngresos: decimal.Zero,
		TotalEgresos:  decimal.Zero,
		BalanceTotal:  decimal.Zero,
	}
	for _, row := range rows {
		totals.TotalIngresos = totals.TotalIngresos.Add(row.Ingresos)
		totals.TotalEgresos = totals.TotalEgresos.Add(row.Egresos)
		totals.BalanceTotal = totals.BalanceTotal.Add(row.Balance)
	}

	return rows, totals, nil
}

// BalanceByAccount returns per-account ingresos/egresos/balance over an
// optional date range, ordered by balance descending.
func (uc *SummaryUseCase) BalanceByAccount(ctx context.Context, from, to *time.Time) ([]*domain.AccountSummary, error) {
	return uc.summaryRepo.BalanceByAccount(ctx, from, to)
}

// CheckConsistency verifies that every account balance equals the signed sum
// of its movements. It returns the drifted accounts, if any.
func (uc *SummaryUseCase) CheckConsistency(ctx context.Context) (bool, []*domain.AccountDrift, error) {
	drifts, err := uc.summaryRepo.DriftedAccounts(ctx)
	if err != nil {
		return false, nil, err
	}

	return len(drifts) == 0, drifts, nil
}
