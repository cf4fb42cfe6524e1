package domain

import "github.com/shopspring/decimal"

// MonthlySummary aggregates one calendar month of movements.
type MonthlySummary struct {
	Month    string // YYYY-MM
	Ingresos decimal.Decimal
	Egresos  decimal.Decimal
	Balance  decimal.Decimal
}

// AccountSummary aggregates the movements of one account over a date range.
type AccountSummary struct {
	AccountID int64
	Account   string
	Ingresos  decimal.Decimal
	Egresos   decimal.Decimal
	Balance   decimal.Decimal
}

// AccountDrift reports an account whose stored balance has diverged from
// the signed sum of its movements. A healthy ledger never produces one.
type AccountDrift struct {
	AccountID   int64
	Account     string
	Balance     decimal.Decimal
	MovementSum decimal.Decimal
}

// Difference returns stored balance minus movement sum.
func (d *AccountDrift) Difference() decimal.Decimal {
	return d.Balance.Sub(d.MovementSum)
}
