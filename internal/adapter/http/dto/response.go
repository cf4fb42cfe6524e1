package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloz/fondos/internal/domain"
	"github.com/veloz/fondos/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID            int64           `json:"id"`
	Nombre        string          `json:"nombre"`
	Saldo         decimal.Decimal `json:"saldo"`
	CreadoEn      time.Time       `json:"creado_en"`
	ActualizadoEn time.Time       `json:"actualizado_en"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:            a.ID,
		Nombre:        a.Name,
		Saldo:         a.Balance,
		CreadoEn:      a.CreatedAt,
		ActualizadoEn: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// MovementResponse represents a movement in API responses.
type MovementResponse struct {
	ID           int64           `json:"id"`
	CuentaID     int64           `json:"cuenta_id"`
	Tipo         string          `json:"tipo"`
	Origen       string          `json:"origen"`
	Monto        decimal.Decimal `json:"monto"`
	ReferenciaID *int64          `json:"referencia_id,omitempty"`
	Fecha        time.Time       `json:"fecha"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.Movement) *MovementResponse {
	return &MovementResponse{
		ID:           m.ID,
		CuentaID:     m.AccountID,
		Tipo:         string(m.Type),
		Origen:       m.Origin,
		Monto:        m.Amount,
		ReferenciaID: m.ReferenceID,
		Fecha:        m.RecordedAt,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.Movement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// CreatedResponse carries the id of a newly created record.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// TransferResponse identifies the movement pair a transfer produced.
type TransferResponse struct {
	EgresoID  int64 `json:"egreso_id"`
	IngresoID int64 `json:"ingreso_id"`
}

// MonthlySummaryResponse is one month of aggregated movements.
type MonthlySummaryResponse struct {
	Mes      string          `json:"mes"`
	Ingresos decimal.Decimal `json:"ingresos"`
	Egresos  decimal.Decimal `json:"egresos"`
	Balance  decimal.Decimal `json:"balance"`
}

// MonthlyTotalsResponse carries the grand totals of a monthly summary.
type MonthlyTotalsResponse struct {
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
	TotalEgresos  decimal.Decimal `json:"total_egresos"`
	BalanceTotal  decimal.Decimal `json:"balance_total"`
}

// MonthlyBalanceResponse is the full monthly summary payload.
type MonthlyBalanceResponse struct {
	Meses   []*MonthlySummaryResponse `json:"meses"`
	Totales MonthlyTotalsResponse     `json:"totales"`
}

// MonthlyBalanceFromDomain converts the summary rows and totals.
func MonthlyBalanceFromDomain(rows []*domain.MonthlySummary, totals usecase.MonthlyTotals) *MonthlyBalanceResponse {
	meses := make([]*MonthlySummaryResponse, len(rows))
	for i, row := range rows {
		meses[i] = &MonthlySummaryResponse{
			Mes:      row.Month,
			Ingresos: row.Ingresos,
			Egresos:  row.Egresos,
			Balance:  row.Balance,
		}
	}

	return &MonthlyBalanceResponse{
		Meses: meses,
		Totales: MonthlyTotalsResponse{
			TotalIngresos: totals.TotalIngresos,
			TotalEgresos:  totals.TotalEgresos,
			BalanceTotal:  totals.BalanceTotal,
		},
	}
}

// AccountSummaryResponse is one account's aggregated movements.
type AccountSummaryResponse struct {
	CuentaID int64           `json:"cuenta_id"`
	Cuenta   string          `json:"cuenta"`
	Ingresos decimal.Decimal `json:"ingresos"`
	Egresos  decimal.Decimal `json:"egresos"`
	Balance  decimal.Decimal `json:"balance"`
}

// AccountSummariesFromDomain converts per-account summaries.
func AccountSummariesFromDomain(rows []*domain.AccountSummary) []*AccountSummaryResponse {
	result := make([]*AccountSummaryResponse, len(rows))
	for i, row := range rows {
		result[i] = &AccountSummaryResponse{
			CuentaID: row.AccountID,
			Cuenta:   row.Account,
			Ingresos: row.Ingresos,
			Egresos:  row.Egresos,
			Balance:  row.Balance,
		}
	}
	return result
}

// DriftResponse reports an account whose balance diverged from its movements.
type DriftResponse struct {
	CuentaID   int64           `json:"cuenta_id"`
	Cuenta     string          `json:"cuenta"`
	Saldo      decimal.Decimal `json:"saldo"`
	SumaMov    decimal.Decimal `json:"suma_movimientos"`
	Diferencia decimal.Decimal `json:"diferencia"`
}

// ConsistencyResponse is the ledger consistency report.
type ConsistencyResponse struct {
	Consistente bool             `json:"consistente"`
	Cuentas     []*DriftResponse `json:"cuentas,omitempty"`
}

// ConsistencyFromDomain converts a drift report.
func ConsistencyFromDomain(consistent bool, drifts []*domain.AccountDrift) *ConsistencyResponse {
	resp := &ConsistencyResponse{Consistente: consistent}
	for _, d := range drifts {
		resp.Cuentas = append(resp.Cuentas, &DriftResponse{
			CuentaID:   d.AccountID,
			Cuenta:     d.Account,
			Saldo:      d.Balance,
			SumaMov:    d.MovementSum,
			Diferencia: d.Difference(),
		})
	}
	return resp
}

// ErrorResponse is the error payload shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
