package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veloz/fondos/internal/domain"
)

// SummaryRepository implements usecase.SummaryRepository. All aggregation is
// pushed into SQL.
type SummaryRepository struct {
	pool *pgxpool.Pool
}

// NewSummaryRepository creates a new SummaryRepository.
func NewSummaryRepository(pool *pgxpool.Pool) *SummaryRepository {
	return &SummaryRepository{pool: pool}
}

// MonthlyBalance aggregates movements per calendar month. year <= 0 means
// all years.
func (r *SummaryRepository) MonthlyBalance(ctx context.Context, year int) ([]*domain.MonthlySummary, error) {
	query := `
		SELECT
			to_char(fecha, 'YYYY-MM') AS mes,
			COALESCE(SUM(monto) FILTER (WHERE tipo = 'INGRESO'), 0) AS ingresos,
			COALESCE(SUM(monto) FILTER (WHERE tipo = 'EGRESO'), 0) AS egresos
		FROM movimiento_fondos`

	var args []any
	if year > 0 {
		query += ` WHERE date_part('year', fecha) = $1`
		args = append(args, year)
	}

	query += `
		GROUP BY mes
		ORDER BY mes`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("monthly balance: %w", err)
	}
	defer rows.Close()

	var summaries []*domain.MonthlySummary
	for rows.Next() {
		var (
			s        domain.MonthlySummary
			ingresos pgtype.Numeric
			egresos  pgtype.Numeric
		)

		if err := rows.Scan(&s.Month, &ingresos, &egresos); err != nil {
			return nil, fmt.Errorf("scan monthly summary: %w", err)
		}

		s.Ingresos = numericToDecimal(ingresos)
		s.Egresos = numericToDecimal(egresos)
		s.Balance = s.Ingresos.Sub(s.Egresos)

		summaries = append(summaries, &s)
	}

	return summaries, rows.Err()
}

// BalanceByAccount aggregates movements per account over an optional date
// range, ordered by balance descending.
func (r *SummaryRepository) BalanceByAccount(ctx context.Context, from, to *time.Time) ([]*domain.AccountSummary, error) {
	var sb strings.Builder

	sb.WriteString(`
		SELECT
			cf.id,
			cf.nombre,
			COALESCE(SUM(mf.monto) FILTER (WHERE mf.tipo = 'INGRESO'), 0) AS ingresos,
			COALESCE(SUM(mf.monto) FILTER (WHERE mf.tipo = 'EGRESO'), 0) AS egresos
		FROM cuenta_fondos cf
		LEFT JOIN movimiento_fondos mf ON mf.cuenta_id = cf.id`)

	var args []any
	var conds []string

	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("mf.fecha::date >= $%d::date", len(args)))
	}

	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("mf.fecha::date <= $%d::date", len(args)))
	}

	if len(conds) > 0 {
		sb.WriteString(" AND " + strings.Join(conds, " AND "))
	}

	// ORDER BY cannot reference output aliases inside an expression,
	// so the aggregates are repeated here.
	sb.WriteString(`
		GROUP BY cf.id, cf.nombre
		ORDER BY COALESCE(SUM(mf.monto) FILTER (WHERE mf.tipo = 'INGRESO'), 0)
			- COALESCE(SUM(mf.monto) FILTER (WHERE mf.tipo = 'EGRESO'), 0) DESC`)

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("balance by account: %w", err)
	}
	defer rows.Close()

	var summaries []*domain.AccountSummary
	for rows.Next() {
		var (
			s        domain.AccountSummary
			ingresos pgtype.Numeric
			egresos  pgtype.Numeric
		)

		if err := rows.Scan(&s.AccountID, &s.Account, &ingresos, &egresos); err != nil {
			return nil, fmt.Errorf("scan account summary: %w", err)
		}

		s.Ingresos = numericToDecimal(ingresos)
		s.Egresos = numericToDecimal(egresos)
		s.Balance = s.Ingresos.Sub(s.Egresos)

		summaries = append(summaries, &s)
	}

	return summaries, rows.Err()
}

// DriftedAccounts returns every account whose stored saldo differs from the
// signed sum of its movements.
func (r *SummaryRepository) DriftedAccounts(ctx context.Context) ([]*domain.AccountDrift, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			cf.id,
			cf.nombre,
			cf.saldo,
			COALESCE(SUM(CASE WHEN mf.tipo = 'INGRESO' THEN mf.monto ELSE -mf.monto END), 0) AS suma
		FROM cuenta_fondos cf
		LEFT JOIN movimiento_fondos mf ON mf.cuenta_id = cf.id
		GROUP BY cf.id, cf.nombre, cf.saldo
		HAVING cf.saldo <> COALESCE(SUM(CASE WHEN mf.tipo = 'INGRESO' THEN mf.monto ELSE -mf.monto END), 0)
		ORDER BY cf.id`)
	if err != nil {
		return nil, fmt.Errorf("drifted accounts: %w", err)
	}
	defer rows.Close()

	var drifts []*domain.AccountDrift
	for rows.Next() {
		var (
			d     domain.AccountDrift
			saldo pgtype.Numeric
			suma  pgtype.Numeric
		)

		if err := rows.Scan(&d.AccountID, &d.Account, &saldo, &suma); err != nil {
			return nil, fmt.Errorf("scan drift: %w", err)
		}

		d.Balance = numericToDecimal(saldo)
		d.MovementSum = numericToDecimal(suma)

		drifts = append(drifts, &d)
	}

	return drifts, rows.Err()
}
