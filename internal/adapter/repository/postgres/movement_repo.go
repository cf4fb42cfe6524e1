package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veloz/fondos/internal/domain"
	"github.com/veloz/fondos/internal/usecase"
)

// MovementRepository implements usecase.MovementRepository over the
// movimiento_fondos table. The table is append-only: this repository exposes
// no update or delete.
type MovementRepository struct {
	pool *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

// Create inserts a movement inside tx and returns its assigned id.
func (r *MovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()

	var id int64

	err := pgxTx.QueryRow(ctx,
		`INSERT INTO movimiento_fondos (cuenta_id, tipo, origen, monto, referencia_id, fecha)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		movement.AccountID,
		string(movement.Type),
		movement.Origin,
		decimalToNumeric(movement.Amount),
		movement.ReferenceID,
		timeToPgTimestamptz(movement.RecordedAt),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert movement: %w", err)
	}

	return id, nil
}

// List returns movements matching all supplied filters, newest first,
// capped at filter.Limit.
func (r *MovementRepository) List(ctx context.Context, filter domain.MovementFilter) ([]*domain.Movement, error) {
	var sb strings.Builder

	sb.WriteString(
		`SELECT id, cuenta_id, tipo, origen, monto, referencia_id, fecha
		 FROM movimiento_fondos
		 WHERE 1=1`)

	var args []any

	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		fmt.Fprintf(&sb, " AND cuenta_id = $%d", len(args))
	}

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		fmt.Fprintf(&sb, " AND tipo = $%d", len(args))
	}

	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		fmt.Fprintf(&sb, " AND fecha::date >= $%d::date", len(args))
	}

	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		fmt.Fprintf(&sb, " AND fecha::date <= $%d::date", len(args))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		fmt.Fprintf(&sb, " AND (origen ILIKE $%d OR referencia_id::text LIKE $%d)", len(args), len(args))
	}

	args = append(args, filter.Limit)
	fmt.Fprintf(&sb, " ORDER BY fecha DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var movements []*domain.Movement
	for rows.Next() {
		var (
			movement   domain.Movement
			tipo       string
			monto      pgtype.Numeric
			recordedAt pgtype.Timestamptz
		)

		err := rows.Scan(&movement.ID, &movement.AccountID, &tipo, &movement.Origin, &monto, &movement.ReferenceID, &recordedAt)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}

		movement.Type = domain.MovementType(tipo)
		movement.Amount = numericToDecimal(monto)
		movement.RecordedAt = recordedAt.Time

		movements = append(movements, &movement)
	}

	return movements, rows.Err()
}
