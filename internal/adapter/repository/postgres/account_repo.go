package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/veloz/fondos/internal/domain"
	"github.com/veloz/fondos/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository over the
// cuenta_fondos table.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create inserts a new account and returns its assigned id.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (int64, error) {
	var id int64

	err := r.pool.QueryRow(ctx,
		`INSERT INTO cuenta_fondos (nombre, saldo, creado_en, actualizado_en)
		 VALUES ($1, $2, $3, $3)
		 RETURNING id`,
		account.Name,
		decimalToNumeric(account.Balance),
		timeToPgTimestamptz(account.CreatedAt),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert account: %w", err)
	}

	return id, nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, nombre, saldo, creado_en, actualizado_en
		 FROM cuenta_fondos
		 WHERE id = $1`,
		id,
	)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, fmt.Errorf("select account: %w", err)
	}

	return account, nil
}

// List returns all accounts ordered by id ascending.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, nombre, saldo, creado_en, actualizado_en
		 FROM cuenta_fondos
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// GetByIDsForUpdate retrieves and row-locks accounts. Rows are locked in the
// order given by ids, which callers keep ascending to avoid deadlocks.
func (r *AccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []int64) ([]*domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()

	rows, err := pgxTx.Query(ctx,
		`SELECT id, nombre, saldo, creado_en, actualizado_en
		 FROM cuenta_fondos
		 WHERE id = ANY($1)
		 ORDER BY id ASC
		 FOR UPDATE`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("lock accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// AdjustBalance applies saldo = saldo + delta in a single statement. The
// increment happens in SQL so concurrent movements on the same account can
// never lose an update.
func (r *AccountRepository) AdjustBalance(ctx context.Context, tx usecase.Transaction, id int64, delta decimal.Decimal) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE cuenta_fondos
		 SET saldo = saldo + $2, actualizado_en = $3
		 WHERE id = $1`,
		id,
		decimalToNumeric(delta),
		timeToPgTimestamptz(time.Now().UTC()),
	)
	if err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var (
		account   domain.Account
		saldo     pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&account.ID, &account.Name, &saldo, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	account.Balance = numericToDecimal(saldo)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	// NaN values carry a nil Int.
	if !n.Valid || n.NaN {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
