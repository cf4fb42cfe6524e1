package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloz/fondos/internal/domain"
)

// AccountRepository defines data access for fund accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	// GetByIDsForUpdate locks the account rows with FOR UPDATE. Callers must
	// pass ids in ascending order so concurrent transfers acquire locks in
	// the same order.
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []int64) ([]*domain.Account, error)
	// AdjustBalance applies balance = balance + delta as a single atomic
	// statement. It is the only write path to an account's balance and must
	// only run inside a movement-creating transaction.
	AdjustBalance(ctx context.Context, tx Transaction, id int64, delta decimal.Decimal) error
}

// MovementRepository defines data access for the append-only movement log.
type MovementRepository interface {
	Create(ctx context.Context, tx Transaction, movement *domain.Movement) (int64, error)
	List(ctx context.Context, filter domain.MovementFilter) ([]*domain.Movement, error)
}

// SummaryRepository defines the aggregate queries pushed into SQL.
type SummaryRepository interface {
	MonthlyBalance(ctx context.Context, year int) ([]*domain.MonthlySummary, error)
	BalanceByAccount(ctx context.Context, from, to *time.Time) ([]*domain.AccountSummary, error)
	// DriftedAccounts returns every account whose stored balance differs
	// from the signed sum of its movements.
	DriftedAccounts(ctx context.Context) ([]*domain.AccountDrift, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation when it fails with a transient store error
// (deadlock, serialization failure). Domain errors are never retried.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
