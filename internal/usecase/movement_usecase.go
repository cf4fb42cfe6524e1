package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloz/fondos/internal/domain"
)

// MovementUseCase maintains the append-only movement log and keeps account
// balances consistent with it.
type MovementUseCase struct {
	txManager    TransactionManager
	accountRepo  AccountRepository
	movementRepo MovementRepository
	retrier      Retrier
}

// NewMovementUseCase creates a new MovementUseCase.
func NewMovementUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	movementRepo MovementRepository,
	retrier Retrier,
) *MovementUseCase {
	return &MovementUseCase{
		txManager:    txManager,
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		retrier:      retrier,
	}
}

// RegisterMovementInput represents input for registering a movement.
type RegisterMovementInput struct {
	AccountID   int64
	Type        domain.MovementType
	Origin      string
	Amount      decimal.Decimal
	ReferenceID *int64
}

// RegisterMovement inserts one movement and applies its signed amount to the
// account balance. Both effects happen in a single transaction: a failure of
// either leaves neither.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, input RegisterMovementInput) (int64, error) {
	movement := &domain.Movement{
		AccountID:   input.AccountID,
		Type:        input.Type,
		Origin:      input.Origin,
		Amount:      input.Amount,
		ReferenceID: input.ReferenceID,
	}

	if err := movement.Validate(); err != nil {
		return 0, err
	}

	var id int64

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

		// Lock the account row: confirms existence and serializes movements
		// against concurrent transfers touching the same account.
		accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, []int64{movement.AccountID})
		if err != nil {
			return err
		}
		if len(accounts) != 1 {
			return domain.ErrAccountNotFound
		}

		movement.RecordedAt = time.Now().UTC()

		movementID, err := uc.movementRepo.Create(ctx, tx, movement)
		if err != nil {
			return err
		}

		if err := uc.accountRepo.AdjustBalance(ctx, tx, movement.AccountID, movement.BalanceDelta()); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		id = movementID

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

const (
	defaultMovementLimit = 100
	maxMovementLimit     = 1000
)

// ListMovements returns movements matching all supplied filters, newest
// first. An empty result is not an error.
func (uc *MovementUseCase) ListMovements(ctx context.Context, filter domain.MovementFilter) ([]*domain.Movement, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultMovementLimit
	}
	if filter.Limit > maxMovementLimit {
		filter.Limit = maxMovementLimit
	}

	return uc.movementRepo.List(ctx, filter)
}
