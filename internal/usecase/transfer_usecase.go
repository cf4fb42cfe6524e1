package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloz/fondos/internal/domain"
)

// TransferUseCase moves funds between two accounts as a single atomic
// operation: one EGRESO movement on the source, one INGRESO movement on the
// destination referencing the EGRESO, and both balance adjustments. Either
// all four effects commit or none do.
type TransferUseCase struct {
	txManager    TransactionManager
	accountRepo  AccountRepository
	movementRepo MovementRepository
	retrier      Retrier
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	movementRepo MovementRepository,
	retrier Retrier,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:    txManager,
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		retrier:      retrier,
	}
}

// TransferInput represents input for a transfer.
type TransferInput struct {
	SourceAccountID int64
	DestAccountID   int64
	Amount          decimal.Decimal
}

// Transfer executes the transfer. The funds-sufficiency check runs against
// the row-locked source balance inside the same transaction as the debit, so
// two concurrent transfers can never jointly overdraw an account.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.TransferResult, error) {
	transfer := &domain.Transfer{
		SourceAccountID: input.SourceAccountID,
		DestAccountID:   input.DestAccountID,
		Amount:          input.Amount,
	}

	if err := transfer.Validate(); err != nil {
		return nil, err
	}

	var result *domain.TransferResult

	err := uc.retrier.Retry(ctx, func() error {
		res, err := uc.executeTransfer(ctx, transfer)
		if err != nil {
			return err
		}

		result = res

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (uc *TransferUseCase) executeTransfer(ctx context.Context, transfer *domain.Transfer) (*domain.TransferResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	// Lock both rows in ascending id order (deadlock prevention).
	ids := []int64{transfer.SourceAccountID, transfer.DestAccountID}
	if ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, err
	}
	if len(accounts) != 2 {
		return nil, domain.ErrAccountNotFound
	}

	var source *domain.Account
	for _, a := range accounts {
		if a.ID == transfer.SourceAccountID {
			source = a
		}
	}
	if source == nil {
		return nil, domain.ErrAccountNotFound
	}

	if err := source.ValidateDebit(transfer.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	egresoID, err := uc.movementRepo.Create(ctx, tx, &domain.Movement{
		AccountID:  transfer.SourceAccountID,
		Type:       domain.MovementEgreso,
		Origin:     domain.TransferOrigin,
		Amount:     transfer.Amount,
		RecordedAt: now,
	})
	if err != nil {
		return nil, err
	}

	ingresoID, err := uc.movementRepo.Create(ctx, tx, &domain.Movement{
		AccountID:   transfer.DestAccountID,
		Type:        domain.MovementIngreso,
		Origin:      domain.TransferOrigin,
		Amount:      transfer.Amount,
		ReferenceID: &egresoID,
		RecordedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.AdjustBalance(ctx, tx, transfer.SourceAccountID, transfer.Amount.Neg()); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.AdjustBalance(ctx, tx, transfer.DestAccountID, transfer.Amount); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &domain.TransferResult{EgresoID: egresoID, IngresoID: ingresoID}, nil
}
