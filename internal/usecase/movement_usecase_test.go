package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/veloz/fondos/internal/domain"
	"github.com/veloz/fondos/internal/usecase"
	"github.com/veloz/fondos/internal/usecase/mocks"
)

func newMovementFixture() (*mocks.MockAccountRepository, *mocks.MockMovementRepository, *mocks.MockTransactionManager, *usecase.MovementUseCase) {
	accRepo := mocks.NewMockAccountRepository()
	movRepo := mocks.NewMockMovementRepository()
	txMgr := mocks.NewMockTransactionManager()
	uc := usecase.NewMovementUseCase(txMgr, accRepo, movRepo, mocks.NewMockRetrier())
	return accRepo, movRepo, txMgr, uc
}

func TestMovementUseCase_RegisterMovement(t *testing.T) {
	tests := []struct {
		name            string
		input           usecase.RegisterMovementInput
		expectError     error
		expectedBalance decimal.Decimal
	}{
		{
			name: "ingreso increases balance",
			input: usecase.RegisterMovementInput{
				AccountID: 1,
				Type:      domain.MovementIngreso,
				Origin:    "cobro",
				Amount:    decimal.NewFromInt(150),
			},
			expectedBalance: decimal.NewFromInt(1150),
		},
		{
			name: "egreso decreases balance",
			input: usecase.RegisterMovementInput{
				AccountID: 1,
				Type:      domain.MovementEgreso,
				Origin:    "gasto operativo",
				Amount:    decimal.NewFromInt(400),
			},
			expectedBalance: decimal.NewFromInt(600),
		},
		{
			name: "reject non-positive amount",
			input: usecase.RegisterMovementInput{
				AccountID: 1,
				Type:      domain.MovementIngreso,
				Origin:    "cobro",
				Amount:    decimal.Zero,
			},
			expectError: domain.ErrInvalidAmount,
		},
		{
			name: "reject unknown type",
			input: usecase.RegisterMovementInput{
				AccountID: 1,
				Type:      domain.MovementType("AJUSTE"),
				Origin:    "cobro",
				Amount:    decimal.NewFromInt(10),
			},
			expectError: domain.ErrInvalidMovementType,
		},
		{
			name: "reject missing account",
			input: usecase.RegisterMovementInput{
				AccountID: 99,
				Type:      domain.MovementIngreso,
				Origin:    "cobro",
				Amount:    decimal.NewFromInt(10),
			},
			expectError: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accRepo, movRepo, _, uc := newMovementFixture()
			accRepo.Seed(&domain.Account{ID: 1, Name: "Caja", Balance: decimal.NewFromInt(1000)})

			id, err := uc.RegisterMovement(context.Background(), tt.input)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected %v, got %v", tt.expectError, err)
				}
				if len(movRepo.All()) != 0 {
					t.Error("rejected movement must not be recorded")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id == 0 {
				t.Error("expected a movement id")
			}

			acc, _ := accRepo.GetByID(context.Background(), 1)
			if !acc.Balance.Equal(tt.expectedBalance) {
				t.Errorf("expected balance %s, got %s", tt.expectedBalance, acc.Balance)
			}
		})
	}
}

func TestMovementUseCase_RegisterMovement_RollsBackOnAdjustFailure(t *testing.T) {
	accRepo, _, txMgr, uc := newMovementFixture()
	accRepo.Seed(&domain.Account{ID: 1, Name: "Caja", Balance: decimal.NewFromInt(1000)})

	storeErr := errors.New("statement timeout")
	accRepo.AdjustBalanceFunc = func(ctx context.Context, tx usecase.Transaction, id int64, delta decimal.Decimal) error {
		return storeErr
	}

	_, err := uc.RegisterMovement(context.Background(), usecase.RegisterMovementInput{
		AccountID: 1,
		Type:      domain.MovementIngreso,
		Origin:    "cobro",
		Amount:    decimal.NewFromInt(100),
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}

	tx := txMgr.Transactions[len(txMgr.Transactions)-1]
	if tx.Committed {
		t.Error("transaction must not commit when the balance adjustment fails")
	}
	if !tx.RolledBack {
		t.Error("transaction must roll back when the balance adjustment fails")
	}
}

func TestMovementUseCase_ListMovements_LimitDefaults(t *testing.T) {
	_, movRepo, _, uc := newMovementFixture()

	var gotLimit int
	movRepo.ListFunc = func(ctx context.Context, filter domain.MovementFilter) ([]*domain.Movement, error) {
		gotLimit = filter.Limit
		return nil, nil
	}

	if _, err := uc.ListMovements(context.Background(), domain.MovementFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 100 {
		t.Errorf("expected default limit 100, got %d", gotLimit)
	}

	if _, err := uc.ListMovements(context.Background(), domain.MovementFilter{Limit: 100000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 1000 {
		t.Errorf("expected limit capped at 1000, got %d", gotLimit)
	}
}

// Random valid sequences of movements and transfers must keep every balance
// equal to the signed sum of the account's movements.
func TestLedgerInvariant_RandomSequence(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	movRepo := mocks.NewMockMovementRepository()
	txMgr := mocks.NewMockTransactionManager()
	retrier := mocks.NewMockRetrier()

	movUC := usecase.NewMovementUseCase(txMgr, accRepo, movRepo, retrier)
	transferUC := usecase.NewTransferUseCase(txMgr, accRepo, movRepo, retrier)

	accRepo.Seed(&domain.Account{ID: 1, Name: "Caja", Balance: decimal.Zero})
	accRepo.Seed(&domain.Account{ID: 2, Name: "Banco", Balance: decimal.Zero})
	accRepo.Seed(&domain.Account{ID: 3, Name: "Reserva", Balance: decimal.Zero})

	ctx := context.Background()

	checkInvariant := func(step int) {
		t.Helper()
		sums := map[int64]decimal.Decimal{1: decimal.Zero, 2: decimal.Zero, 3: decimal.Zero}
		for _, mv := range movRepo.All() {
			sums[mv.AccountID] = sums[mv.AccountID].Add(mv.BalanceDelta())
		}
		for id, want := range sums {
			acc, err := accRepo.GetByID(ctx, id)
			if err != nil {
				t.Fatalf("step %d: %v", step, err)
			}
			if !acc.Balance.Equal(want) {
				t.Fatalf("step %d: account %d balance %s != movement sum %s", step, id, acc.Balance, want)
			}
		}
	}

	for step := 0; step < 200; step++ {
		accountID := int64(step%3 + 1)
		amount := decimal.NewFromInt(int64(step%50 + 1))

		switch step % 4 {
		case 0, 1:
			_, err := movUC.RegisterMovement(ctx, usecase.RegisterMovementInput{
				AccountID: accountID,
				Type:      domain.MovementIngreso,
				Origin:    "ingreso manual",
				Amount:    amount,
			})
			if err != nil {
				t.Fatalf("step %d: %v", step, err)
			}
		case 2:
			acc, _ := accRepo.GetByID(ctx, accountID)
			if acc.Balance.GreaterThanOrEqual(amount) {
				_, err := movUC.RegisterMovement(ctx, usecase.RegisterMovementInput{
					AccountID: accountID,
					Type:      domain.MovementEgreso,
					Origin:    "gasto",
					Amount:    amount,
				})
				if err != nil {
					t.Fatalf("step %d: %v", step, err)
				}
			}
		case 3:
			dest := accountID%3 + 1
			acc, _ := accRepo.GetByID(ctx, accountID)
			_, err := transferUC.Transfer(ctx, usecase.TransferInput{
				SourceAccountID: accountID,
				DestAccountID:   dest,
				Amount:          amount,
			})
			if acc.Balance.LessThan(amount) {
				if !errors.Is(err, domain.ErrInsufficientFunds) {
					t.Fatalf("step %d: expected insufficient funds, got %v", step, err)
				}
			} else if err != nil {
				t.Fatalf("step %d: %v", step, err)
			}
		}

		checkInvariant(step)
	}
}
