package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/veloz/fondos/internal/domain"
	"github.com/veloz/fondos/internal/usecase"
	"github.com/veloz/fondos/internal/usecase/mocks"
)

func TestAccountUseCase_CreateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGenAccountRepository(ctrl)
	uc := usecase.NewAccountUseCase(repo)

	t.Run("creates account with initial balance", func(t *testing.T) {
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, account *domain.Account) (int64, error) {
				if account.Name != "Caja" {
					t.Errorf("expected name Caja, got %s", account.Name)
				}
				if !account.Balance.Equal(decimal.NewFromInt(1000)) {
					t.Errorf("expected initial balance 1000, got %s", account.Balance)
				}
				return 1, nil
			})

		account, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
			Name:           "Caja",
			InitialBalance: decimal.NewFromInt(1000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if account.ID != 1 {
			t.Errorf("expected id 1, got %d", account.ID)
		}
	})

	t.Run("rejects empty name without touching the store", func(t *testing.T) {
		_, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{Name: ""})
		if !errors.Is(err, domain.ErrNameRequired) {
			t.Fatalf("expected ErrNameRequired, got %v", err)
		}
	})

	t.Run("permits duplicate names", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(2), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(3), nil)

		first, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{Name: "Banco"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{Name: "Banco"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID == second.ID {
			t.Error("expected distinct ids for duplicate names")
		}
	})
}

func TestAccountUseCase_GetAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGenAccountRepository(ctrl)
	uc := usecase.NewAccountUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&domain.Account{ID: 42, Name: "Caja"}, nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, domain.ErrAccountNotFound)

	account, err := uc.GetAccount(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Name != "Caja" {
		t.Errorf("expected Caja, got %s", account.Name)
	}

	_, err = uc.GetAccount(context.Background(), 99)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountUseCase_ListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGenAccountRepository(ctrl)
	uc := usecase.NewAccountUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]*domain.Account{
		{ID: 1, Name: "Caja"},
		{ID: 2, Name: "Banco"},
	}, nil)

	accounts, err := uc.ListAccounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 || accounts[0].ID != 1 || accounts[1].ID != 2 {
		t.Errorf("expected accounts ordered by id, got %v", accounts)
	}
}
