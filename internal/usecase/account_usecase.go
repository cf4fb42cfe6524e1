package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veloz/fondos/internal/domain"
)

// AccountUseCase handles fund-account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name           string
	InitialBalance decimal.Decimal
}

// CreateAccount creates a new account with an optional initial balance.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	now := time.Now().UTC()

	account := &domain.Account{
		Name:      input.Name,
		Balance:   input.InitialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	id, err := uc.accountRepo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	account.ID = id

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccounts lists all accounts ordered by ID ascending.
func (uc *AccountUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx)
}
