package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a named fund pool with a running balance.
// The balance is kept equal to the signed sum of the account's movements;
// it is only ever mutated together with a movement insert, inside the same
// transaction.
type Account struct {
	ID        int64
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks account creation preconditions.
// Duplicate names are permitted; the original back office never enforced
// uniqueness and callers rely on that.
func (a *Account) Validate() error {
	if a.Name == "" {
		return ErrNameRequired
	}
	return nil
}

// ValidateDebit checks whether the account holds enough funds to be debited
// by amount. Must be called on a row-locked snapshot of the account, in the
// same transaction as the debit itself.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}
