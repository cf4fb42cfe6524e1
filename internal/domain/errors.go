package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrNameRequired    = errors.New("account name is required")
	ErrAccountRequired = errors.New("account id is required")

	// Movement errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidMovementType = errors.New("movement type must be INGRESO or EGRESO")

	// Transfer errors
	ErrSameAccount       = errors.New("source and destination accounts must differ")
	ErrInsufficientFunds = errors.New("insufficient funds in source account")
)
