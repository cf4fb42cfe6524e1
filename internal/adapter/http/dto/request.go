package dto

import (
	"github.com/shopspring/decimal"

	"github.com/veloz/fondos/internal/domain"
	"github.com/veloz/fondos/internal/usecase"
)

// Wire field names follow the back-office vocabulary the frontend already
// speaks (cuenta_id, monto, saldo, ...).

// CreateAccountRequest represents a request to create a fund account.
type CreateAccountRequest struct {
	Nombre string          `json:"nombre"`
	Saldo  decimal.Decimal `json:"saldo"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:           r.Nombre,
		InitialBalance: r.Saldo,
	}
}

// RegisterMovementRequest represents a request to register a movement.
type RegisterMovementRequest struct {
	CuentaID     int64           `json:"cuenta_id"`
	Tipo         string          `json:"tipo"`
	Origen       string          `json:"origen"`
	Monto        decimal.Decimal `json:"monto"`
	ReferenciaID *int64          `json:"referencia_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterMovementRequest) ToUseCaseInput() usecase.RegisterMovementInput {
	return usecase.RegisterMovementInput{
		AccountID:   r.CuentaID,
		Type:        domain.MovementType(r.Tipo),
		Origin:      r.Origen,
		Amount:      r.Monto,
		ReferenceID: r.ReferenciaID,
	}
}

// TransferRequest represents a request to transfer funds between accounts.
type TransferRequest struct {
	CuentaOrigen  int64           `json:"cuenta_origen"`
	CuentaDestino int64           `json:"cuenta_destino"`
	Monto         decimal.Decimal `json:"monto"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		SourceAccountID: r.CuentaOrigen,
		DestAccountID:   r.CuentaDestino,
		Amount:          r.Monto,
	}
}
