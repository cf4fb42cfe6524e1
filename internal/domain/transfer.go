package domain

import (
	"github.com/shopspring/decimal"
)

// Transfer is the compound operation moving funds between two accounts.
// It is not stored as its own entity: a completed transfer is an EGRESO
// movement on the source and an INGRESO movement on the destination whose
// reference points at the EGRESO.
type Transfer struct {
	SourceAccountID int64
	DestAccountID   int64
	Amount          decimal.Decimal
}

// Validate validates the transfer request.
func (t *Transfer) Validate() error {
	if t.SourceAccountID == t.DestAccountID {
		return ErrSameAccount
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// TransferResult identifies the movement pair a transfer produced.
type TransferResult struct {
	EgresoID  int64
	IngresoID int64
}
