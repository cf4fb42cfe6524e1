package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType is the direction of a movement. The wire values are the
// Spanish enum of the back-office schema.
type MovementType string

const (
	// MovementIngreso is an inflow.
	MovementIngreso MovementType = "INGRESO"
	// MovementEgreso is an outflow.
	MovementEgreso MovementType = "EGRESO"
)

// TransferOrigin is the origin tag stamped on both movements of a transfer.
const TransferOrigin = "transferencia"

// Valid reports whether t is one of the two known directions.
func (t MovementType) Valid() bool {
	return t == MovementIngreso || t == MovementEgreso
}

// Movement is one recorded inflow or outflow against an account.
// Movements are append-only: never updated, never deleted.
type Movement struct {
	ID          int64
	AccountID   int64
	Type        MovementType
	Origin      string
	Amount      decimal.Decimal
	ReferenceID *int64
	RecordedAt  time.Time
}

// Validate checks the movement registration preconditions. Amount is always
// positive; direction is carried by Type, not by sign.
func (m *Movement) Validate() error {
	if m.AccountID <= 0 {
		return ErrAccountRequired
	}
	if !m.Type.Valid() {
		return ErrInvalidMovementType
	}
	if m.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// BalanceDelta returns the signed effect of the movement on its account's
// balance: +Amount for INGRESO, -Amount for EGRESO.
func (m *Movement) BalanceDelta() decimal.Decimal {
	if m.Type == MovementEgreso {
		return m.Amount.Neg()
	}
	return m.Amount
}

// MovementFilter narrows a movement listing. All supplied filters are
// combined with AND. Date bounds are calendar dates (day granularity).
type MovementFilter struct {
	AccountID *int64
	Type      *MovementType
	DateFrom  *time.Time
	DateTo    *time.Time
	Search    string
	Limit     int
}
