package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMovement_Validate(t *testing.T) {
	tests := []struct {
		name        string
		accountID   int64
		movType     MovementType
		amount      decimal.Decimal
		expectError error
	}{
		{
			name:        "valid ingreso",
			accountID:   1,
			movType:     MovementIngreso,
			amount:      decimal.NewFromInt(100),
			expectError: nil,
		},
		{
			name:        "valid egreso",
			accountID:   1,
			movType:     MovementEgreso,
			amount:      decimal.NewFromFloat(0.01),
			expectError: nil,
		},
		{
			name:        "missing account",
			accountID:   0,
			movType:     MovementIngreso,
			amount:      decimal.NewFromInt(100),
			expectError: ErrAccountRequired,
		},
		{
			name:        "unknown type",
			accountID:   1,
			movType:     MovementType("AJUSTE"),
			amount:      decimal.NewFromInt(100),
			expectError: ErrInvalidMovementType,
		},
		{
			name:        "zero amount",
			accountID:   1,
			movType:     MovementIngreso,
			amount:      decimal.Zero,
			expectError: ErrInvalidAmount,
		},
		{
			name:        "negative amount",
			accountID:   1,
			movType:     MovementEgreso,
			amount:      decimal.NewFromInt(-5),
			expectError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Movement{
				AccountID: tt.accountID,
				Type:      tt.movType,
				Amount:    tt.amount,
			}

			err := m.Validate()

			if tt.expectError == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.expectError != nil && err != tt.expectError {
				t.Errorf("expected %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestMovement_BalanceDelta(t *testing.T) {
	ingreso := &Movement{Type: MovementIngreso, Amount: decimal.NewFromInt(150)}
	if !ingreso.BalanceDelta().Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected +150, got %s", ingreso.BalanceDelta())
	}

	egreso := &Movement{Type: MovementEgreso, Amount: decimal.NewFromInt(150)}
	if !egreso.BalanceDelta().Equal(decimal.NewFromInt(-150)) {
		t.Errorf("expected -150, got %s", egreso.BalanceDelta())
	}
}
