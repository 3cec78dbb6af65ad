package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPin(t *testing.T) {
	tests := []struct {
		pin  string
		want bool
	}{
		{"1234", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
		{"١٢٣٤", false},
		{" 1234", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPin(tt.pin), "pin %q", tt.pin)
	}
}

func TestIsStrongPin(t *testing.T) {
	assert.True(t, IsStrongPin("1357"))
	assert.True(t, IsStrongPin("2468"))
	assert.True(t, IsStrongPin("1123"))

	assert.False(t, IsStrongPin("1234"))
	assert.False(t, IsStrongPin("4321"))
	assert.False(t, IsStrongPin("7777"))
	assert.False(t, IsStrongPin("123"))
}

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"0.01", true},
		{"100", true},
		{"100.50", true},
		{"0", false},
		{"-1", false},
		{"0.001", false},
		{"10.005", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidAmount(decimal.RequireFromString(tt.amount)), "amount %s", tt.amount)
	}
}

func TestHasMoneyScale(t *testing.T) {
	assert.True(t, HasMoneyScale(decimal.RequireFromString("1.20")))
	assert.True(t, HasMoneyScale(decimal.RequireFromString("-3.5")))
	assert.False(t, HasMoneyScale(decimal.RequireFromString("1.234")))
}

type moneyRequest struct {
	Amount  decimal.Decimal `json:"amount" validate:"positive_money"`
	Balance decimal.Decimal `json:"balance" validate:"money"`
	Pin     string          `json:"pin" validate:"pin"`
	Target  string          `json:"target_account" validate:"omitempty,account_number"`
}

func TestValidator_Struct(t *testing.T) {
	v := NewValidator()

	valid := moneyRequest{
		Amount:  decimal.RequireFromString("10.50"),
		Balance: decimal.Zero,
		Pin:     "1234",
		Target:  "ACC-9876",
	}
	require.NoError(t, v.Struct(valid))

	tests := []struct {
		name   string
		mutate func(*moneyRequest)
	}{
		{"zero amount", func(r *moneyRequest) { r.Amount = decimal.Zero }},
		{"sub-paise amount", func(r *moneyRequest) { r.Amount = decimal.RequireFromString("0.001") }},
		{"negative balance", func(r *moneyRequest) { r.Balance = decimal.NewFromInt(-1) }},
		{"short pin", func(r *moneyRequest) { r.Pin = "12" }},
		{"bad target", func(r *moneyRequest) { r.Target = "98 76" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, v.Struct(req))
		})
	}
}

func TestGetValidator_Shared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
	assert.NotNil(t, GetValidator().GetValidate())
}
