package services

import (
	"strings"
	"testing"
	"time"

	"atm-simulator/internal/config"
	"atm-simulator/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	at := time.Date(2024, 3, 15, 10, 30, 5, 0, time.UTC)
	return func() time.Time { return at }
}

func TestReceiptGenerator_Generate(t *testing.T) {
	g := NewReceiptGenerator(config.DefaultPolicy(), fixedClock())

	receipt := g.Generate(ReceiptData{
		AccountNumber:   "XXXXX7890",
		HolderName:      "Rajesh Kumar",
		TransactionType: models.TransactionTypeWithdrawal,
		Amount:          decimal.NewFromInt(3000),
		Balance:         decimal.NewFromInt(52000),
	})

	assert.Contains(t, receipt, "STATE BANK ATM SYSTEM")
	assert.Contains(t, receipt, "Serving India Since 1806")
	assert.Contains(t, receipt, "Receipt #: RCP-1000\n")
	assert.Contains(t, receipt, "Date/Time: 15-03-2024 10:30:05\n")
	assert.Contains(t, receipt, "Account: XXXXX7890\n")
	assert.Contains(t, receipt, "Name: Rajesh Kumar\n")
	assert.Contains(t, receipt, "Transaction: Withdrawal\n")
	assert.Contains(t, receipt, "Amount: ₹3,000.00\n")
	assert.Contains(t, receipt, "Balance: ₹52,000.00\n")
	assert.Contains(t, receipt, "Please keep this receipt")
}

func TestReceiptGenerator_NumbersAreSequential(t *testing.T) {
	g := NewReceiptGenerator(config.DefaultPolicy(), fixedClock())
	data := ReceiptData{TransactionType: models.TransactionTypeDeposit}

	assert.Contains(t, g.Generate(data), "RCP-1000")
	assert.Contains(t, g.Generate(data), "RCP-1001")
	assert.Equal(t, "RCP-1002", g.NextReceiptNumber())

	other := NewReceiptGenerator(config.DefaultPolicy(), fixedClock())
	assert.Equal(t, "RCP-1000", other.NextReceiptNumber())
}

func TestReceiptGenerator_LinesFitWidth(t *testing.T) {
	g := NewReceiptGenerator(config.DefaultPolicy(), fixedClock())

	receipt := g.Generate(ReceiptData{
		AccountNumber:   "XXXXX7890",
		HolderName:      "Rajesh Kumar",
		TransactionType: models.TransactionTypeDeposit,
		Amount:          decimal.NewFromInt(5000),
		Balance:         decimal.NewFromInt(55000),
	})

	lines := strings.Split(strings.Trim(receipt, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, strings.Repeat("=", ReceiptWidth), lines[0])
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), ReceiptWidth, line)
	}
}

func TestReceiptGenerator_CentersHeader(t *testing.T) {
	g := NewReceiptGenerator(config.DefaultPolicy(), fixedClock())

	receipt := g.Generate(ReceiptData{TransactionType: models.TransactionTypeDeposit})

	// (40 - 21) / 2
	assert.Contains(t, receipt, "\n         STATE BANK ATM SYSTEM\n")
}

func TestReceiptGenerator_GenerateBalance(t *testing.T) {
	g := NewReceiptGenerator(config.DefaultPolicy(), fixedClock())

	receipt := g.GenerateBalance("XXXXX7890", "Rajesh Kumar", decimal.NewFromInt(52000))

	assert.Contains(t, receipt, "BALANCE INQUIRY")
	assert.Contains(t, receipt, "Available Balance:\n  ₹52,000.00\n")
	assert.NotContains(t, receipt, "Receipt #")
	assert.Equal(t, "RCP-1000", g.NextReceiptNumber())
}
