package models

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(t *testing.T, balance string) *Account {
	t.Helper()
	account, err := NewAccount(AccountParams{
		AccountNumber:  "1234567890",
		HolderName:     "Rajesh Kumar",
		InitialBalance: decimal.RequireFromString(balance),
		Pin:            "1234",
		Type:           AccountTypeSavings,
	})
	require.NoError(t, err)
	return account
}

func TestNewAccount_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  AccountParams
		wantErr error
	}{
		{
			name: "valid savings account",
			params: AccountParams{
				AccountNumber:  "1234567890",
				HolderName:     "Rajesh Kumar",
				InitialBalance: decimal.NewFromInt(50000),
				Pin:            "1234",
				Type:           AccountTypeSavings,
			},
		},
		{
			name: "valid current account with zero balance",
			params: AccountParams{
				AccountNumber:  "9876543210",
				HolderName:     "Priya Sharma",
				InitialBalance: decimal.Zero,
				Pin:            "0000",
				Type:           AccountTypeCurrent,
			},
		},
		{
			name: "type defaults to savings",
			params: AccountParams{
				AccountNumber:  "1111222233",
				HolderName:     "Amit Patel",
				InitialBalance: decimal.NewFromInt(10),
				Pin:            "4321",
			},
		},
		{
			name: "empty account number",
			params: AccountParams{
				HolderName:     "Rajesh Kumar",
				InitialBalance: decimal.NewFromInt(100),
				Pin:            "1234",
			},
			wantErr: ErrInvalidAccountNumber,
		},
		{
			name: "account number with spaces",
			params: AccountParams{
				AccountNumber:  "1234 5678",
				HolderName:     "Rajesh Kumar",
				InitialBalance: decimal.NewFromInt(100),
				Pin:            "1234",
			},
			wantErr: ErrInvalidAccountNumber,
		},
		{
			name: "empty holder name",
			params: AccountParams{
				AccountNumber:  "1234567890",
				InitialBalance: decimal.NewFromInt(100),
				Pin:            "1234",
			},
			wantErr: ErrInvalidHolderName,
		},
		{
			name: "negative balance",
			params: AccountParams{
				AccountNumber:  "1234567890",
				HolderName:     "Rajesh Kumar",
				InitialBalance: decimal.NewFromInt(-1),
				Pin:            "1234",
			},
			wantErr: ErrInvalidBalance,
		},
		{
			name: "balance with three decimal places",
			params: AccountParams{
				AccountNumber:  "1234567890",
				HolderName:     "Rajesh Kumar",
				InitialBalance: decimal.RequireFromString("10.005"),
				Pin:            "1234",
			},
			wantErr: ErrInvalidBalance,
		},
		{
			name: "short pin",
			params: AccountParams{
				AccountNumber:  "1234567890",
				HolderName:     "Rajesh Kumar",
				InitialBalance: decimal.NewFromInt(100),
				Pin:            "123",
			},
			wantErr: ErrInvalidPin,
		},
		{
			name: "non numeric pin",
			params: AccountParams{
				AccountNumber:  "1234567890",
				HolderName:     "Rajesh Kumar",
				InitialBalance: decimal.NewFromInt(100),
				Pin:            "12a4",
			},
			wantErr: ErrInvalidPin,
		},
		{
			name: "unknown account type",
			params: AccountParams{
				AccountNumber:  "1234567890",
				HolderName:     "Rajesh Kumar",
				InitialBalance: decimal.NewFromInt(100),
				Pin:            "1234",
				Type:           AccountType("CHECKING"),
			},
			wantErr: ErrInvalidAccountType,
		},
		{
			name: "negative history limit",
			params: AccountParams{
				AccountNumber:  "1234567890",
				HolderName:     "Rajesh Kumar",
				InitialBalance: decimal.NewFromInt(100),
				Pin:            "1234",
				HistoryLimit:   -1,
			},
			wantErr: ErrInvalidHistoryLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := NewAccount(tt.params)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, account)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, account)
			assert.Equal(t, tt.params.AccountNumber, account.AccountNumber())
			assert.Equal(t, tt.params.HolderName, account.HolderName())
			assert.True(t, tt.params.InitialBalance.Equal(account.Balance()))
			assert.NotEmpty(t, account.Type())
			assert.Empty(t, account.TransactionHistory())
		})
	}
}

func TestMustNewAccount_PanicsOnInvalidParams(t *testing.T) {
	assert.Panics(t, func() {
		MustNewAccount(AccountParams{})
	})
}

func TestAccount_ValidatePin(t *testing.T) {
	account := newTestAccount(t, "100")

	assert.True(t, account.ValidatePin("1234"))
	assert.False(t, account.ValidatePin("4321"))
	assert.False(t, account.ValidatePin(""))
	assert.False(t, account.ValidatePin("12345"))
	assert.Empty(t, account.TransactionHistory())
}

func TestAccount_Deposit(t *testing.T) {
	account := newTestAccount(t, "100")

	assert.True(t, account.Deposit(decimal.RequireFromString("50.25")))
	assert.Equal(t, "150.25", account.Balance().StringFixed(2))

	history := account.TransactionHistory()
	require.Len(t, history, 1)
	assert.Equal(t, TransactionTypeDeposit, history[0].Type)
	assert.Equal(t, "50.25", history[0].Amount.StringFixed(2))
	assert.Equal(t, "150.25", history[0].BalanceAfter.StringFixed(2))
	assert.False(t, history[0].Timestamp.IsZero())

	t.Run("non positive amounts are ignored", func(t *testing.T) {
		assert.False(t, account.Deposit(decimal.Zero))
		assert.False(t, account.Deposit(decimal.NewFromInt(-10)))
		assert.Equal(t, "150.25", account.Balance().StringFixed(2))
		assert.Len(t, account.TransactionHistory(), 1)
	})

	t.Run("sub-cent amounts are ignored", func(t *testing.T) {
		assert.False(t, account.Deposit(decimal.RequireFromString("0.005")))
		assert.True(t, account.Balance().Equal(decimal.RequireFromString("150.25")))
		assert.Len(t, account.TransactionHistory(), 1)
	})
}

func TestAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name        string
		amount      decimal.Decimal
		wantOK      bool
		wantBalance string
	}{
		{name: "partial withdrawal", amount: decimal.NewFromInt(40), wantOK: true, wantBalance: "60.00"},
		{name: "entire balance", amount: decimal.NewFromInt(100), wantOK: true, wantBalance: "0.00"},
		{name: "more than balance", amount: decimal.RequireFromString("100.01"), wantOK: false, wantBalance: "100.00"},
		{name: "zero", amount: decimal.Zero, wantOK: false, wantBalance: "100.00"},
		{name: "negative", amount: decimal.NewFromInt(-5), wantOK: false, wantBalance: "100.00"},
		{name: "sub-cent", amount: decimal.RequireFromString("0.005"), wantOK: false, wantBalance: "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := newTestAccount(t, "100")

			assert.Equal(t, tt.wantOK, account.Withdraw(tt.amount))
			assert.Equal(t, tt.wantBalance, account.Balance().StringFixed(2))

			if tt.wantOK {
				history := account.TransactionHistory()
				require.Len(t, history, 1)
				assert.Equal(t, TransactionTypeWithdrawal, history[0].Type)
			} else {
				assert.Empty(t, account.TransactionHistory())
			}
		})
	}
}

func TestAccount_Transfer(t *testing.T) {
	account := newTestAccount(t, "1000")

	assert.True(t, account.Transfer(decimal.NewFromInt(250), "9876543210"))
	assert.Equal(t, "750.00", account.Balance().StringFixed(2))

	history := account.TransactionHistory()
	require.Len(t, history, 1)
	assert.Equal(t, TransactionTypeTransferOut, history[0].Type)
	assert.Equal(t, "XXXXX3210", history[0].Counterparty)
	assert.Equal(t, "TRANSFER OUT to XXXXX3210", history[0].Description())

	t.Run("insufficient funds leaves state untouched", func(t *testing.T) {
		assert.False(t, account.Transfer(decimal.NewFromInt(751), "9876543210"))
		assert.Equal(t, "750.00", account.Balance().StringFixed(2))
		assert.Len(t, account.TransactionHistory(), 1)
	})

	t.Run("sub-cent amounts are refused", func(t *testing.T) {
		assert.False(t, account.Transfer(decimal.RequireFromString("0.005"), "9876543210"))
		assert.True(t, account.Balance().Equal(decimal.NewFromInt(750)))
		assert.Len(t, account.TransactionHistory(), 1)
	})
}

func TestAccount_ReceiveTransfer(t *testing.T) {
	account := newTestAccount(t, "10")

	assert.True(t, account.ReceiveTransfer(decimal.NewFromInt(90), "5555666677"))
	assert.Equal(t, "100.00", account.Balance().StringFixed(2))

	history := account.TransactionHistory()
	require.Len(t, history, 1)
	assert.Equal(t, TransactionTypeTransferIn, history[0].Type)
	assert.Equal(t, "TRANSFER IN from XXXXX6677", history[0].Description())

	assert.False(t, account.ReceiveTransfer(decimal.Zero, "5555666677"))
	assert.False(t, account.ReceiveTransfer(decimal.RequireFromString("12.345"), "5555666677"))
	assert.Len(t, account.TransactionHistory(), 1)
}

func TestAccount_ChangePin(t *testing.T) {
	tests := []struct {
		name    string
		oldPin  string
		newPin  string
		wantOK  bool
		wantPin string
	}{
		{name: "valid change", oldPin: "1234", newPin: "5678", wantOK: true, wantPin: "5678"},
		{name: "same pin", oldPin: "1234", newPin: "1234", wantOK: false, wantPin: "1234"},
		{name: "wrong old pin", oldPin: "0000", newPin: "5678", wantOK: false, wantPin: "1234"},
		{name: "new pin too short", oldPin: "1234", newPin: "567", wantOK: false, wantPin: "1234"},
		{name: "new pin too long", oldPin: "1234", newPin: "56789", wantOK: false, wantPin: "1234"},
		{name: "new pin not numeric", oldPin: "1234", newPin: "56a8", wantOK: false, wantPin: "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := newTestAccount(t, "100")

			assert.Equal(t, tt.wantOK, account.ChangePin(tt.oldPin, tt.newPin))
			assert.True(t, account.ValidatePin(tt.wantPin))
			if tt.wantOK {
				assert.False(t, account.ValidatePin(tt.oldPin))
			}
		})
	}
}

func TestAccount_LastTransactions(t *testing.T) {
	account := newTestAccount(t, "0")
	for i := 1; i <= 5; i++ {
		require.True(t, account.Deposit(decimal.NewFromInt(int64(i))))
	}

	t.Run("n larger than history returns everything in order", func(t *testing.T) {
		records := account.LastTransactions(10)
		require.Len(t, records, 5)
		for i, record := range records {
			assert.True(t, decimal.NewFromInt(int64(i+1)).Equal(record.Amount))
		}
	})

	t.Run("n smaller than history returns the most recent", func(t *testing.T) {
		records := account.LastTransactions(2)
		require.Len(t, records, 2)
		assert.Equal(t, "4", records[0].Amount.String())
		assert.Equal(t, "5", records[1].Amount.String())
	})

	t.Run("zero and negative return empty", func(t *testing.T) {
		assert.Empty(t, account.LastTransactions(0))
		assert.Empty(t, account.LastTransactions(-3))
	})

	t.Run("result is a copy", func(t *testing.T) {
		records := account.LastTransactions(5)
		records[0].Amount = decimal.NewFromInt(999)
		assert.Equal(t, "1", account.TransactionHistory()[0].Amount.String())
		assert.Equal(t, 5, account.TransactionCount())
	})
}

func TestAccount_HistoryLimit(t *testing.T) {
	account, err := NewAccount(AccountParams{
		AccountNumber:  "1234567890",
		HolderName:     "Rajesh Kumar",
		InitialBalance: decimal.Zero,
		Pin:            "1234",
		HistoryLimit:   3,
	})
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		require.True(t, account.Deposit(decimal.NewFromInt(int64(i))))
	}

	history := account.TransactionHistory()
	require.Len(t, history, 3)
	assert.Equal(t, "3", history[0].Amount.String())
	assert.Equal(t, "5", history[2].Amount.String())
	assert.Equal(t, "15", account.Balance().String())
}

func TestAccount_UsesInjectedClock(t *testing.T) {
	fixed := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	account, err := NewAccount(AccountParams{
		AccountNumber:  "1234567890",
		HolderName:     "Rajesh Kumar",
		InitialBalance: decimal.Zero,
		Pin:            "1234",
		Now:            func() time.Time { return fixed },
	})
	require.NoError(t, err)

	require.True(t, account.Deposit(decimal.NewFromInt(1)))
	assert.Equal(t, fixed, account.TransactionHistory()[0].Timestamp)
}

func TestMaskAccountNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "1234567890", expected: "XXXXX7890"},
		{input: "1234", expected: "XXXXX1234"},
		{input: "123", expected: MaskedSentinel},
		{input: "", expected: MaskedSentinel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskAccountNumber(tt.input))
		})
	}

	account := newTestAccount(t, "0")
	assert.Equal(t, "XXXXX7890", account.MaskedAccountNumber())
	assert.NotContains(t, account.String(), "1234567890")
}

func TestAccount_CentPrecisionHasNoDrift(t *testing.T) {
	faker := gofakeit.New(42)
	account := newTestAccount(t, "0")
	expected := decimal.Zero

	for i := 0; i < 1000; i++ {
		amount := decimal.NewFromInt(int64(faker.Number(1, 100000))).Shift(-2)
		before := account.Balance()

		if i%3 == 2 && amount.LessThanOrEqual(before) {
			require.True(t, account.Withdraw(amount))
			require.True(t, before.Sub(amount).Equal(account.Balance()))
			expected = expected.Sub(amount)
			continue
		}

		require.True(t, account.Deposit(amount))
		require.True(t, before.Add(amount).Equal(account.Balance()))
		expected = expected.Add(amount)
	}

	assert.True(t, expected.Equal(account.Balance()))
	assert.True(t, account.Balance().Equal(account.Balance().Truncate(2)))
}
