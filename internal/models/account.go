package models

import (
	"errors"
	"fmt"
	"time"

	"atm-simulator/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType decides whether an account accrues interest.
type AccountType string

const (
	AccountTypeSavings AccountType = "SAVINGS"
	AccountTypeCurrent AccountType = "CURRENT"

	// MaskPrefix replaces every character but the last four of an account number
	MaskPrefix = "XXXXX"
	// MaskedSentinel is returned for account numbers too short to mask
	MaskedSentinel = MaskPrefix + "XXXX"

	visibleAccountDigits = 4
)

var (
	ErrInvalidAccountNumber = errors.New("account number is required")
	ErrInvalidHolderName    = errors.New("account holder name is required")
	ErrInvalidBalance       = errors.New("balance cannot be negative or carry more than two decimal places")
	ErrInvalidPin           = errors.New("pin must be exactly 4 digits")
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInvalidHistoryLimit  = errors.New("history limit cannot be negative")
)

// AccountParams carries the constructor arguments of an Account
type AccountParams struct {
	AccountNumber  string          `json:"account_number" validate:"required,account_number"`
	HolderName     string          `json:"holder_name" validate:"required"`
	InitialBalance decimal.Decimal `json:"initial_balance" validate:"money"`
	Pin            string          `json:"pin" validate:"pin"`
	Type           AccountType     `json:"type" validate:"omitempty,oneof=SAVINGS CURRENT"`

	// HistoryLimit caps the number of retained records; 0 keeps everything
	HistoryLimit int `json:"history_limit" validate:"gte=0"`

	// Now overrides the clock used to timestamp records
	Now func() time.Time `json:"-"`
}

// Account is a single in-memory bank account guarded by a PIN.
// The balance never goes below zero: every debit is checked before it is applied.
type Account struct {
	accountNumber string
	holderName    string
	accountType   AccountType
	balance       decimal.Decimal
	pin           string
	history       []Transaction
	historyLimit  int
	now           func() time.Time
}

// NewAccount validates params and creates the account.
// Invalid arguments are an integration error and are reported as such.
func NewAccount(params AccountParams) (*Account, error) {
	if err := validation.GetValidator().Struct(params); err != nil {
		return nil, translateValidationError(err)
	}

	accountType := params.Type
	if accountType == "" {
		accountType = AccountTypeSavings
	}

	now := params.Now
	if now == nil {
		now = time.Now
	}

	return &Account{
		accountNumber: params.AccountNumber,
		holderName:    params.HolderName,
		accountType:   accountType,
		balance:       params.InitialBalance,
		pin:           params.Pin,
		historyLimit:  params.HistoryLimit,
		now:           now,
	}, nil
}

// MustNewAccount is like NewAccount but panics on invalid arguments
func MustNewAccount(params AccountParams) *Account {
	account, err := NewAccount(params)
	if err != nil {
		panic(err)
	}
	return account
}

func translateValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("invalid account: %w", err)
	}

	switch validationErrs[0].StructField() {
	case "AccountNumber":
		return fmt.Errorf("invalid account: %w", ErrInvalidAccountNumber)
	case "HolderName":
		return fmt.Errorf("invalid account: %w", ErrInvalidHolderName)
	case "InitialBalance":
		return fmt.Errorf("invalid account: %w", ErrInvalidBalance)
	case "Pin":
		return fmt.Errorf("invalid account: %w", ErrInvalidPin)
	case "Type":
		return fmt.Errorf("invalid account: %w", ErrInvalidAccountType)
	case "HistoryLimit":
		return fmt.Errorf("invalid account: %w", ErrInvalidHistoryLimit)
	default:
		return fmt.Errorf("invalid account: %w", err)
	}
}

// AccountNumber returns the full account number. Never log it.
func (a *Account) AccountNumber() string {
	return a.accountNumber
}

// HolderName returns the account holder's display name
func (a *Account) HolderName() string {
	return a.holderName
}

// Type returns the account type
func (a *Account) Type() AccountType {
	return a.accountType
}

// Balance returns the current balance
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// ValidatePin compares input with the stored PIN. It has no side effects.
func (a *Account) ValidatePin(input string) bool {
	return a.pin == input
}

// Deposit credits a positive amount and records it. Non-positive amounts and
// amounts finer than a cent are ignored and reported as false.
func (a *Account) Deposit(amount decimal.Decimal) bool {
	if !validation.IsValidAmount(amount) {
		return false
	}

	a.balance = a.balance.Add(amount)
	a.record(TransactionTypeDeposit, amount, "")
	return true
}

// Withdraw debits amount if the balance covers it
func (a *Account) Withdraw(amount decimal.Decimal) bool {
	if !a.canDebit(amount) {
		return false
	}

	a.balance = a.balance.Sub(amount)
	a.record(TransactionTypeWithdrawal, amount, "")
	return true
}

// Transfer debits amount towards targetAccountID.
// The target is not looked up; only this account's side is simulated.
func (a *Account) Transfer(amount decimal.Decimal, targetAccountID string) bool {
	if !a.canDebit(amount) {
		return false
	}

	a.balance = a.balance.Sub(amount)
	a.record(TransactionTypeTransferOut, amount, MaskAccountNumber(targetAccountID))
	return true
}

// ReceiveTransfer credits an incoming transfer from sourceAccountID
func (a *Account) ReceiveTransfer(amount decimal.Decimal, sourceAccountID string) bool {
	if !validation.IsValidAmount(amount) {
		return false
	}

	a.balance = a.balance.Add(amount)
	a.record(TransactionTypeTransferIn, amount, MaskAccountNumber(sourceAccountID))
	return true
}

// ChangePin replaces the PIN when oldPin is correct and newPin is a
// different 4-digit PIN. On failure the stored PIN is untouched.
func (a *Account) ChangePin(oldPin, newPin string) bool {
	if !a.ValidatePin(oldPin) {
		return false
	}
	if !validation.IsValidPin(newPin) || newPin == oldPin {
		return false
	}

	a.pin = newPin
	return true
}

// LastTransactions returns up to n of the most recent records, oldest first
func (a *Account) LastTransactions(n int) []Transaction {
	if n <= 0 {
		return []Transaction{}
	}

	start := len(a.history) - n
	if start < 0 {
		start = 0
	}

	out := make([]Transaction, len(a.history)-start)
	copy(out, a.history[start:])
	return out
}

// TransactionHistory returns a copy of the full history in insertion order
func (a *Account) TransactionHistory() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// TransactionCount returns the number of retained records
func (a *Account) TransactionCount() int {
	return len(a.history)
}

// MaskedAccountNumber returns the display-safe form of the account number
func (a *Account) MaskedAccountNumber() string {
	return MaskAccountNumber(a.accountNumber)
}

// MaskAccountNumber keeps the last four characters of accountNumber behind
// a fixed mask; shorter inputs collapse to MaskedSentinel
func MaskAccountNumber(accountNumber string) string {
	if len(accountNumber) < visibleAccountDigits {
		return MaskedSentinel
	}
	return MaskPrefix + accountNumber[len(accountNumber)-visibleAccountDigits:]
}

func (a *Account) canDebit(amount decimal.Decimal) bool {
	return validation.IsValidAmount(amount) && amount.LessThanOrEqual(a.balance)
}

func (a *Account) record(txType TransactionType, amount decimal.Decimal, counterparty string) {
	a.history = append(a.history, Transaction{
		ID:           uuid.New(),
		Type:         txType,
		Amount:       amount,
		BalanceAfter: a.balance,
		Counterparty: counterparty,
		Timestamp:    a.now(),
	})

	if a.historyLimit > 0 && len(a.history) > a.historyLimit {
		trimmed := make([]Transaction, a.historyLimit)
		copy(trimmed, a.history[len(a.history)-a.historyLimit:])
		a.history = trimmed
	}
}

func (a *Account) String() string {
	return fmt.Sprintf("Account[Number=%s, Holder=%s, Type=%s, Balance=%s]",
		a.MaskedAccountNumber(), a.holderName, a.accountType, a.balance.StringFixed(2))
}
