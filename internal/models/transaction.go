package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType identifies the kind of balance movement a record describes.
type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal  TransactionType = "WITHDRAWAL"
	TransactionTypeTransferOut TransactionType = "TRANSFER_OUT"
	TransactionTypeTransferIn  TransactionType = "TRANSFER_IN"

	// TransactionTypeTransfer is the fee category for outgoing transfers.
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// DisplayName returns the human readable name used on receipts and statements
func (t TransactionType) DisplayName() string {
	switch t {
	case TransactionTypeDeposit:
		return "Deposit"
	case TransactionTypeWithdrawal:
		return "Withdrawal"
	case TransactionTypeTransferOut:
		return "Transfer Out"
	case TransactionTypeTransferIn:
		return "Transfer In"
	case TransactionTypeTransfer:
		return "Transfer"
	default:
		return string(t)
	}
}

// IsCredit reports whether the type increases the balance
func (t TransactionType) IsCredit() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeTransferIn
}

// IsValidTransactionType checks if the transaction type is known
func IsValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal,
		TransactionTypeTransferOut, TransactionTypeTransferIn, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}

// Transaction is one entry of an account's append-only history.
// Counterparty holds the masked identifier of the other side of a transfer.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	Type         TransactionType `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Counterparty string          `json:"counterparty,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Description renders the record the way statements label it
func (t Transaction) Description() string {
	switch t.Type {
	case TransactionTypeTransferOut:
		return "TRANSFER OUT to " + t.Counterparty
	case TransactionTypeTransferIn:
		return "TRANSFER IN from " + t.Counterparty
	default:
		return string(t.Type)
	}
}

// BalanceBefore derives the balance prior to this record
func (t Transaction) BalanceBefore() decimal.Decimal {
	if t.Type.IsCredit() {
		return t.BalanceAfter.Sub(t.Amount)
	}
	return t.BalanceAfter.Add(t.Amount)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%-28s | %12s | Balance: %12s | %s",
		t.Description(), t.Amount.StringFixed(2), t.BalanceAfter.StringFixed(2),
		t.Timestamp.Format("2006-01-02 15:04:05"))
}
