package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatement is a read-only snapshot of an account's history
type AccountStatement struct {
	AccountNumber  string                 `json:"account_number"`
	HolderName     string                 `json:"holder_name"`
	AccountType    AccountType            `json:"account_type"`
	Currency       string                 `json:"currency"`
	OpeningBalance decimal.Decimal        `json:"opening_balance"`
	ClosingBalance decimal.Decimal        `json:"closing_balance"`
	Transactions   []StatementTransaction `json:"transactions"`
	Summary        StatementSummary       `json:"summary"`
	GeneratedAt    time.Time              `json:"generated_at"`
}

// StatementTransaction is a history record with its running balance
type StatementTransaction struct {
	Sequence        int             `json:"sequence"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	TransactionType TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	RunningBalance  decimal.Decimal `json:"running_balance"`
	Reference       string          `json:"reference"`
}

// StatementSummary aggregates the records of a statement
type StatementSummary struct {
	TotalDeposits     decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals  decimal.Decimal `json:"total_withdrawals"`
	TotalTransfersIn  decimal.Decimal `json:"total_transfers_in"`
	TotalTransfersOut decimal.Decimal `json:"total_transfers_out"`
	NetChange         decimal.Decimal `json:"net_change"`
	TransactionCount  int             `json:"transaction_count"`
	DepositCount      int             `json:"deposit_count"`
	WithdrawalCount   int             `json:"withdrawal_count"`
	TransferCount     int             `json:"transfer_count"`
}
