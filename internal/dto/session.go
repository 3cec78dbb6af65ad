package dto

import (
	"time"

	"atm-simulator/internal/models"

	"github.com/shopspring/decimal"
)

// Session Request DTOs

// AuthenticateRequest carries the PIN entered at the kiosk. Its format is
// not checked here so a malformed PIN still counts as a failed attempt.
type AuthenticateRequest struct {
	Pin string `json:"pin" validate:"required"`
}

// AmountRequest is the body of deposit and withdrawal requests
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest moves money out of the session account
type TransferRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	TargetAccount string          `json:"targetAccount" validate:"required,max=34,account_number"`
}

// ChangePinRequest replaces the card PIN
type ChangePinRequest struct {
	OldPin string `json:"oldPin" validate:"required"`
	NewPin string `json:"newPin" validate:"required,pin"`
}

// CardStatusRequest is the admin request to block, expire or reactivate the card
type CardStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE BLOCKED EXPIRED"`
}

// FreezeRequest is the admin request to freeze or unfreeze the account
type FreezeRequest struct {
	Frozen bool `json:"frozen"`
}

// Session Response DTOs

// SessionResponse describes the kiosk session
type SessionResponse struct {
	SessionID      string    `json:"sessionId"`
	AccountNumber  string    `json:"accountNumber"`
	Authenticated  bool      `json:"authenticated"`
	StartedAt      time.Time `json:"startedAt"`
	ExpiresAt      time.Time `json:"expiresAt"`
	FailedAttempts int       `json:"failedAttempts"`
	AttemptsLeft   int       `json:"attemptsLeft"`
	CardStatus     string    `json:"cardStatus"`
	AccountFrozen  bool      `json:"accountFrozen"`
	SessionEnded   bool      `json:"sessionEnded"`
}

// PinChangeResponse flags easily guessed PINs; the change itself has
// already been applied
type PinChangeResponse struct {
	WeakPin bool `json:"weakPin"`
}

// BalanceResponse reports the account balance in raw and display form
type BalanceResponse struct {
	AccountNumber string `json:"accountNumber"`
	HolderName    string `json:"holderName"`
	AccountType   string `json:"accountType"`
	Balance       string `json:"balance"`
	Formatted     string `json:"formatted"`
	Currency      string `json:"currency"`
}

// TransactionResponse is returned by every successful money movement
type TransactionResponse struct {
	TransactionType             string `json:"transactionType"`
	Amount                      string `json:"amount"`
	Fee                         string `json:"fee,omitempty"`
	Balance                     string `json:"balance"`
	DailyTransactionCount       int    `json:"dailyTransactionCount"`
	RemainingDailyWithdrawLimit string `json:"remainingDailyWithdrawalLimit"`
	Receipt                     string `json:"receipt"`
}

// TransactionItem is one row of a mini statement
type TransactionItem struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Amount       string    `json:"amount"`
	BalanceAfter string    `json:"balanceAfter"`
	Counterparty string    `json:"counterparty,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// MiniStatementResponse lists the most recent transactions, oldest first
type MiniStatementResponse struct {
	AccountNumber string            `json:"accountNumber"`
	Balance       string            `json:"balance"`
	Transactions  []TransactionItem `json:"transactions"`
}

// AuditEntry is one audit event of the session
type AuditEntry struct {
	ID        string                 `json:"id"`
	Action    string                 `json:"action"`
	Status    string                 `json:"status"`
	Amount    string                 `json:"amount,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// AuditTrailResponse is the audit trail of one session
type AuditTrailResponse struct {
	SessionID string       `json:"sessionId"`
	Entries   []AuditEntry `json:"entries"`
}

// ToTransactionItems converts history records for the API
func ToTransactionItems(history []models.Transaction) []TransactionItem {
	items := make([]TransactionItem, len(history))
	for i, tx := range history {
		items[i] = TransactionItem{
			ID:           tx.ID.String(),
			Type:         string(tx.Type),
			Description:  tx.Description(),
			Amount:       tx.Amount.StringFixed(2),
			BalanceAfter: tx.BalanceAfter.StringFixed(2),
			Counterparty: tx.Counterparty,
			Timestamp:    tx.Timestamp,
		}
	}
	return items
}

// ToAuditEntries converts persisted audit logs for the API
func ToAuditEntries(logs []*models.AuditLog) []AuditEntry {
	entries := make([]AuditEntry, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, AuditEntry{
			ID:        log.ID.String(),
			Action:    log.Action,
			Status:    log.Status,
			Amount:    log.Amount,
			Metadata:  log.Metadata,
			CreatedAt: log.CreatedAt,
		})
	}
	return entries
}
