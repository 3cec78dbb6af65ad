package errors

import (
	"strings"

	"atm-simulator/internal/config"
	"atm-simulator/internal/models"
	"atm-simulator/internal/validation"

	"github.com/shopspring/decimal"
)

// Operation names an ATM session operation an adapter may need to explain
type Operation string

const (
	OperationAuthenticate Operation = "authenticate"
	OperationDeposit      Operation = "deposit"
	OperationWithdraw     Operation = "withdraw"
	OperationTransfer     Operation = "transfer"
	OperationChangePin    Operation = "change_pin"
)

// SessionInspector is the read-only view of an ATM session used to work out
// why an operation was refused. *services.ATMService satisfies it.
type SessionInspector interface {
	IsSessionEnded() bool
	IsAccountFrozen() bool
	CardStatus() models.CardStatus
	CheckBalance() decimal.Decimal
	DailyTransactionCount() int
	RemainingDailyWithdrawalLimit() decimal.Decimal
	CanWithdrawWithMinBalance(amount decimal.Decimal) bool
	IsOwnAccount(accountID string) bool
	Policy() config.PolicyConfig
}

// Rejection describes the refused call
type Rejection struct {
	Operation Operation
	Amount    decimal.Decimal
	Target    string
	NewPin    string
}

// ExplainRejection re-derives the reason a session operation returned false.
// The session reports no reasons itself, so this must be called right after
// the refusal, before anything else changes the session state.
func ExplainRejection(session SessionInspector, r Rejection) ErrorCode {
	if code := BlockedCode(session); code != "" {
		return code
	}

	switch r.Operation {
	case OperationAuthenticate:
		return AuthInvalidPin
	case OperationChangePin:
		if !validation.IsValidPin(r.NewPin) {
			return ValidationInvalidPin
		}
		return AuthPinChangeFailed
	case OperationDeposit:
		return explainDeposit(session, r.Amount)
	case OperationWithdraw:
		return explainWithdraw(session, r.Amount)
	case OperationTransfer:
		return explainTransfer(session, r.Amount, r.Target)
	default:
		return TransactionInvalidType
	}
}

// BlockedCode reports why the session refuses every operation, or "" when
// it does not
func BlockedCode(session SessionInspector) ErrorCode {
	switch {
	case session.IsSessionEnded():
		return SessionEnded
	case session.IsAccountFrozen():
		return AuthAccountFrozen
	case session.CardStatus() == models.CardStatusBlocked:
		return AuthCardBlocked
	case !session.CardStatus().IsUsable():
		return AuthCardExpired
	default:
		return ""
	}
}

func explainDeposit(session SessionInspector, amount decimal.Decimal) ErrorCode {
	if !validation.IsValidAmount(amount) {
		return TransactionInvalidAmount
	}
	if session.DailyTransactionCount() >= session.Policy().MaxDailyTransactions {
		return LimitDailyTransactions
	}
	return TransactionValidationFailed
}

func explainWithdraw(session SessionInspector, amount decimal.Decimal) ErrorCode {
	if !validation.IsValidAmount(amount) {
		return TransactionInvalidAmount
	}
	if code, limited := explainDailyCaps(session, amount); limited {
		return code
	}
	if session.Policy().EnforceMinimumBalance && !session.CanWithdrawWithMinBalance(amount) {
		return AccountMinimumBalance
	}
	if amount.GreaterThan(session.CheckBalance()) {
		return TransactionInsufficientFunds
	}
	return TransactionValidationFailed
}

func explainTransfer(session SessionInspector, amount decimal.Decimal, target string) ErrorCode {
	if !validation.IsValidAmount(amount) {
		return TransferInvalidAmount
	}
	if strings.TrimSpace(target) == "" {
		return TransferMissingTarget
	}
	if session.IsOwnAccount(target) {
		return TransferSameAccount
	}
	if session.Policy().CapTransfers {
		if code, limited := explainDailyCaps(session, amount); limited {
			return code
		}
	}
	if amount.GreaterThan(session.CheckBalance()) {
		return TransferInsufficientFunds
	}
	return TransactionValidationFailed
}

func explainDailyCaps(session SessionInspector, amount decimal.Decimal) (ErrorCode, bool) {
	if session.DailyTransactionCount() >= session.Policy().MaxDailyTransactions {
		return LimitDailyTransactions, true
	}
	if amount.GreaterThan(session.RemainingDailyWithdrawalLimit()) {
		return LimitDailyWithdrawal, true
	}
	return "", false
}
