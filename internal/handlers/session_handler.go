package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"

	"atm-simulator/internal/dto"
	"atm-simulator/internal/errors"
	"atm-simulator/internal/models"
	"atm-simulator/internal/services"
	"atm-simulator/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var exportContentTypes = map[services.ExportFormat]string{
	services.ExportFormatCSV:  "text/csv; charset=utf-8",
	services.ExportFormatTXT:  echo.MIMETextPlainCharsetUTF8,
	services.ExportFormatHTML: echo.MIMETextHTMLCharsetUTF8,
}

// SessionFactory opens the session that replaces ended. The new session
// works on the same account.
type SessionFactory func(ended services.ATMServiceInterface) (services.ATMServiceInterface, error)

// SessionHandler exposes the kiosk's single ATM session over HTTP.
// The session is not safe for concurrent use, so every request holds mu.
type SessionHandler struct {
	mu         sync.Mutex
	session    services.ATMServiceInterface
	statements services.StatementServiceInterface
	next       SessionFactory
}

type SessionHandlerOption func(*SessionHandler)

// WithSessionFactory lets Authenticate replace an ended session. Without
// one, an ended session refuses every request.
func WithSessionFactory(next SessionFactory) SessionHandlerOption {
	return func(h *SessionHandler) {
		h.next = next
	}
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(session services.ATMServiceInterface, statements services.StatementServiceInterface, opts ...SessionHandlerOption) *SessionHandler {
	h := &SessionHandler{
		session:    session,
		statements: statements,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *SessionHandler) withSession(fn func(services.ATMServiceInterface) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return fn(h.session)
}

// CheckSession reports why a protected request must be refused, or "" when
// the customer is authenticated inside the session window. A session found
// past its timeout is expired here.
func (h *SessionHandler) CheckSession() errors.ErrorCode {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session.IsSessionEnded() {
		return errors.SessionEnded
	}
	if h.session.IsAuthenticated() && h.session.IsSessionTimedOut() {
		h.session.ExpireSession()
		return errors.SessionTimedOut
	}
	if code := errors.BlockedCode(h.session); code != "" {
		return code
	}
	if !h.session.IsAuthenticated() {
		return errors.AuthNotLoggedIn
	}
	return ""
}

// RefreshSession restarts the session window after a successful request
func (h *SessionHandler) RefreshSession() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session.IsAuthenticated() {
		h.session.ResetSessionTimeout()
	}
}

// renew swaps an ended session for a fresh one. Callers hold mu.
func (h *SessionHandler) renew() error {
	if h.next == nil || !h.session.IsSessionEnded() {
		return nil
	}

	fresh, err := h.next(h.session)
	if err != nil {
		return fmt.Errorf("opening a new session: %w", err)
	}
	h.session = fresh
	return nil
}

// SessionID returns the ID of the kiosk session
func (h *SessionHandler) SessionID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.session.SessionID()
}

// GetSession describes the session state
// @Summary Session state
// @Tags Session
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.SessionResponse}
// @Router /session [get]
func (h *SessionHandler) GetSession(c echo.Context) error {
	return h.withSession(func(s services.ATMServiceInterface) error {
		return c.JSON(http.StatusOK, SuccessResponse{Data: sessionResponse(s)})
	})
}

// Authenticate checks the PIN. Success restarts the session window. After
// the previous customer ended or timed out, a new session is opened first.
// @Summary Authenticate with PIN
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.AuthenticateRequest true "PIN"
// @Success 200 {object} SuccessResponse{data=dto.SessionResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Incorrect PIN"
// @Failure 403 {object} errors.ErrorResponse "AUTH_002/AUTH_003/AUTH_004 - Account locked or card unusable"
// @Router /session/authenticate [post]
func (h *SessionHandler) Authenticate(c echo.Context) error {
	var req dto.AuthenticateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.renew(); err != nil {
		return SendSystemError(c, err)
	}

	s := h.session
	if !s.Authenticate(req.Pin) {
		code := errors.ExplainRejection(s, errors.Rejection{Operation: errors.OperationAuthenticate})
		if code == errors.AuthInvalidPin {
			left := s.Policy().MaxFailedAttempts - s.FailedLoginAttempts()
			return SendError(c, code, errors.WithDetails(fmt.Sprintf("%d attempt(s) remaining", left)))
		}
		return SendError(c, code)
	}

	s.ResetSessionTimeout()
	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    sessionResponse(s),
		Message: "Welcome, " + s.HolderName(),
	})
}

// Balance returns the current balance
// @Summary Balance inquiry
// @Tags Session
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.BalanceResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_005 - Not authenticated"
// @Router /session/balance [get]
func (h *SessionHandler) Balance(c echo.Context) error {
	return h.withSession(func(s services.ATMServiceInterface) error {
		currency := s.Policy().Currency
		balance := s.CheckBalance()

		return c.JSON(http.StatusOK, SuccessResponse{Data: dto.BalanceResponse{
			AccountNumber: s.MaskedAccountNumber(),
			HolderName:    s.HolderName(),
			AccountType:   string(s.AccountType()),
			Balance:       balance.StringFixed(2),
			Formatted:     services.FormatMoney(balance, currency),
			Currency:      currency,
		}})
	})
}

// Deposit credits the session account
// @Summary Deposit
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.AmountRequest true "Amount"
// @Success 200 {object} SuccessResponse{data=dto.TransactionResponse}
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_001 - Invalid amount"
// @Failure 422 {object} errors.ErrorResponse "LIMIT_001 - Daily transaction limit reached"
// @Router /session/deposit [post]
func (h *SessionHandler) Deposit(c echo.Context) error {
	var req dto.AmountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	return h.withSession(func(s services.ATMServiceInterface) error {
		if !s.DepositMoney(req.Amount) {
			return SendRejection(c, s, errors.Rejection{Operation: errors.OperationDeposit, Amount: req.Amount})
		}
		return c.JSON(http.StatusOK, SuccessResponse{
			Data:    transactionResponse(s, models.TransactionTypeDeposit, req.Amount, decimal.Zero),
			Message: "Deposit successful",
		})
	})
}

// Withdraw debits the session account
// @Summary Withdraw
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.AmountRequest true "Amount"
// @Success 200 {object} SuccessResponse{data=dto.TransactionResponse}
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_001 - Invalid amount"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_002 / LIMIT_001 / LIMIT_002 / ACCOUNT_002"
// @Router /session/withdraw [post]
func (h *SessionHandler) Withdraw(c echo.Context) error {
	var req dto.AmountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	return h.withSession(func(s services.ATMServiceInterface) error {
		if !s.WithdrawMoney(req.Amount) {
			return SendRejection(c, s, errors.Rejection{Operation: errors.OperationWithdraw, Amount: req.Amount})
		}
		return c.JSON(http.StatusOK, SuccessResponse{
			Data:    transactionResponse(s, models.TransactionTypeWithdrawal, req.Amount, decimal.Zero),
			Message: "Please collect your cash",
		})
	})
}

// Transfer sends money to another account. The fee is quoted, not charged.
// @Summary Transfer
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Amount and target account"
// @Success 200 {object} SuccessResponse{data=dto.TransactionResponse}
// @Failure 400 {object} errors.ErrorResponse "TRANSFER_001 / TRANSFER_004"
// @Failure 422 {object} errors.ErrorResponse "TRANSFER_003 - Insufficient balance"
// @Router /session/transfer [post]
func (h *SessionHandler) Transfer(c echo.Context) error {
	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	return h.withSession(func(s services.ATMServiceInterface) error {
		if !s.TransferMoney(req.Amount, req.TargetAccount) {
			return SendRejection(c, s, errors.Rejection{
				Operation: errors.OperationTransfer,
				Amount:    req.Amount,
				Target:    req.TargetAccount,
			})
		}

		fee := s.CalculateTransactionFee(models.TransactionTypeTransfer, req.Amount)
		return c.JSON(http.StatusOK, SuccessResponse{
			Data:    transactionResponse(s, models.TransactionTypeTransferOut, req.Amount, fee),
			Message: "Transfer to " + models.MaskAccountNumber(req.TargetAccount) + " successful",
		})
	})
}

// ChangePin replaces the card PIN
// @Summary Change PIN
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.ChangePinRequest true "Old and new PIN"
// @Success 200 {object} SuccessResponse{data=dto.PinChangeResponse}
// @Failure 422 {object} errors.ErrorResponse "AUTH_006 - PIN change failed"
// @Router /session/pin [post]
func (h *SessionHandler) ChangePin(c echo.Context) error {
	var req dto.ChangePinRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	return h.withSession(func(s services.ATMServiceInterface) error {
		if !s.ChangePin(req.OldPin, req.NewPin) {
			return SendRejection(c, s, errors.Rejection{Operation: errors.OperationChangePin, NewPin: req.NewPin})
		}

		weak := !validation.IsStrongPin(req.NewPin)
		message := "PIN changed successfully"
		if weak {
			message += ". Consider a PIN that is not sequential or repeated"
		}
		return c.JSON(http.StatusOK, SuccessResponse{
			Data:    dto.PinChangeResponse{WeakPin: weak},
			Message: message,
		})
	})
}

// MiniStatement lists the last n transactions
// @Summary Mini statement
// @Tags Session
// @Produce json
// @Param n query int false "Number of transactions" default(5)
// @Success 200 {object} SuccessResponse{data=dto.MiniStatementResponse}
// @Router /session/statement [get]
func (h *SessionHandler) MiniStatement(c echo.Context) error {
	n := getIntParam(c, "n", 0)

	return h.withSession(func(s services.ATMServiceInterface) error {
		return c.JSON(http.StatusOK, SuccessResponse{Data: dto.MiniStatementResponse{
			AccountNumber: s.MaskedAccountNumber(),
			Balance:       s.CheckBalance().StringFixed(2),
			Transactions:  dto.ToTransactionItems(s.MiniStatement(n)),
		}})
	})
}

// ExportStatement downloads the full statement as csv, txt or html
// @Summary Export statement
// @Tags Session
// @Produce text/csv,text/plain,text/html
// @Param format query string false "Export format" Enums(csv, txt, html) default(csv)
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid format"
// @Router /session/statement/export [get]
func (h *SessionHandler) ExportStatement(c echo.Context) error {
	raw := c.QueryParam("format")
	if raw == "" {
		raw = string(services.ExportFormatCSV)
	}
	format, err := services.ParseExportFormat(raw)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("format must be one of csv, txt, html"))
	}

	var statement *models.AccountStatement
	_ = h.withSession(func(s services.ATMServiceInterface) error {
		statement = s.Statement()
		return nil
	})

	var buf bytes.Buffer
	if err := h.statements.Export(statement, format, &buf); err != nil {
		return SendSystemError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", services.StatementFilename(statement, format)))
	return c.Blob(http.StatusOK, exportContentTypes[format], buf.Bytes())
}

// Receipt prints a balance inquiry slip
// @Summary Balance receipt
// @Tags Session
// @Produce plain
// @Success 200 {string} string
// @Router /session/receipt [get]
func (h *SessionHandler) Receipt(c echo.Context) error {
	return h.withSession(func(s services.ATMServiceInterface) error {
		return c.String(http.StatusOK, s.GenerateBalanceReceipt())
	})
}

// EndSession ends the kiosk session; guarded requests are refused until
// the next Authenticate
// @Summary End session
// @Tags Session
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /session/end [post]
func (h *SessionHandler) EndSession(c echo.Context) error {
	return h.withSession(func(s services.ATMServiceInterface) error {
		s.EndSession()
		return c.JSON(http.StatusOK, SuccessResponse{
			Data:    sessionResponse(s),
			Message: "Thank you for banking with us",
		})
	})
}

// Close ends whichever session is current
func (h *SessionHandler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session.EndSession()
}

func sessionResponse(s services.ATMServiceInterface) dto.SessionResponse {
	policy := s.Policy()
	left := policy.MaxFailedAttempts - s.FailedLoginAttempts()
	if left < 0 {
		left = 0
	}

	return dto.SessionResponse{
		SessionID:      s.SessionID(),
		AccountNumber:  s.MaskedAccountNumber(),
		Authenticated:  s.IsAuthenticated(),
		StartedAt:      s.SessionStartTime(),
		ExpiresAt:      s.SessionStartTime().Add(policy.SessionTimeout),
		FailedAttempts: s.FailedLoginAttempts(),
		AttemptsLeft:   left,
		CardStatus:     string(s.CardStatus()),
		AccountFrozen:  s.IsAccountFrozen(),
		SessionEnded:   s.IsSessionEnded(),
	}
}

func transactionResponse(s services.ATMServiceInterface, txType models.TransactionType, amount, fee decimal.Decimal) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		TransactionType:             string(txType),
		Amount:                      amount.StringFixed(2),
		Balance:                     s.CheckBalance().StringFixed(2),
		DailyTransactionCount:       s.DailyTransactionCount(),
		RemainingDailyWithdrawLimit: s.RemainingDailyWithdrawalLimit().StringFixed(2),
		Receipt:                     s.GenerateReceipt(txType, amount),
	}
	if fee.IsPositive() {
		resp.Fee = fee.StringFixed(2)
	}
	return resp
}
