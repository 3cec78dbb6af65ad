package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"atm-simulator/internal/config"
	"atm-simulator/internal/dto"
	"atm-simulator/internal/errors"
	"atm-simulator/internal/models"
	"atm-simulator/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	testPin       = "1234"
	testSessionID = "kiosk-1"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Meta    json.RawMessage `json:"meta"`
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type SessionHandlerSuite struct {
	suite.Suite
	clock   *fixedClock
	policy  config.PolicyConfig
	handler *SessionHandler
	e       *echo.Echo
}

func TestSessionHandler(t *testing.T) {
	suite.Run(t, new(SessionHandlerSuite))
}

func (s *SessionHandlerSuite) SetupTest() {
	s.clock = &fixedClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	s.policy = config.DefaultPolicy()
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.newHandler(models.AccountTypeSavings)
}

func (s *SessionHandlerSuite) newHandler(accountType models.AccountType) {
	s.handler = newTestSessionHandler(s.T(), s.clock, s.policy, accountType)
}

func newTestSessionHandler(t *testing.T, clock *fixedClock, policy config.PolicyConfig, accountType models.AccountType) *SessionHandler {
	account := models.MustNewAccount(models.AccountParams{
		AccountNumber:  "1234567890",
		HolderName:     "Rajesh Kumar",
		InitialBalance: decimal.NewFromInt(50000),
		Pin:            testPin,
		Type:           accountType,
		Now:            clock.Now,
	})

	statements := services.NewStatementService(policy, clock.Now)
	session, err := services.NewATMService(account,
		services.WithPolicy(policy),
		services.WithClock(clock.Now),
		services.WithSessionID(testSessionID),
		services.WithStatementService(statements),
		services.WithAuditLogger(services.NewAuditLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))),
	)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return NewSessionHandler(session, statements)
}

func (s *SessionHandlerSuite) call(handler echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	err := handler(s.e.NewContext(req, rec))
	return rec, err
}

func (s *SessionHandlerSuite) mustCall(handler echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	rec, err := s.call(handler, method, target, body)
	s.Require().NoError(err)
	return rec
}

func (s *SessionHandlerSuite) decode(rec *httptest.ResponseRecorder, data interface{}) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil {
		s.Require().NoError(json.Unmarshal(env.Data, data))
	}
	return env
}

func (s *SessionHandlerSuite) assertError(rec *httptest.ResponseRecorder, status int, code errors.ErrorCode) *errors.ErrorResponse {
	s.Equal(status, rec.Code)
	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(code), resp.Error.Code)
	return &resp
}

func (s *SessionHandlerSuite) login() {
	rec := s.mustCall(s.handler.Authenticate, http.MethodPost, "/session/authenticate", `{"pin":"1234"}`)
	s.Require().Equal(http.StatusOK, rec.Code)
}

func (s *SessionHandlerSuite) TestGetSession_BeforeLogin() {
	rec := s.mustCall(s.handler.GetSession, http.MethodGet, "/session", "")
	s.Equal(http.StatusOK, rec.Code)

	var session dto.SessionResponse
	s.decode(rec, &session)
	s.Equal(testSessionID, session.SessionID)
	s.Equal("XXXXX7890", session.AccountNumber)
	s.False(session.Authenticated)
	s.Equal(3, session.AttemptsLeft)
	s.Equal("ACTIVE", session.CardStatus)
	s.Equal(s.clock.now.Add(5*time.Minute), session.ExpiresAt)
}

func (s *SessionHandlerSuite) TestAuthenticate() {
	s.Run("wrong PIN reports attempts left", func() {
		rec := s.mustCall(s.handler.Authenticate, http.MethodPost, "/session/authenticate", `{"pin":"9999"}`)
		resp := s.assertError(rec, http.StatusUnauthorized, errors.AuthInvalidPin)
		s.Equal([]string{"2 attempt(s) remaining"}, resp.Error.Details)
	})

	s.Run("malformed PIN still counts", func() {
		rec := s.mustCall(s.handler.Authenticate, http.MethodPost, "/session/authenticate", `{"pin":"12"}`)
		resp := s.assertError(rec, http.StatusUnauthorized, errors.AuthInvalidPin)
		s.Equal([]string{"1 attempt(s) remaining"}, resp.Error.Details)
	})

	s.Run("correct PIN resets attempts and restarts the window", func() {
		s.clock.Advance(2 * time.Minute)
		rec := s.mustCall(s.handler.Authenticate, http.MethodPost, "/session/authenticate", `{"pin":"1234"}`)
		s.Equal(http.StatusOK, rec.Code)

		var session dto.SessionResponse
		env := s.decode(rec, &session)
		s.True(session.Authenticated)
		s.Equal(0, session.FailedAttempts)
		s.Equal(s.clock.now, session.StartedAt)
		s.Equal("Welcome, Rajesh Kumar", env.Message)
	})
}

func (s *SessionHandlerSuite) TestAuthenticate_LockoutAfterThreeFailures() {
	for i := 0; i < 3; i++ {
		s.mustCall(s.handler.Authenticate, http.MethodPost, "/session/authenticate", `{"pin":"0000"}`)
	}

	rec := s.mustCall(s.handler.Authenticate, http.MethodPost, "/session/authenticate", `{"pin":"1234"}`)
	s.assertError(rec, http.StatusForbidden, errors.AuthAccountFrozen)
	s.Equal(errors.AuthAccountFrozen, s.handler.CheckSession())
}

func (s *SessionHandlerSuite) TestAuthenticate_MissingPin() {
	_, err := s.call(s.handler.Authenticate, http.MethodPost, "/session/authenticate", `{}`)
	s.Error(err)
}

func (s *SessionHandlerSuite) TestCheckSession() {
	s.Equal(errors.AuthNotLoggedIn, s.handler.CheckSession())

	s.login()
	s.Equal(errors.ErrorCode(""), s.handler.CheckSession())

	s.clock.Advance(5 * time.Minute)
	s.Equal(errors.SessionTimedOut, s.handler.CheckSession())
	s.Equal(errors.SessionEnded, s.handler.CheckSession())
}

func (s *SessionHandlerSuite) TestBalance() {
	s.login()

	rec := s.mustCall(s.handler.Balance, http.MethodGet, "/session/balance", "")
	s.Equal(http.StatusOK, rec.Code)

	var balance dto.BalanceResponse
	s.decode(rec, &balance)
	s.Equal("50000.00", balance.Balance)
	s.Equal("₹50,000.00", balance.Formatted)
	s.Equal("SAVINGS", balance.AccountType)
	s.Equal("INR", balance.Currency)
}

func (s *SessionHandlerSuite) TestDeposit() {
	s.login()

	rec := s.mustCall(s.handler.Deposit, http.MethodPost, "/session/deposit", `{"amount":"5000"}`)
	s.Equal(http.StatusOK, rec.Code)

	var tx dto.TransactionResponse
	s.decode(rec, &tx)
	s.Equal("DEPOSIT", tx.TransactionType)
	s.Equal("5000.00", tx.Amount)
	s.Equal("55000.00", tx.Balance)
	s.Equal(1, tx.DailyTransactionCount)
	s.Equal("50000.00", tx.RemainingDailyWithdrawLimit)
	s.Empty(tx.Fee)
	s.Contains(tx.Receipt, "XXXXX7890")
}

func (s *SessionHandlerSuite) TestDeposit_Rejections() {
	s.login()

	tests := []struct {
		name   string
		body   string
		status int
		code   errors.ErrorCode
	}{
		{name: "zero", body: `{"amount":"0"}`, status: http.StatusBadRequest, code: errors.TransactionInvalidAmount},
		{name: "negative", body: `{"amount":-10}`, status: http.StatusBadRequest, code: errors.TransactionInvalidAmount},
		{name: "sub-paise", body: `{"amount":"10.005"}`, status: http.StatusBadRequest, code: errors.TransactionInvalidAmount},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.mustCall(s.handler.Deposit, http.MethodPost, "/session/deposit", tt.body)
			s.assertError(rec, tt.status, tt.code)
		})
	}
}

func (s *SessionHandlerSuite) TestDeposit_MalformedBody() {
	rec := s.mustCall(s.handler.Deposit, http.MethodPost, "/session/deposit", `{"amount":`)
	s.assertError(rec, http.StatusBadRequest, errors.ValidationGeneral)
}

func (s *SessionHandlerSuite) TestWithdraw() {
	s.login()

	rec := s.mustCall(s.handler.Withdraw, http.MethodPost, "/session/withdraw", `{"amount":"3000"}`)
	s.Equal(http.StatusOK, rec.Code)

	var tx dto.TransactionResponse
	env := s.decode(rec, &tx)
	s.Equal("47000.00", tx.Balance)
	s.Equal("47000.00", tx.RemainingDailyWithdrawLimit)
	s.Equal("Please collect your cash", env.Message)
}

func (s *SessionHandlerSuite) TestWithdraw_Rejections() {
	s.login()

	rec := s.mustCall(s.handler.Withdraw, http.MethodPost, "/session/withdraw", `{"amount":"50001"}`)
	s.assertError(rec, http.StatusUnprocessableEntity, errors.LimitDailyWithdrawal)

	s.mustCall(s.handler.Withdraw, http.MethodPost, "/session/withdraw", `{"amount":"45000"}`)
	rec = s.mustCall(s.handler.Withdraw, http.MethodPost, "/session/withdraw", `{"amount":"5001"}`)
	s.assertError(rec, http.StatusUnprocessableEntity, errors.LimitDailyWithdrawal)

	rec = s.mustCall(s.handler.Withdraw, http.MethodPost, "/session/withdraw", `{"amount":"5000.001"}`)
	s.assertError(rec, http.StatusBadRequest, errors.TransactionInvalidAmount)
}

func (s *SessionHandlerSuite) TestTransfer() {
	s.login()

	rec := s.mustCall(s.handler.Transfer, http.MethodPost, "/session/transfer",
		`{"amount":"20000","targetAccount":"9876543210"}`)
	s.Equal(http.StatusOK, rec.Code)

	var tx dto.TransactionResponse
	env := s.decode(rec, &tx)
	s.Equal("TRANSFER_OUT", tx.TransactionType)
	s.Equal("30000.00", tx.Balance)
	s.Equal("200.00", tx.Fee)
	s.Equal("Transfer to XXXXX3210 successful", env.Message)
}

func (s *SessionHandlerSuite) TestTransfer_Rejections() {
	s.login()

	tests := []struct {
		name   string
		body   string
		status int
		code   errors.ErrorCode
	}{
		{
			name:   "own account",
			body:   `{"amount":"100","targetAccount":"1234567890"}`,
			status: http.StatusBadRequest,
			code:   errors.TransferSameAccount,
		},
		{
			name:   "zero amount",
			body:   `{"amount":"0","targetAccount":"9876543210"}`,
			status: http.StatusBadRequest,
			code:   errors.TransferInvalidAmount,
		},
		{
			name:   "above balance",
			body:   `{"amount":"50000.01","targetAccount":"9876543210"}`,
			status: http.StatusUnprocessableEntity,
			code:   errors.TransferInsufficientFunds,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.mustCall(s.handler.Transfer, http.MethodPost, "/session/transfer", tt.body)
			s.assertError(rec, tt.status, tt.code)
		})
	}
}

func (s *SessionHandlerSuite) TestTransfer_MissingTargetFailsValidation() {
	s.login()

	_, err := s.call(s.handler.Transfer, http.MethodPost, "/session/transfer", `{"amount":"100"}`)
	s.Error(err)
}

func (s *SessionHandlerSuite) TestChangePin() {
	s.login()

	s.Run("weak PIN is accepted with a warning", func() {
		rec := s.mustCall(s.handler.ChangePin, http.MethodPost, "/session/pin", `{"oldPin":"1234","newPin":"1111"}`)
		s.Equal(http.StatusOK, rec.Code)

		var resp dto.PinChangeResponse
		env := s.decode(rec, &resp)
		s.True(resp.WeakPin)
		s.Contains(env.Message, "Consider a PIN")
	})

	s.Run("strong PIN", func() {
		rec := s.mustCall(s.handler.ChangePin, http.MethodPost, "/session/pin", `{"oldPin":"1111","newPin":"2580"}`)
		s.Equal(http.StatusOK, rec.Code)

		var resp dto.PinChangeResponse
		s.decode(rec, &resp)
		s.False(resp.WeakPin)
	})

	s.Run("wrong old PIN", func() {
		rec := s.mustCall(s.handler.ChangePin, http.MethodPost, "/session/pin", `{"oldPin":"1234","newPin":"2468"}`)
		s.assertError(rec, http.StatusUnprocessableEntity, errors.AuthPinChangeFailed)
	})

	s.Run("malformed new PIN fails validation", func() {
		_, err := s.call(s.handler.ChangePin, http.MethodPost, "/session/pin", `{"oldPin":"2580","newPin":"12a4"}`)
		s.Error(err)
	})
}

func (s *SessionHandlerSuite) TestMiniStatement() {
	s.login()
	for _, amount := range []string{"100", "200", "300"} {
		s.mustCall(s.handler.Deposit, http.MethodPost, "/session/deposit", `{"amount":"`+amount+`"}`)
	}

	rec := s.mustCall(s.handler.MiniStatement, http.MethodGet, "/session/statement?n=2", "")
	s.Equal(http.StatusOK, rec.Code)

	var statement dto.MiniStatementResponse
	s.decode(rec, &statement)
	s.Equal("50600.00", statement.Balance)
	s.Require().Len(statement.Transactions, 2)
	s.Equal("200.00", statement.Transactions[0].Amount)
	s.Equal("300.00", statement.Transactions[1].Amount)
	s.Equal("50600.00", statement.Transactions[1].BalanceAfter)
}

func (s *SessionHandlerSuite) TestExportStatement() {
	s.login()
	s.mustCall(s.handler.Deposit, http.MethodPost, "/session/deposit", `{"amount":"1500"}`)

	s.Run("csv by default", func() {
		rec := s.mustCall(s.handler.ExportStatement, http.MethodGet, "/session/statement/export", "")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
		s.Contains(rec.Header().Get(echo.HeaderContentDisposition), `filename="statement_7890_`)
		s.Contains(rec.Body.String(), "1500.00")
	})

	s.Run("html", func() {
		rec := s.mustCall(s.handler.ExportStatement, http.MethodGet, "/session/statement/export?format=HTML", "")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
		s.Contains(rec.Header().Get(echo.HeaderContentDisposition), ".html")
	})

	s.Run("unknown format", func() {
		rec := s.mustCall(s.handler.ExportStatement, http.MethodGet, "/session/statement/export?format=pdf", "")
		s.assertError(rec, http.StatusBadRequest, errors.ValidationInvalidFormat)
	})
}

func (s *SessionHandlerSuite) TestReceipt() {
	s.login()

	rec := s.mustCall(s.handler.Receipt, http.MethodGet, "/session/receipt", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "XXXXX7890")
	s.Contains(rec.Body.String(), "₹50,000.00")
}

func (s *SessionHandlerSuite) TestEndSession() {
	s.login()

	rec := s.mustCall(s.handler.EndSession, http.MethodPost, "/session/end", "")
	s.Equal(http.StatusOK, rec.Code)

	var session dto.SessionResponse
	s.decode(rec, &session)
	s.True(session.SessionEnded)
	s.Equal(errors.SessionEnded, s.handler.CheckSession())

	rec = s.mustCall(s.handler.Deposit, http.MethodPost, "/session/deposit", `{"amount":"100"}`)
	s.assertError(rec, http.StatusUnauthorized, errors.SessionEnded)
}

func (s *SessionHandlerSuite) TestAuthenticate_EndedSessionWithoutFactory() {
	s.login()
	s.mustCall(s.handler.EndSession, http.MethodPost, "/session/end", "")

	rec := s.mustCall(s.handler.Authenticate, http.MethodPost, "/session/authenticate", `{"pin":"1234"}`)
	s.assertError(rec, http.StatusUnauthorized, errors.SessionEnded)
}

func (s *SessionHandlerSuite) TestAuthenticate_OpensFreshSessionAfterEnd() {
	var ended services.ATMServiceInterface
	s.handler.next = func(previous services.ATMServiceInterface) (services.ATMServiceInterface, error) {
		ended = previous
		return services.NewATMService(
			models.MustNewAccount(models.AccountParams{
				AccountNumber:  "1234567890",
				HolderName:     "Rajesh Kumar",
				InitialBalance: decimal.NewFromInt(50000),
				Pin:            testPin,
				Now:            s.clock.Now,
			}),
			services.WithPolicy(s.policy),
			services.WithClock(s.clock.Now),
			services.WithCarriedState(previous),
		)
	}

	s.login()
	s.Nil(ended, "a live session is never replaced")
	s.mustCall(s.handler.EndSession, http.MethodPost, "/session/end", "")

	rec := s.mustCall(s.handler.Authenticate, http.MethodPost, "/session/authenticate", `{"pin":"1234"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var session dto.SessionResponse
	s.decode(rec, &session)
	s.True(session.Authenticated)
	s.False(session.SessionEnded)
	s.NotEqual(testSessionID, session.SessionID)
	s.Require().NotNil(ended)
	s.Equal(testSessionID, ended.SessionID())
	s.Equal(errors.ErrorCode(""), s.handler.CheckSession())
}

func (s *SessionHandlerSuite) TestAuthenticate_FactoryFailure() {
	s.handler.next = func(services.ATMServiceInterface) (services.ATMServiceInterface, error) {
		return nil, services.ErrNilAccount
	}
	s.mustCall(s.handler.EndSession, http.MethodPost, "/session/end", "")

	rec := s.mustCall(s.handler.Authenticate, http.MethodPost, "/session/authenticate", `{"pin":"1234"}`)
	s.assertError(rec, http.StatusInternalServerError, errors.SystemInternalError)
	s.Equal(errors.SessionEnded, s.handler.CheckSession())
}

func (s *SessionHandlerSuite) TestRefreshSession() {
	s.login()

	for minute := 0; minute < 6; minute++ {
		s.clock.Advance(time.Minute)
		s.Require().Equal(errors.ErrorCode(""), s.handler.CheckSession(), "minute %d", minute+1)
		s.handler.RefreshSession()
	}

	s.clock.Advance(5 * time.Minute)
	s.Equal(errors.SessionTimedOut, s.handler.CheckSession())
}
