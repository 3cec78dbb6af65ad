package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"atm-simulator/internal/dto"
	apperrors "atm-simulator/internal/errors"
	"atm-simulator/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	logs    *bytes.Buffer
	handler echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.logs = &bytes.Buffer{}
	s.handler = ErrorHandler(slog.New(slog.NewJSONHandler(s.logs, nil)))
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodPost, "/session/withdraw", nil), rec)
	c.Set(TraceIDContextKey, "trace-42")
	return c, rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	var resp apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *ErrorHandlerTestSuite) TestEchoErrorKeepsStatusAndMessage() {
	c, rec := s.newContext()

	s.handler(echo.NewHTTPError(http.StatusNotFound, "no such kiosk route"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	resp := s.decode(rec)
	s.Equal("SYSTEM_007", resp.Error.Code)
	s.Equal("no such kiosk route", resp.Error.Message)
	s.Equal("trace-42", resp.Error.TraceID)
	s.Contains(s.logs.String(), `"level":"WARN"`)
}

func (s *ErrorHandlerTestSuite) TestWrappedEchoErrorIsRecognised() {
	c, rec := s.newContext()

	s.handler(fmt.Errorf("binding: %w", echo.NewHTTPError(http.StatusUnsupportedMediaType)), c)

	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
	s.Equal("VALIDATION_001", s.decode(rec).Error.Code)
}

func (s *ErrorHandlerTestSuite) TestUnknownErrorIsHiddenAndLogged() {
	c, rec := s.newContext()

	s.handler(errors.New("audit store: disk full"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.decode(rec).Error.Code)
	s.NotContains(rec.Body.String(), "disk full")
	s.Contains(s.logs.String(), "disk full")
	s.Contains(s.logs.String(), `"level":"ERROR"`)
}

func (s *ErrorHandlerTestSuite) TestMissingTraceID() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	s.handler(errors.New("boom"), c)

	s.Equal("unknown", s.decode(rec).Error.TraceID)
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	c, rec := s.newContext()
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	s.handler(errors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "SYSTEM_001")
	s.Empty(s.logs.String())
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	validate := validation.GetValidator()

	testCases := []struct {
		name    string
		request interface{}
		detail  string
	}{
		{"missing PIN", dto.AuthenticateRequest{}, "pin: is required"},
		{"malformed new PIN", dto.ChangePinRequest{OldPin: "1234", NewPin: "12a4"}, "newPin: must be exactly 4 digits"},
		{"bad card status", dto.CardStatusRequest{Status: "LOST"}, "status: must be one of: ACTIVE BLOCKED EXPIRED"},
		{"bad target account", dto.TransferRequest{TargetAccount: "98765 43210"}, "targetAccount: must be a valid account number"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := validate.Struct(tc.request)
			s.Require().Error(err)

			c, rec := s.newContext()
			s.handler(err, c)

			s.Equal(http.StatusBadRequest, rec.Code)
			resp := s.decode(rec)
			s.Equal("VALIDATION_001", resp.Error.Code)
			s.Contains(resp.Error.Details, tc.detail)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestEchoStatusCodes() {
	testCases := map[int]string{
		http.StatusBadRequest:            "VALIDATION_001",
		http.StatusUnauthorized:          "AUTH_005",
		http.StatusForbidden:             "ACCOUNT_004",
		http.StatusNotFound:              "SYSTEM_007",
		http.StatusMethodNotAllowed:      "SYSTEM_007",
		http.StatusRequestEntityTooLarge: "VALIDATION_004",
		http.StatusUnsupportedMediaType:  "VALIDATION_001",
		http.StatusUnprocessableEntity:   "TRANSACTION_003",
		http.StatusTooManyRequests:       "SYSTEM_006",
		http.StatusInternalServerError:   "SYSTEM_001",
		http.StatusServiceUnavailable:    "SYSTEM_003",
		http.StatusTeapot:                "SYSTEM_005",
	}

	for status, code := range testCases {
		s.Run(http.StatusText(status), func() {
			c, rec := s.newContext()

			s.handler(echo.NewHTTPError(status), c)

			s.Equal(status, rec.Code)
			s.Equal(code, s.decode(rec).Error.Code)
		})
	}
}
