package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atm-simulator/internal/config"
	"atm-simulator/internal/dto"
	"atm-simulator/internal/models"
	"atm-simulator/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditHandler_SessionTrail(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := &fixedClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	sessions := newTestSessionHandler(t, clock, config.DefaultPolicy(), models.AccountTypeSavings)
	audit := service_mocks.NewMockAuditServiceInterface(ctrl)
	handler := NewAuditHandler(sessions, audit)

	logs := []*models.AuditLog{
		{ID: uuid.New(), SessionID: testSessionID, Action: models.AuditActionSessionStarted, Status: models.AuditStatusSuccess},
		{ID: uuid.New(), SessionID: testSessionID, Action: models.AuditActionAuthenticate, Status: models.AuditStatusSuccess},
	}
	audit.EXPECT().SessionTrail(testSessionID).Return(logs, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/session/audit", nil), rec)

	require.NoError(t, handler.SessionTrail(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var trail dto.AuditTrailResponse
	require.NoError(t, json.Unmarshal(env.Data, &trail))
	assert.Equal(t, testSessionID, trail.SessionID)
	require.Len(t, trail.Entries, 2)
	assert.Equal(t, models.AuditActionSessionStarted, trail.Entries[0].Action)
	assert.Equal(t, models.AuditActionAuthenticate, trail.Entries[1].Action)
}

func TestAuditHandler_SessionTrailErrors(t *testing.T) {
	clock := &fixedClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	sessions := newTestSessionHandler(t, clock, config.DefaultPolicy(), models.AccountTypeSavings)
	e := echo.New()

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		audit := service_mocks.NewMockAuditServiceInterface(ctrl)
		audit.EXPECT().SessionTrail(testSessionID).Return(nil, fmt.Errorf("database is locked"))

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/session/audit", nil), rec)
		require.NoError(t, NewAuditHandler(sessions, audit).SessionTrail(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "database is locked")
	})

	t.Run("store disabled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/session/audit", nil), rec)
		require.NoError(t, NewAuditHandler(sessions, nil).SessionTrail(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
