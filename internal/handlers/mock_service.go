package handlers

import (
	"context"
	"time"

	"temperature_prediction/internal/models"
	"temperature_prediction/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockPrediction struct {
	dispatchState models.PredictionState
	dispatchErr   error
	resetState    models.PredictionState
	resetErr      error

	lastDate      time.Time
	dispatchCalls int
	resetCalls    int
}

func (m *mockPrediction) Dispatch(ctx context.Context, date time.Time) (models.PredictionState, error) {
	m.dispatchCalls++
	m.lastDate = date
	return m.dispatchState, m.dispatchErr
}
func (m *mockPrediction) Reset(ctx context.Context) (models.PredictionState, error) {
	m.resetCalls++
	return m.resetState, m.resetErr
}
func (m *mockPrediction) Wait() {}

type mockMonitoring struct {
	state models.PredictionState
	err   error
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.PredictionState, error) {
	return m.state, m.err
}

// ---- Shared Test Helpers ----

// fixedDateRules pins "today" to 2025-03-09 so 2025-03-10 is tomorrow.
func fixedDateRules() DateRules {
	return DateRules{
		MaxDaysAhead: 7,
		Location:     time.UTC,
		Now:          func() time.Time { return time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC) },
	}
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, fixedDateRules())
	return h.InitRoutes()
}
