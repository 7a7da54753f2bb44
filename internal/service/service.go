package service

import (
	"context"
	"time"

	"temperature_prediction/internal/logger"
	"temperature_prediction/internal/models"
	"temperature_prediction/internal/prediction"
	"temperature_prediction/internal/state"
)

// Prediction dispatches date selections to the prediction endpoint.
type Prediction interface {
	Dispatch(ctx context.Context, date time.Time) (models.PredictionState, error)
	Reset(ctx context.Context) (models.PredictionState, error)
	Wait()
}

// Monitoring exposes the read-only screen state.
type Monitoring interface {
	GetState(ctx context.Context) (models.PredictionState, error)
}

// Service aggregates all sub-services.
type Service struct {
	Prediction
	Monitoring
}

// NewService wires a predictor and a shared state store into concrete services.
func NewService(predictor prediction.Predictor, store *state.Store, log *logger.Logger) *Service {
	return &Service{
		Prediction: NewPredictionService(predictor, store, log),
		Monitoring: NewMonitoringService(store),
	}
}
