package service

import (
	"context"

	"temperature_prediction/internal/models"
	"temperature_prediction/internal/state"
)

type MonitoringService struct {
	store *state.Store
}

func NewMonitoringService(store *state.Store) *MonitoringService {
	return &MonitoringService{store: store}
}

// GetState returns the current screen snapshot.
func (s *MonitoringService) GetState(ctx context.Context) (models.PredictionState, error) {
	if err := ctx.Err(); err != nil {
		return models.PredictionState{}, err
	}
	return s.store.Snapshot(), nil
}
