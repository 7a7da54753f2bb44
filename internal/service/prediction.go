package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"temperature_prediction/internal/logger"
	"temperature_prediction/internal/models"
	"temperature_prediction/internal/prediction"
	"temperature_prediction/internal/state"

	"github.com/google/uuid"
)

var errNoDate = errors.New("date is required")

// PredictionService runs one background fetch per dispatch and settles the store.
type PredictionService struct {
	predictor prediction.Predictor
	store     *state.Store
	log       *logger.Logger
	now       func() time.Time
	inflight  sync.WaitGroup
}

func NewPredictionService(predictor prediction.Predictor, store *state.Store, log *logger.Logger) *PredictionService {
	return &PredictionService{
		predictor: predictor,
		store:     store,
		log:       log,
		now:       time.Now,
	}
}

// Dispatch makes date the current request and returns the Loading snapshot without
// waiting for the endpoint. Overlapping dispatches all run; only the latest one settles.
func (s *PredictionService) Dispatch(ctx context.Context, date time.Time) (models.PredictionState, error) {
	if date.IsZero() {
		return models.PredictionState{}, errNoDate
	}

	reqID := uuid.NewString()
	day := models.FormatDate(date)
	st := s.store.Dispatch(reqID, day, s.now())

	if s.log != nil {
		s.log.Debugw("prediction_dispatched", "request_id", reqID, "seq", st.Seq, "date", day)
	}

	// the fetch outlives the caller's request
	fetchCtx := context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go s.settle(fetchCtx, st.Seq, reqID, date)

	return st, nil
}

func (s *PredictionService) settle(ctx context.Context, seq uint64, reqID string, date time.Time) {
	defer s.inflight.Done()

	temp, err := s.predictor.Predict(ctx, date)

	if err != nil && s.log != nil {
		s.log.Errorw("prediction_fetch_failed", "err", err, "kind", prediction.KindOf(err), "request_id", reqID, "seq", seq)
	}
	res := prediction.ToResult(temp, err)

	st := s.store.Apply(state.Settled{Seq: seq, Result: res, At: s.now()})
	if st.Seq != seq && s.log != nil {
		s.log.Infow("prediction_response_stale", "request_id", reqID, "seq", seq, "current_seq", st.Seq)
	}
}

// Reset clears the screen back to idle.
func (s *PredictionService) Reset(ctx context.Context) (models.PredictionState, error) {
	return s.store.Apply(state.Reset{At: s.now()}), nil
}

// Wait blocks until every dispatched fetch has settled.
func (s *PredictionService) Wait() {
	s.inflight.Wait()
}
