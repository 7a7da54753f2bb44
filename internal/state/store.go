package state

import (
	"sync"
	"time"

	"temperature_prediction/internal/models"
)

// Store holds the single current PredictionState.
type Store struct {
	mu      sync.RWMutex
	current models.PredictionState
	lastSeq uint64
}

// NewStore starts idle.
func NewStore() *Store {
	return &Store{current: Initial()}
}

// Dispatch assigns the next sequence number and makes it the current request.
func (s *Store) Dispatch(requestID, date string, at time.Time) models.PredictionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeq++
	s.current = Reduce(s.current, Dispatched{Seq: s.lastSeq, RequestID: requestID, Date: date, At: at})
	return s.current
}

// Apply reduces ev into the current state and returns the result.
func (s *Store) Apply(ev Event) models.PredictionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Reduce(s.current, ev)
	return s.current
}

// Snapshot returns the current state.
func (s *Store) Snapshot() models.PredictionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
