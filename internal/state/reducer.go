package state

import (
	"time"

	"temperature_prediction/internal/models"
)

// Event is anything Reduce understands.
type Event interface {
	isEvent()
}

// Dispatched marks a new request as the current one.
type Dispatched struct {
	Seq       uint64
	RequestID string
	Date      string // YYYY-MM-DD
	At        time.Time
}

// Settled carries the outcome of request Seq.
type Settled struct {
	Seq    uint64
	Result models.PredictionResult
	At     time.Time
}

// Reset returns the screen to idle.
type Reset struct {
	At time.Time
}

func (Dispatched) isEvent() {}
func (Settled) isEvent()    {}
func (Reset) isEvent()      {}

// Initial is the state before anything was selected.
func Initial() models.PredictionState {
	return models.PredictionState{Phase: models.PhaseIdle, Result: models.Pending()}
}

// Reduce is the only transition function: Idle -> Loading -> Settled.
// A Settled event whose Seq is not the latest dispatched one is dropped, as is a
// Dispatched event that does not advance the sequence.
func Reduce(prev models.PredictionState, ev Event) models.PredictionState {
	switch e := ev.(type) {
	case Dispatched:
		if e.Seq <= prev.Seq {
			return prev
		}
		return models.PredictionState{
			Phase:     models.PhaseLoading,
			Seq:       e.Seq,
			RequestID: e.RequestID,
			Date:      e.Date,
			Result:    models.Pending(),
			UpdatedAt: e.At.UTC(),
		}
	case Settled:
		if prev.Phase != models.PhaseLoading || e.Seq != prev.Seq || e.Result.IsPending() {
			return prev
		}
		next := prev
		next.Phase = models.PhaseSettled
		next.Result = e.Result
		next.UpdatedAt = e.At.UTC()
		return next
	case Reset:
		next := Initial()
		// keep the counter so late responses stay stale
		next.Seq = prev.Seq
		next.UpdatedAt = e.At.UTC()
		return next
	default:
		return prev
	}
}
