package state

import (
	"testing"
	"time"

	"temperature_prediction/internal/models"
)

var t0 = time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)

func TestReduce_HappyPath(t *testing.T) {
	s := Initial()
	if s.Phase != models.PhaseIdle || s.Loading() {
		t.Fatalf("initial state: %+v", s)
	}

	s = Reduce(s, Dispatched{Seq: 1, Date: "2025-03-10", At: t0})
	if !s.Loading() || s.Seq != 1 || !s.Result.IsPending() {
		t.Fatalf("after dispatch: %+v", s)
	}

	s = Reduce(s, Settled{Seq: 1, Result: models.Success(18.5), At: t0.Add(time.Second)})
	if s.Loading() || s.Phase != models.PhaseSettled || *s.Result.TemperatureC != 18.5 {
		t.Fatalf("after settle: %+v", s)
	}
	if s.Date != "2025-03-10" {
		t.Fatalf("date lost: %+v", s)
	}
}

func TestReduce_NewDispatchHidesPreviousResult(t *testing.T) {
	s := Reduce(Initial(), Dispatched{Seq: 1, Date: "2025-03-10", At: t0})
	s = Reduce(s, Settled{Seq: 1, Result: models.Success(18.5), At: t0})

	s = Reduce(s, Dispatched{Seq: 2, Date: "2025-03-11", At: t0})
	if !s.Loading() || s.Result.IsSuccess() {
		t.Fatalf("stale success visible while loading: %+v", s)
	}
	if v := s.View(); v.Temperature != "" || !v.Loading {
		t.Fatalf("view while loading: %+v", v)
	}
}

func TestReduce_IgnoresStaleSettlement(t *testing.T) {
	s := Reduce(Initial(), Dispatched{Seq: 1, Date: "2025-03-10", At: t0})
	s = Reduce(s, Dispatched{Seq: 2, Date: "2025-03-11", At: t0})

	// the first request answers after the second was dispatched
	s = Reduce(s, Settled{Seq: 1, Result: models.Success(10), At: t0})
	if !s.Loading() || s.Seq != 2 {
		t.Fatalf("stale settlement applied: %+v", s)
	}

	s = Reduce(s, Settled{Seq: 2, Result: models.Success(20), At: t0})
	if s.Phase != models.PhaseSettled || *s.Result.TemperatureC != 20 || s.Date != "2025-03-11" {
		t.Fatalf("latest settlement not applied: %+v", s)
	}

	// a late answer for seq 1 after seq 2 settled changes nothing
	after := Reduce(s, Settled{Seq: 1, Result: models.Failure("x", "DECODE"), At: t0})
	if after.Result.IsFailure() {
		t.Fatalf("late stale failure overwrote result: %+v", after)
	}
}

func TestReduce_IgnoresInvalidEvents(t *testing.T) {
	s := Reduce(Initial(), Dispatched{Seq: 5, Date: "2025-03-10", At: t0})

	if got := Reduce(s, Dispatched{Seq: 5, Date: "2025-03-12", At: t0}); got.Date != "2025-03-10" {
		t.Fatalf("non-advancing dispatch applied: %+v", got)
	}
	if got := Reduce(s, Settled{Seq: 5, Result: models.Pending(), At: t0}); !got.Loading() {
		t.Fatalf("pending settlement applied: %+v", got)
	}
	if got := Reduce(Initial(), Settled{Seq: 0, Result: models.Success(1), At: t0}); got.Phase != models.PhaseIdle {
		t.Fatalf("settlement without dispatch applied: %+v", got)
	}
}

func TestReduce_ResetKeepsSequence(t *testing.T) {
	s := Reduce(Initial(), Dispatched{Seq: 3, Date: "2025-03-10", At: t0})
	s = Reduce(s, Reset{At: t0})
	if s.Phase != models.PhaseIdle || s.Seq != 3 || s.Date != "" {
		t.Fatalf("after reset: %+v", s)
	}
	if got := Reduce(s, Settled{Seq: 3, Result: models.Success(1), At: t0}); got.Phase != models.PhaseIdle {
		t.Fatalf("in-flight answer after reset applied: %+v", got)
	}
}

func TestReduce_LoadingIffPhaseLoading(t *testing.T) {
	events := []Event{
		Dispatched{Seq: 1, Date: "2025-03-10", At: t0},
		Settled{Seq: 1, Result: models.Failure("x", "TRANSPORT"), At: t0},
		Dispatched{Seq: 2, Date: "2025-03-10", At: t0},
		Reset{At: t0},
		Dispatched{Seq: 3, Date: "2025-03-10", At: t0},
		Settled{Seq: 3, Result: models.Success(2), At: t0},
	}
	s := Initial()
	for i, ev := range events {
		s = Reduce(s, ev)
		settledValue := !s.Result.IsPending()
		if s.Loading() && settledValue {
			t.Fatalf("step %d: loading with a settled value: %+v", i, s)
		}
		if s.Phase == models.PhaseSettled && !settledValue {
			t.Fatalf("step %d: settled without a value: %+v", i, s)
		}
	}
}

func TestStore_DispatchIsMonotonic(t *testing.T) {
	st := NewStore()
	a := st.Dispatch("a", "2025-03-10", t0)
	b := st.Dispatch("b", "2025-03-11", t0)
	if a.Seq != 1 || b.Seq != 2 {
		t.Fatalf("seqs %d, %d", a.Seq, b.Seq)
	}
	if snap := st.Snapshot(); snap.RequestID != "b" || !snap.Loading() {
		t.Fatalf("snapshot: %+v", snap)
	}
	st.Apply(Reset{At: t0})
	if c := st.Dispatch("c", "2025-03-12", t0); c.Seq != 3 {
		t.Fatalf("seq after reset=%d", c.Seq)
	}
}
