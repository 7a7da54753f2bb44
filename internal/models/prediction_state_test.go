package models

import "testing"

func TestFormatCelsius(t *testing.T) {
	cases := map[float64]string{
		18.5:   "18.5°C",
		20:     "20°C",
		-3.25:  "-3.25°C",
		0.1:    "0.1°C",
		21.125: "21.125°C",
	}
	for in, want := range cases {
		if got := FormatCelsius(in); got != want {
			t.Errorf("FormatCelsius(%v)=%q, want %q", in, got, want)
		}
	}
}

func TestPredictionState_View(t *testing.T) {
	cases := []struct {
		name string
		st   PredictionState
		want View
	}{
		{"idle", PredictionState{Phase: PhaseIdle, Result: Pending()}, View{Phase: PhaseIdle}},
		{"loading", PredictionState{Phase: PhaseLoading, Date: "2025-03-10", Result: Pending()}, View{Phase: PhaseLoading, Loading: true}},
		{"success", PredictionState{Phase: PhaseSettled, Date: "2025-03-10", Result: Success(18.5)},
			View{Phase: PhaseSettled, SelectedDate: "3/10/2025", Temperature: "18.5°C"}},
		{"failure", PredictionState{Phase: PhaseSettled, Date: "2025-03-11", Result: Failure("try later", "PROTOCOL")},
			View{Phase: PhaseSettled, Alert: "try later"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.st.View(); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
