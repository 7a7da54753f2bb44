package models

import "time"

// Phase is the lifecycle stage of the screen.
type Phase string

const (
	PhaseIdle    Phase = "IDLE"
	PhaseLoading Phase = "LOADING"
	PhaseSettled Phase = "SETTLED"
)

// PredictionState is an immutable snapshot of the prediction screen.
// Only state.Reduce produces new values.
type PredictionState struct {
	Phase     Phase            `json:"phase"`
	Seq       uint64           `json:"seq"` // sequence of the current request, 0 before any dispatch
	RequestID string           `json:"request_id,omitempty"`
	Date      string           `json:"date,omitempty"` // YYYY-MM-DD of the current request
	Result    PredictionResult `json:"result"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Loading reports whether the current request is in flight.
func (s PredictionState) Loading() bool {
	return s.Phase == PhaseLoading
}

// View is what the screen renders for a given state.
type View struct {
	Phase        Phase  `json:"phase"`
	Loading      bool   `json:"loading"`
	SelectedDate string `json:"selected_date,omitempty"`
	Temperature  string `json:"temperature,omitempty"`
	Alert        string `json:"alert,omitempty"`
}

// View maps the state to its renderable form. Settled values are never shown while loading.
func (s PredictionState) View() View {
	v := View{Phase: s.Phase, Loading: s.Loading()}
	if s.Phase != PhaseSettled {
		return v
	}
	switch {
	case s.Result.IsSuccess() && s.Result.TemperatureC != nil:
		if d, err := time.Parse(DateLayout, s.Date); err == nil {
			v.SelectedDate = d.Format(DisplayDateLayout)
		} else {
			v.SelectedDate = s.Date
		}
		v.Temperature = FormatCelsius(*s.Result.TemperatureC)
	case s.Result.IsFailure():
		v.Alert = s.Result.Reason
	}
	return v
}
