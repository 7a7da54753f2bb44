package models

import (
	"strconv"
	"time"
)

// DateLayout is the wire format of a selected date.
const DateLayout = "2006-01-02"

// DisplayDateLayout renders the selected date on the result card.
const DisplayDateLayout = "1/2/2006"

// Outcome tags a PredictionResult.
type Outcome string

const (
	OutcomePending Outcome = "PENDING"
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailure Outcome = "FAILURE"
)

// PredictionRequest is the body posted to the prediction endpoint.
type PredictionRequest struct {
	Date string `json:"date"`
}

// NewPredictionRequest keeps only the UTC calendar date of d.
func NewPredictionRequest(d time.Time) PredictionRequest {
	return PredictionRequest{Date: FormatDate(d)}
}

// FormatDate renders the UTC date portion of d as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.UTC().Format(DateLayout)
}

// PredictionResult is Pending, Success(temperature) or Failure(reason).
type PredictionResult struct {
	Outcome      Outcome  `json:"outcome"`
	TemperatureC *float64 `json:"temperature_c,omitempty"` // °C, set on SUCCESS only
	Reason       string   `json:"reason,omitempty"`        // user-facing, set on FAILURE only
	ErrorKind    string   `json:"error_kind,omitempty"`    // TRANSPORT | PROTOCOL | DECODE
}

func Pending() PredictionResult {
	return PredictionResult{Outcome: OutcomePending}
}

func Success(tempC float64) PredictionResult {
	return PredictionResult{Outcome: OutcomeSuccess, TemperatureC: &tempC}
}

func Failure(reason, kind string) PredictionResult {
	return PredictionResult{Outcome: OutcomeFailure, Reason: reason, ErrorKind: kind}
}

func (r PredictionResult) IsPending() bool { return r.Outcome == "" || r.Outcome == OutcomePending }
func (r PredictionResult) IsSuccess() bool { return r.Outcome == OutcomeSuccess }
func (r PredictionResult) IsFailure() bool { return r.Outcome == OutcomeFailure }

// FormatCelsius prints t the way the result card shows it, e.g. "18.5°C".
func FormatCelsius(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64) + "°C"
}
