package prediction

import (
	"errors"
	"fmt"
)

// UserMessage is shown for every failed prediction, whatever the cause.
const UserMessage = "could not obtain the prediction, try again later"

// Kind classifies why a prediction could not be obtained.
type Kind string

const (
	KindTransport Kind = "TRANSPORT" // network unreachable, DNS failure, connection reset
	KindProtocol  Kind = "PROTOCOL"  // non-2xx HTTP status
	KindDecode    Kind = "DECODE"    // body not JSON or temperature missing / not a number
)

// Error is returned by Predict for every failure.
type Error struct {
	Kind       Kind
	StatusCode int // set for KindProtocol
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == KindProtocol {
		return fmt.Sprintf("prediction %s: status %d", e.Kind, e.StatusCode)
	}
	if e.Err == nil {
		return fmt.Sprintf("prediction %s", e.Kind)
	}
	return fmt.Sprintf("prediction %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by kind, so errors.Is(err, ErrDecode) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.StatusCode == 0 && t.Err == nil
}

// Sentinels for errors.Is.
var (
	ErrTransport = &Error{Kind: KindTransport}
	ErrProtocol  = &Error{Kind: KindProtocol}
	ErrDecode    = &Error{Kind: KindDecode}
)

// KindOf returns the kind of err, or "" if err is not a prediction error.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

var errMissingTemperature = errors.New("response has no numeric temperature field")
