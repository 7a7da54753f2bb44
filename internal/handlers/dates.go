package handlers

import (
	"errors"
	"fmt"
	"time"

	"temperature_prediction/internal/models"
)

var (
	errDateFormat   = errors.New("date must be formatted as YYYY-MM-DD")
	errDateTooEarly = errors.New("date must be tomorrow or later")
)

// DateRules are the bounds the date picker offers: tomorrow up to MaxDaysAhead days out,
// counted in Location.
type DateRules struct {
	MaxDaysAhead int
	Location     *time.Location
	Now          func() time.Time
}

func (r DateRules) today() time.Time {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	loc := r.Location
	if loc == nil {
		loc = time.UTC
	}
	n := now().In(loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// Parse reads a YYYY-MM-DD date and checks it against the picker bounds.
// The returned time is midnight UTC of that date.
func (r DateRules) Parse(s string) (time.Time, error) {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, errDateFormat
	}

	today := r.today()
	if d.Before(today.AddDate(0, 0, 1)) {
		return time.Time{}, errDateTooEarly
	}
	if r.MaxDaysAhead > 0 {
		last := today.AddDate(0, 0, r.MaxDaysAhead)
		if d.After(last) {
			return time.Time{}, fmt.Errorf("date must be on or before %s", last.Format(models.DateLayout))
		}
	}
	return d, nil
}
