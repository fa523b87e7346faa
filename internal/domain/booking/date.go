package booking

import (
	"regexp"
	"time"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
)

const DateLayout = "2006-01-02"

var hhmm = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseDate validates a YYYY-MM-DD calendar date and returns it normalized.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", httperr.ErrValidation("invalid_date")
	}
	return t.Format(DateLayout), nil
}

// ValidateTimeRange checks two HH:MM values with start < end.
func ValidateTimeRange(start, end string) error {
	if !hhmm.MatchString(start) || !hhmm.MatchString(end) {
		return httperr.ErrValidation("invalid_time")
	}
	// zero-padded HH:MM compares lexically
	if start >= end {
		return httperr.ErrValidation("invalid_time_range")
	}
	return nil
}
