package timezone

import "time"

const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// Clock reads "now" in the platform timezone. Booking dates are calendar
// days in that zone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(tz string) *Clock {
	return &Clock{loc: Location(tz), now: time.Now}
}

// Fixed always reports t. Used in tests.
func Fixed(t time.Time, tz string) *Clock {
	return &Clock{loc: Location(tz), now: func() time.Time { return t }}
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Clock) Today() string {
	return c.Now().Format("2006-01-02")
}

func (c *Clock) Location() *time.Location {
	return c.loc
}
