package geopack

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Epoch is the civil UT time used to select the model parameters.
// Day is the day of year (1 = Jan 1). No time zone or leap second handling is done.
type Epoch struct {
	Year, Day, Hour, Minute, Second int
}

// NewEpoch returns the Epoch of the provided time, converted to UTC.
func NewEpoch(t time.Time) Epoch {
	t = t.UTC()
	y, m, d := t.Date()
	return Epoch{y, julian.DayOfYearGregorian(y, int(m), d), t.Hour(), t.Minute(), t.Second()}
}

// Validate returns a DomainError if any field is out of range.
func (e Epoch) Validate() error {
	days := 365
	if julian.LeapYearGregorian(e.Year) {
		days = 366
	}
	switch {
	case e.Day < 1 || e.Day > days:
		return domainErr("epoch", "day %d outside 1..%d for year %d", e.Day, days, e.Year)
	case e.Hour < 0 || e.Hour > 23:
		return domainErr("epoch", "hour %d outside 0..23", e.Hour)
	case e.Minute < 0 || e.Minute > 59:
		return domainErr("epoch", "minute %d outside 0..59", e.Minute)
	case e.Second < 0 || e.Second > 60:
		return domainErr("epoch", "second %d outside 0..60", e.Second)
	}
	return nil
}

// Time returns the UTC time.Time of this epoch.
func (e Epoch) Time() time.Time {
	return time.Date(e.Year, time.January, 1, e.Hour, e.Minute, e.Second, 0, time.UTC).AddDate(0, 0, e.Day-1)
}

// JD returns the Julian date of this epoch.
func (e Epoch) JD() float64 {
	return julian.TimeToJD(e.Time())
}

// daySeconds returns the number of seconds elapsed since 00:00 UT.
func (e Epoch) daySeconds() int {
	return e.Hour*3600 + e.Minute*60 + e.Second
}

func (e Epoch) String() string {
	return fmt.Sprintf("%04d-%03d %02d:%02d:%02d", e.Year, e.Day, e.Hour, e.Minute, e.Second)
}
