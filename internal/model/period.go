package model

import (
	"fmt"
	"time"
)

// DateLayout is the canonical day key format.
const DateLayout = "2006-01-02"

// Period is a calendar year-month.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the year-month a timestamp falls in. Dates are always
// interpreted in UTC so a transaction never moves between buckets because of
// the server's local zone.
func PeriodOf(t time.Time) Period {
	u := t.UTC()
	return Period{Year: u.Year(), Month: u.Month()}
}

// ParsePeriod parses a "YYYY-MM" key.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: %w", s, err)
	}
	return PeriodOf(t), nil
}

// Key returns the "YYYY-MM" form used as bucket key.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func (p Period) String() string {
	return p.Key()
}

// Next returns the following month, rolling December into January.
func (p Period) Next() Period {
	return p.Add(1)
}

// Add moves the period n months forward (or back for negative n).
func (p Period) Add(n int) Period {
	idx := p.Year*12 + int(p.Month) - 1 + n
	return Period{Year: idx / 12, Month: time.Month(idx%12 + 1)}
}

// Start returns midnight UTC of the first day of the period.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in the period.
func (p Period) Days() int {
	return p.Start().AddDate(0, 1, -1).Day()
}

// DateKey returns the "YYYY-MM-DD" day key of t in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses "2006-01-02" or RFC3339 (fractional seconds allowed).
// The result keeps the offset it was written with.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse %q as a date or datetime", s)
	}
	return t, nil
}

// CalendarDate returns midnight UTC of the day t falls on in its own
// location, so "2024-01-31T23:30:00-03:00" stays on the 31st.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TruncateDay drops the time-of-day part of t, in UTC.
func TruncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
