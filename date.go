package tdameritrade

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without time or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date, normalizing out-of-range values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q: %w", ErrInvalidQuery, s, err)
	}
	return DateOf(t), nil
}

// String returns the zero-padded YYYY-MM-DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// valid reports whether d names a real calendar date. The zero Date and
// literals such as {2024, 13, 40} are not valid.
func (d Date) valid() bool {
	return d.Year >= 1 && d.Year <= 9999 && NewDate(d.Year, d.Month, d.Day) == d
}

// formatDate returns nil for an absent date so the parameter is omitted.
func formatDate(d *Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
