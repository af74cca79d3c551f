package kernel

import (
	"fmt"
	"time"

	"deliveryscheduler/internal/pkg/errs"
)

// DateLayout is the wire and storage format of a calendar date.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed is returned when validating a zero Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date must be created via NewDate, ParseDate, or DateFromTime")

// Date is a calendar day without time of day or zone. Delivery capacity is
// accounted per Date, so two instants on the same local day map to the same Date.
type Date struct {
	t time.Time
}

// NewDate builds a Date. Out-of-range days are rejected rather than normalized,
// so NewDate(2025, time.February, 30) fails.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, errs.NewValueIsOutOfRangeError("month", int(month), 1, 12)
	}
	if maxDay := DaysIn(year, month); day < 1 || day > maxDay {
		return Date{}, errs.NewValueIsOutOfRangeError("day", day, 1, maxDay)
	}
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}, nil
}

// ParseDate parses a "2006-01-02" formatted string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not YYYY-MM-DD", s))
	}
	return Date{t: t}, nil
}

// DateFromTime truncates t to its calendar day in t's own location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DaysIn returns the number of days of month in year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Day() int {
	return d.t.Day()
}

func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// IsWeekend is true for Saturday and Sunday.
func (d Date) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
