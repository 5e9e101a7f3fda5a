package slot

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component or location.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{year: year, month: month, day: day}
	if !d.valid() {
		return Date{}, ErrInvalidDate
	}
	return d, nil
}

func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic("slot: invalid date")
	}
	return d
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// DateOf takes the calendar day shown on t's own wall clock. The result never
// depends on the process-local zone, so a time built in Asia/Tokyo and one built in
// America/Los_Angeles with the same wall-clock date produce the same key.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) valid() bool {
	if d.month < time.January || d.month > time.December || d.day < 1 {
		return false
	}
	norm := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
	y, m, day := norm.Date()
	return y == d.year && m == d.month && day == d.day
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }
func (d Date) IsZero() bool      { return d == Date{} }
func (d Date) Weekday() time.Weekday {
	return d.midnight(time.UTC).Weekday()
}

// Key is the canonical yyyy-MM-dd bucket used for appointments.
func (d Date) Key() string {
	return d.midnight(time.UTC).Format(dateLayout)
}

func (d Date) String() string { return d.Key() }

func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d == o }

func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight(time.UTC).AddDate(0, 0, n))
}

// At combines the date with a time of day in loc.
func (d Date) At(t Time, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, t.Hour(), t.Minute(), 0, 0, loc)
}

// UTCMidnight is the representation stored in DATE columns.
func (d Date) UTCMidnight() time.Time {
	return d.midnight(time.UTC)
}

func (d Date) midnight(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
