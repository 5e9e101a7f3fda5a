package slot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var (
	clock12Regex = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)
	clock24Regex = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

// Time is a wall-clock time of day with minute precision.
type Time struct {
	minutes int
}

func NewTime(hour, minute int) (Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Time{}, ErrInvalidTime
	}
	return Time{minutes: hour*60 + minute}, nil
}

func MustTime(hour, minute int) Time {
	t, err := NewTime(hour, minute)
	if err != nil {
		panic(fmt.Sprintf("slot: invalid time %02d:%02d", hour, minute))
	}
	return t
}

// Parse12 accepts "09:00 AM" style values; the hour may be given with one digit.
func Parse12(s string) (Time, error) {
	m := clock12Regex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Time{}, ErrInvalidTime
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 {
		return Time{}, ErrInvalidTime
	}

	hour %= 12
	if strings.EqualFold(m[3], "PM") {
		hour += 12
	}
	return NewTime(hour, minute)
}

// Parse24 accepts "14:30" and the database form "14:30:00". Seconds must be zero.
func Parse24(s string) (Time, error) {
	m := clock24Regex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Time{}, ErrInvalidTime
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if m[3] != "" && m[3] != "00" {
		return Time{}, ErrInvalidTime
	}
	return NewTime(hour, minute)
}

// Parse accepts either clock notation.
func Parse(s string) (Time, error) {
	if t, err := Parse12(s); err == nil {
		return t, nil
	}
	return Parse24(s)
}

// TimeOf returns the wall-clock time of t in its own location, truncated to the minute.
func TimeOf(t time.Time) Time {
	return Time{minutes: t.Hour()*60 + t.Minute()}
}

func FromMinutes(minutes int) (Time, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return Time{}, ErrInvalidTime
	}
	return Time{minutes: minutes}, nil
}

func (t Time) Hour() int      { return t.minutes / 60 }
func (t Time) Minute() int    { return t.minutes % 60 }
func (t Time) Minutes() int   { return t.minutes }
func (t Time) String() string { return t.Format12() }

func (t Time) Format12() string {
	suffix := "AM"
	if t.Hour() >= 12 {
		suffix = "PM"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour, t.Minute(), suffix)
}

func (t Time) Format24() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Format24Seconds is the representation stored in TIME columns.
func (t Time) Format24Seconds() string {
	return t.Format24() + ":00"
}

func (t Time) Before(o Time) bool { return t.minutes < o.minutes }
func (t Time) After(o Time) bool  { return t.minutes > o.minutes }

func (t Time) Compare(o Time) int {
	switch {
	case t.minutes < o.minutes:
		return -1
	case t.minutes > o.minutes:
		return 1
	default:
		return 0
	}
}

// Duration is the offset from midnight.
func (t Time) Duration() time.Duration {
	return time.Duration(t.minutes) * time.Minute
}
