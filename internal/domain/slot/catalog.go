package slot

import (
	"fmt"
	"strings"
)

// Granularity of catalog entries in minutes.
const Granularity = 30

// DefaultLabels is the shop's standard day: 08:00 AM to 05:00 PM with the
// 12:30 PM lunch break left out.
var DefaultLabels = []string{
	"08:00 AM", "08:30 AM", "09:00 AM", "09:30 AM",
	"10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM",
	"01:00 PM", "01:30 PM", "02:00 PM", "02:30 PM",
	"03:00 PM", "03:30 PM", "04:00 PM", "04:30 PM",
	"05:00 PM",
}

// Catalog is the ordered set of offerable times in a day.
type Catalog struct {
	times    []Time
	position map[Time]int
}

func NewCatalog(labels []string) (*Catalog, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidCatalog)
	}

	c := &Catalog{
		times:    make([]Time, 0, len(labels)),
		position: make(map[Time]int, len(labels)),
	}
	for i, label := range labels {
		t, err := Parse12(label)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q is not a 12-hour time", ErrInvalidCatalog, label)
		}
		if t.Minute()%Granularity != 0 {
			return nil, fmt.Errorf("%w: entry %q is off the %d minute grid", ErrInvalidCatalog, label, Granularity)
		}
		if i > 0 && !c.times[i-1].Before(t) {
			return nil, fmt.Errorf("%w: entry %q is not after %q", ErrInvalidCatalog, label, c.times[i-1])
		}
		c.position[t] = i
		c.times = append(c.times, t)
	}
	return c, nil
}

func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultLabels)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Times() []Time {
	out := make([]Time, len(c.times))
	copy(out, c.times)
	return out
}

func (c *Catalog) Labels() []string {
	out := make([]string, len(c.times))
	for i, t := range c.times {
		out[i] = t.Format12()
	}
	return out
}

func (c *Catalog) Len() int { return len(c.times) }

func (c *Catalog) Contains(t Time) bool {
	_, ok := c.position[t]
	return ok
}

func (c *Catalog) Position(t Time) (int, bool) {
	i, ok := c.position[t]
	return i, ok
}

// Resolve parses a 12-hour or 24-hour value and requires catalog membership.
func (c *Catalog) Resolve(s string) (Time, error) {
	t, err := Parse(s)
	if err != nil {
		return Time{}, err
	}
	if !c.Contains(t) {
		return Time{}, ErrUnknownTime
	}
	return t, nil
}

// To24 converts a catalog label to its 24-hour form.
func (c *Catalog) To24(label string) (string, error) {
	t, err := Parse12(label)
	if err != nil {
		return "", err
	}
	if !c.Contains(t) {
		return "", ErrUnknownTime
	}
	return t.Format24(), nil
}

// To12 converts a 24-hour value back to its catalog label.
func (c *Catalog) To12(value string) (string, error) {
	t, err := Parse24(value)
	if err != nil {
		return "", err
	}
	if !c.Contains(t) {
		return "", ErrUnknownTime
	}
	return t.Format12(), nil
}

func (c *Catalog) String() string {
	return strings.Join(c.Labels(), ",")
}
