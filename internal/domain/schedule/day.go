package schedule

import (
	"hash/fnv"
	"slices"
	"time"

	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/domain/barber"
	"barbershop-booking/internal/domain/slot"

	"github.com/google/uuid"
)

// Booking is a persisted appointment for the day being derived, joined with the
// owner's display data.
type Booking struct {
	AppointmentID uuid.UUID
	Time          slot.Time
	Status        appointment.Status
	BarberID      int64
	UserName      string
	UserEmail     string
	CreatedAt     time.Time
}

type Policy struct {
	// ReopenCancelled lets a cancelled slot be offered again.
	ReopenCancelled bool
}

type DayInput struct {
	Date     slot.Date
	Now      time.Time // shop-local wall clock
	Catalog  *slot.Catalog
	Roster   []*barber.Barber
	Bookings []Booking
	Policy   Policy
}

type DaySlot struct {
	Time          slot.Time
	Barber        *barber.Barber // nil when the appointment's barber left the roster
	AppointmentID uuid.UUID
	IsBooked      bool
	BookedBy      string
	BookedByEmail string
	IsCancelled   bool
	Available     bool
}

// DeriveDay builds the ordered view of one day. Every persisted appointment
// appears; free catalog times appear only while still upcoming and staffed.
func DeriveDay(in DayInput) []DaySlot {
	if len(in.Roster) == 0 {
		return []DaySlot{}
	}

	roster := make(map[int64]*barber.Barber, len(in.Roster))
	for _, b := range in.Roster {
		roster[b.ID()] = b
	}

	active := make(map[slot.Time]Booking)
	cancelled := make(map[slot.Time]Booking)
	for _, b := range in.Bookings {
		switch b.Status {
		case appointment.StatusBooked:
			active[b.Time] = b
		case appointment.StatusCancelled:
			if prev, ok := cancelled[b.Time]; !ok || b.CreatedAt.After(prev.CreatedAt) {
				cancelled[b.Time] = b
			}
		}
	}

	today := slot.DateOf(in.Now)
	now := slot.TimeOf(in.Now)

	out := make([]DaySlot, 0, in.Catalog.Len()+len(active))
	for _, t := range dayTimes(in.Catalog, active, cancelled) {
		if b, ok := active[t]; ok {
			out = append(out, DaySlot{
				Time:          t,
				Barber:        roster[b.BarberID],
				AppointmentID: b.AppointmentID,
				IsBooked:      true,
				BookedBy:      b.UserName,
				BookedByEmail: b.UserEmail,
			})
			continue
		}

		c, wasCancelled := cancelled[t]
		closed := DaySlot{
			Time:          t,
			Barber:        roster[c.BarberID],
			AppointmentID: c.AppointmentID,
			IsCancelled:   true,
		}
		if wasCancelled && !in.Policy.ReopenCancelled {
			out = append(out, closed)
			continue
		}

		var assigned *barber.Barber
		if in.Catalog.Contains(t) && isUpcoming(in.Date, t, today, now) {
			assigned = AssignBarber(in.Date, t, in.Roster)
		}
		switch {
		case assigned != nil:
			out = append(out, DaySlot{
				Time:        t,
				Barber:      assigned,
				IsCancelled: wasCancelled,
				Available:   true,
			})
		case wasCancelled:
			out = append(out, closed)
		}
	}
	return out
}

// AssignBarber picks the barber shown for a free slot. The choice depends only on
// the date, the time and the set of barbers offering it, so every request for the
// same day renders the same attribution.
func AssignBarber(date slot.Date, t slot.Time, roster []*barber.Barber) *barber.Barber {
	var eligible []*barber.Barber
	for _, b := range roster {
		if b.Offers(t) {
			eligible = append(eligible, b)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	slices.SortFunc(eligible, func(a, b *barber.Barber) int {
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		default:
			return 0
		}
	})

	h := fnv.New32a()
	_, _ = h.Write([]byte(date.Key() + "|" + t.Format24()))
	return eligible[int(h.Sum32()%uint32(len(eligible)))]
}

func isUpcoming(date slot.Date, t slot.Time, today slot.Date, now slot.Time) bool {
	if date.After(today) {
		return true
	}
	return date.Equal(today) && t.After(now)
}

func dayTimes(c *slot.Catalog, active, cancelled map[slot.Time]Booking) []slot.Time {
	times := c.Times()
	seen := make(map[slot.Time]struct{}, len(times))
	for _, t := range times {
		seen[t] = struct{}{}
	}
	for _, m := range []map[slot.Time]Booking{active, cancelled} {
		for t := range m {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				times = append(times, t)
			}
		}
	}
	slices.SortStableFunc(times, func(a, b slot.Time) int { return a.Compare(b) })
	return times
}
