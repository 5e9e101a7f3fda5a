package barber

import (
	"errors"

	"barbershop-booking/internal/domain/slot"
)

var ErrInvalidAvailability = errors.New("barber availability contains an invalid time")

// Barber is maintained by an administrative process and read-only here.
type Barber struct {
	id           int64
	name         string
	profileImage string
	availability map[slot.Time]struct{}
}

// Reconstruct builds a barber from stored values. An empty availability list
// means the barber works every catalog slot.
func Reconstruct(id int64, name, profileImage string, availability []string) (*Barber, error) {
	b := &Barber{
		id:           id,
		name:         name,
		profileImage: profileImage,
	}
	if len(availability) == 0 {
		return b, nil
	}

	b.availability = make(map[slot.Time]struct{}, len(availability))
	for _, label := range availability {
		t, err := slot.Parse(label)
		if err != nil {
			return nil, ErrInvalidAvailability
		}
		b.availability[t] = struct{}{}
	}
	return b, nil
}

func (b *Barber) ID() int64            { return b.id }
func (b *Barber) Name() string         { return b.name }
func (b *Barber) ProfileImage() string { return b.profileImage }

func (b *Barber) Offers(t slot.Time) bool {
	if len(b.availability) == 0 {
		return true
	}
	_, ok := b.availability[t]
	return ok
}

// OfferedTimes lists the catalog entries the barber works, in catalog order.
func (b *Barber) OfferedTimes(c *slot.Catalog) []slot.Time {
	var out []slot.Time
	for _, t := range c.Times() {
		if b.Offers(t) {
			out = append(out, t)
		}
	}
	return out
}
