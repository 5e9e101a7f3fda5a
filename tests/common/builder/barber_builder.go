//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"barbershop-booking/internal/domain/barber"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

type BarberBuilder struct {
	ID           int64
	Name         string
	ProfileImage string
	Availability []string
}

func NewBarberBuilder() *BarberBuilder {
	return &BarberBuilder{
		ID:           1,
		Name:         "Ken Tanaka",
		ProfileImage: "https://cdn.example.com/barbers/ken.png",
	}
}

func (b *BarberBuilder) With(mutate func(*BarberBuilder)) *BarberBuilder {
	mutate(b)
	return b
}

func (b *BarberBuilder) BuildDomain() *barber.Barber {
	entity, err := barber.Reconstruct(b.ID, b.Name, b.ProfileImage, b.Availability)
	if err != nil {
		panic(err)
	}
	return entity
}

func (b *BarberBuilder) BuildInfra() sqlc.Barbers {
	availability := b.Availability
	if availability == nil {
		availability = []string{}
	}
	raw, _ := json.Marshal(availability)
	now := time.Now()
	return sqlc.Barbers{
		ID:             b.ID,
		Name:           b.Name,
		ProfilePicture: b.ProfileImage,
		Availability:   raw,
		CreatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (b *BarberBuilder) WithID(id int64) *BarberBuilder {
	b.ID = id
	return b
}

func (b *BarberBuilder) WithName(name string) *BarberBuilder {
	b.Name = name
	return b
}

func (b *BarberBuilder) WithAvailability(labels ...string) *BarberBuilder {
	b.Availability = labels
	return b
}
