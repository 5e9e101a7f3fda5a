// Mirrors sqlc v1.29.0 output.
// Run `sqlc generate` in internal/infra/sqlc after changing the queries.

package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentEvents struct {
	ID            int64
	AppointmentID uuid.UUID
	EventType     string
	Payload       []byte
	CreatedAt     pgtype.Timestamptz
	PublishedAt   pgtype.Timestamptz
}

type Appointments struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	BarberID    int64
	Date        pgtype.Date
	TimeSlot    pgtype.Time
	Status      string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
	CancelledAt pgtype.Timestamptz
}

type Barbers struct {
	ID             int64
	Name           string
	ProfilePicture string
	Availability   []byte
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type Users struct {
	ID         uuid.UUID
	ExternalID pgtype.Text
	Name       string
	Email      string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

type WebhookDeliveries struct {
	DeliveryID string
	EventType  string
	ReceivedAt pgtype.Timestamptz
}
