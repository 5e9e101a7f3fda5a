package shared

import (
	"context"
	"time"

	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/domain/barber"
	"barbershop-booking/internal/domain/slot"
	"barbershop-booking/internal/domain/user"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Appointments() AppointmentRepository
	Events() EventRepository
	Deliveries() DeliveryRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	BarberByID(ctx context.Context, id int64) (*barber.Barber, error)
}

type UserRepository interface {
	// EnsureByEmail returns the stored user for u's email, inserting u when absent.
	EnsureByEmail(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error)
	// SyncExternal upserts by email and links the external id; created reports an insert.
	SyncExternal(ctx context.Context, tx sqlc.DBTX, u *user.User) (stored *user.User, created bool, err error)
}

// SlotClaim is an appointment at a locked (date, time) with its owner's contact data.
type SlotClaim struct {
	Appointment *appointment.Appointment
	OwnerName   string
	OwnerEmail  string
	BarberName  string
}

type AppointmentRepository interface {
	// Insert reports false when the slot is already held. With blockCancelled
	// the caller must hold LockSlot for the same slot in this transaction.
	Insert(ctx context.Context, tx sqlc.DBTX, appt *appointment.Appointment, blockCancelled bool) (bool, error)
	LockSlot(ctx context.Context, tx sqlc.DBTX, date slot.Date, t slot.Time) ([]SlotClaim, error)
	// MarkCancelled reports false when the row was no longer booked.
	MarkCancelled(ctx context.Context, tx sqlc.DBTX, appt *appointment.Appointment) (bool, error)
}

type OutboxEvent struct {
	AppointmentID uuid.UUID
	Type          string
	Payload       []byte
	CreatedAt     time.Time
}

type EventRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, e OutboxEvent) error
	PurgePublished(ctx context.Context, tx sqlc.DBTX, before time.Time) (int64, error)
}

type DeliveryRepository interface {
	// Record reports false when the delivery id was seen before.
	Record(ctx context.Context, tx sqlc.DBTX, deliveryID, eventType string, at time.Time) (bool, error)
	Purge(ctx context.Context, tx sqlc.DBTX, before time.Time) (int64, error)
}
