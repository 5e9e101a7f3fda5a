package appointment

import (
	"time"

	"barbershop-booking/internal/domain/slot"

	"github.com/google/uuid"
)

// Appointment moves only from booked to cancelled and is never deleted.
type Appointment struct {
	id          uuid.UUID
	userID      uuid.UUID
	barberID    int64
	date        slot.Date
	time        slot.Time
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
	cancelledAt *time.Time
}

func New(userID uuid.UUID, barberID int64, date slot.Date, t slot.Time, now time.Time) *Appointment {
	return &Appointment{
		id:        uuid.New(),
		userID:    userID,
		barberID:  barberID,
		date:      date,
		time:      t,
		status:    StatusBooked,
		createdAt: now,
		updatedAt: now,
	}
}

func Reconstruct(
	id, userID uuid.UUID,
	barberID int64,
	date slot.Date,
	t slot.Time,
	status Status,
	createdAt, updatedAt time.Time,
	cancelledAt *time.Time,
) *Appointment {
	return &Appointment{
		id:          id,
		userID:      userID,
		barberID:    barberID,
		date:        date,
		time:        t,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		cancelledAt: cancelledAt,
	}
}

func (a *Appointment) Cancel(now time.Time) error {
	if a.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	a.status = StatusCancelled
	a.updatedAt = now
	a.cancelledAt = &now
	return nil
}

func (a *Appointment) ID() uuid.UUID           { return a.id }
func (a *Appointment) UserID() uuid.UUID       { return a.userID }
func (a *Appointment) BarberID() int64         { return a.barberID }
func (a *Appointment) Date() slot.Date         { return a.date }
func (a *Appointment) Time() slot.Time         { return a.time }
func (a *Appointment) Status() Status          { return a.status }
func (a *Appointment) IsBooked() bool          { return a.status == StatusBooked }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time    { return a.updatedAt }
func (a *Appointment) CancelledAt() *time.Time { return a.cancelledAt }
