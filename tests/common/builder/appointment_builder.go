//go:build unit || e2e

package builder

import (
	"time"

	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/domain/slot"
	reqdto "barbershop-booking/internal/handler/dto/request"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentBuilder struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	UserName   string
	UserEmail  string
	BarberID   int64
	BarberName string
	Date       string
	TimeSlot   string
	Status     string
	CreatedAt  time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		UserName:   "Alice Smith",
		UserEmail:  "alice@example.com",
		BarberID:   1,
		BarberName: "Ken Tanaka",
		Date:       "2024-06-01",
		TimeSlot:   "09:00 AM",
		Status:     appointment.StatusBooked.String(),
		CreatedAt:  time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (a *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	var cancelledAt *time.Time
	if a.Status == appointment.StatusCancelled.String() {
		at := a.CreatedAt.Add(time.Hour)
		cancelledAt = &at
	}
	return appointment.Reconstruct(
		a.ID, a.UserID, a.BarberID,
		a.date(), a.time(),
		appointment.Status(a.Status),
		a.CreatedAt, a.CreatedAt, cancelledAt,
	)
}

func (a *AppointmentBuilder) BuildInfra() sqlc.Appointments {
	d := a.date()
	return sqlc.Appointments{
		ID:        a.ID,
		UserID:    a.UserID,
		BarberID:  a.BarberID,
		Date:      pgtype.Date{Time: d.UTCMidnight(), Valid: true},
		TimeSlot:  pgtype.Time{Microseconds: a.time().Duration().Microseconds(), Valid: true},
		Status:    a.Status,
		CreatedAt: pgtype.Timestamptz{Time: a.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: a.CreatedAt, Valid: true},
	}
}

func (a *AppointmentBuilder) BuildResult() *commands.AppointmentResult {
	return &commands.AppointmentResult{
		ID:         a.ID,
		Date:       a.Date,
		TimeSlot:   a.time().Format12(),
		BarberID:   a.BarberID,
		BarberName: a.BarberName,
		UserName:   a.UserName,
		UserEmail:  a.UserEmail,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
	}
}

func (a *AppointmentBuilder) BuildReservationView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         a.ID,
		Date:       a.Date,
		TimeSlot:   a.time().Format12(),
		Time24:     a.time().Format24(),
		BarberID:   a.BarberID,
		BarberName: a.BarberName,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
	}
}

func (a *AppointmentBuilder) BuildBookDTO() reqdto.BookAppointmentRequest {
	return reqdto.BookAppointmentRequest{
		Date:     a.Date,
		TimeSlot: a.TimeSlot,
		BarberID: a.BarberID,
	}
}

func (a *AppointmentBuilder) BuildCancelDTO() reqdto.CancelAppointmentRequest {
	return reqdto.CancelAppointmentRequest{
		Date:     a.Date,
		TimeSlot: a.TimeSlot,
	}
}

// Fluent builder methods
func (a *AppointmentBuilder) WithDate(date string) *AppointmentBuilder {
	a.Date = date
	return a
}

func (a *AppointmentBuilder) WithTimeSlot(timeSlot string) *AppointmentBuilder {
	a.TimeSlot = timeSlot
	return a
}

func (a *AppointmentBuilder) WithBarberID(id int64) *AppointmentBuilder {
	a.BarberID = id
	return a
}

func (a *AppointmentBuilder) AsCancelled() *AppointmentBuilder {
	a.Status = appointment.StatusCancelled.String()
	return a
}

func (a *AppointmentBuilder) date() slot.Date {
	d, err := slot.ParseDate(a.Date)
	if err != nil {
		panic(err)
	}
	return d
}

func (a *AppointmentBuilder) time() slot.Time {
	t, err := slot.Parse(a.TimeSlot)
	if err != nil {
		panic(err)
	}
	return t
}
