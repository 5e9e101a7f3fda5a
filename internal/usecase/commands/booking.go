package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/domain/barber"
	"barbershop-booking/internal/domain/slot"
	"barbershop-booking/internal/domain/user"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("barbershop-booking/usecase/commands")

type BookRequest struct {
	Date     string
	TimeSlot string
	BarberID int64
}

type CancelRequest struct {
	Date     string
	TimeSlot string
}

type AppointmentResult struct {
	ID          uuid.UUID
	Date        string
	TimeSlot    string
	BarberID    int64
	BarberName  string
	UserName    string
	UserEmail   string
	Status      string
	CreatedAt   time.Time
	CancelledAt *time.Time
}

// Outbox payload published for both booked and cancelled events.
type appointmentEvent struct {
	AppointmentID uuid.UUID  `json:"appointmentId"`
	Date          string     `json:"date"`
	TimeSlot      string     `json:"timeSlot"`
	BarberID      int64      `json:"barberId"`
	UserEmail     string     `json:"userEmail"`
	Status        string     `json:"status"`
	OccurredAt    time.Time  `json:"occurredAt"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
}

type BookingCommands interface {
	Book(ctx context.Context, req BookRequest, caller user.Identity) (*AppointmentResult, error)
	Cancel(ctx context.Context, req CancelRequest, caller user.Identity) (*AppointmentResult, error)
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	shop  shared.ShopSettings
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, shop shared.ShopSettings, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, shop: shop, clock: clk}
}

func (uc *bookingUseCaseImpl) Book(ctx context.Context, req BookRequest, caller user.Identity) (_ *AppointmentResult, err error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.Book")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(
		attribute.String("appointment.date", req.Date),
		attribute.String("appointment.time_slot", req.TimeSlot),
		attribute.Int64("barber.id", req.BarberID),
	)

	date, err := slot.ParseDate(req.Date)
	if err != nil {
		return nil, invalid(err, ErrInvalidDate)
	}
	t, err := uc.shop.Catalog.Resolve(req.TimeSlot)
	if err != nil {
		return nil, invalid(err, ErrUnknownTimeSlot)
	}
	email, err := user.NewEmail(caller.Email)
	if err != nil {
		return nil, invalid(err, ErrInvalidIdentity)
	}
	name := user.NameOrDefault(caller.Name, email)

	today, now := uc.shop.Today(uc.clock.Now())
	if date.Before(today) {
		return nil, invalid(nil, ErrDateInPast)
	}
	if date.Equal(today) && !t.After(slot.TimeOf(now)) {
		return nil, invalid(nil, ErrSlotElapsed)
	}

	b, err := uc.barber(ctx, req.BarberID)
	if err != nil {
		return nil, err
	}
	if !b.Offers(t) {
		return nil, invalid(nil, ErrBarberUnavailable)
	}

	var result *AppointmentResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, derr := tx.Users().EnsureByEmail(ctx, tx.DB(), user.NewUser(name, email, now))
		if derr != nil {
			return derr
		}

		// A cancellation committing between our snapshot and the insert would
		// otherwise leave the slot open; the row lock orders us after it.
		blockCancelled := !uc.shop.Policy.ReopenCancelled
		if blockCancelled {
			if _, derr = tx.Appointments().LockSlot(ctx, tx.DB(), date, t); derr != nil {
				return derr
			}
		}

		appt := appointment.New(owner.ID(), b.ID(), date, t, now)
		inserted, derr := tx.Appointments().Insert(ctx, tx.DB(), appt, blockCancelled)
		if derr != nil {
			return derr
		}
		if !inserted {
			return classified(ErrSlotTaken, errs.ErrSlotUnavailable)
		}

		if derr = appendEvent(ctx, tx, appointment.EventBooked, appt, email, now); derr != nil {
			return derr
		}
		result = toResult(appt, b.Name(), owner.Name().Value(), email.Value())
		return nil
	})
	if err != nil {
		return nil, errs.OrUnavailable(err)
	}

	slog.InfoContext(ctx, "appointment booked",
		"appointment_id", result.ID.String(),
		"date", result.Date,
		"time_slot", result.TimeSlot,
		"barber_id", result.BarberID)
	return result, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, req CancelRequest, caller user.Identity) (_ *AppointmentResult, err error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.Cancel")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(
		attribute.String("appointment.date", req.Date),
		attribute.String("appointment.time_slot", req.TimeSlot),
	)

	date, err := slot.ParseDate(req.Date)
	if err != nil {
		return nil, invalid(err, ErrInvalidDate)
	}
	// Appointments booked under an older catalog stay cancellable.
	t, err := slot.Parse(req.TimeSlot)
	if err != nil {
		return nil, invalid(err, ErrInvalidTimeSlot)
	}
	email, err := user.NewEmail(caller.Email)
	if err != nil {
		return nil, invalid(err, ErrInvalidIdentity)
	}
	now := uc.clock.Now()

	var result *AppointmentResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claims, derr := tx.Appointments().LockSlot(ctx, tx.DB(), date, t)
		if derr != nil {
			return derr
		}

		var mineCancelled, othersCancelled bool
		for _, c := range claims {
			mine := c.OwnerEmail == email.Value()
			if !c.Appointment.IsBooked() {
				if mine {
					mineCancelled = true
				} else {
					othersCancelled = true
				}
				continue
			}
			if !mine {
				return classified(ErrNotOwner, errs.ErrForbidden)
			}

			if derr = c.Appointment.Cancel(now); derr != nil {
				return classified(ErrCancelledTwice, errs.ErrAlreadyCancelled)
			}
			updated, derr := tx.Appointments().MarkCancelled(ctx, tx.DB(), c.Appointment)
			if derr != nil {
				return derr
			}
			if !updated {
				return classified(ErrCancelledTwice, errs.ErrAlreadyCancelled)
			}
			if derr = appendEvent(ctx, tx, appointment.EventCancelled, c.Appointment, email, now); derr != nil {
				return derr
			}
			result = toResult(c.Appointment, c.BarberName, c.OwnerName, c.OwnerEmail)
			return nil
		}

		switch {
		case mineCancelled:
			return classified(ErrCancelledTwice, errs.ErrAlreadyCancelled)
		case othersCancelled:
			return classified(ErrNotOwner, errs.ErrForbidden)
		default:
			return classified(ErrNoAppointment, errs.ErrNotFound)
		}
	})
	if err != nil {
		return nil, errs.OrUnavailable(err)
	}

	slog.InfoContext(ctx, "appointment cancelled",
		"appointment_id", result.ID.String(),
		"date", result.Date,
		"time_slot", result.TimeSlot)
	return result, nil
}

func (uc *bookingUseCaseImpl) barber(ctx context.Context, id int64) (*barber.Barber, error) {
	b, err := uc.uow.CommandReads().BarberByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, invalid(err, ErrUnknownBarber)
		}
		return nil, errs.OrUnavailable(err)
	}
	return b, nil
}

func appendEvent(ctx context.Context, tx shared.Tx, eventType string, appt *appointment.Appointment, email user.Email, now time.Time) error {
	payload, err := json.Marshal(appointmentEvent{
		AppointmentID: appt.ID(),
		Date:          appt.Date().Key(),
		TimeSlot:      appt.Time().Format12(),
		BarberID:      appt.BarberID(),
		UserEmail:     email.Value(),
		Status:        appt.Status().String(),
		OccurredAt:    now,
		CancelledAt:   appt.CancelledAt(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode appointment event")
	}
	return tx.Events().Append(ctx, tx.DB(), shared.OutboxEvent{
		AppointmentID: appt.ID(),
		Type:          eventType,
		Payload:       payload,
		CreatedAt:     now,
	})
}

func toResult(appt *appointment.Appointment, barberName, userName, userEmail string) *AppointmentResult {
	return &AppointmentResult{
		ID:          appt.ID(),
		Date:        appt.Date().Key(),
		TimeSlot:    appt.Time().Format12(),
		BarberID:    appt.BarberID(),
		BarberName:  barberName,
		UserName:    userName,
		UserEmail:   userEmail,
		Status:      appt.Status().String(),
		CreatedAt:   appt.CreatedAt(),
		CancelledAt: appt.CancelledAt(),
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
