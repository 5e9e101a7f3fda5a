package commands

import (
	"barbershop-booking/internal/pkg/errs"
)

// Reasons. Each is returned marked with one class from pkg/errs.
var (
	ErrInvalidDate       = errs.New("invalid date")
	ErrUnknownTimeSlot   = errs.New("time slot is not offered")
	ErrInvalidTimeSlot   = errs.New("invalid time slot")
	ErrInvalidIdentity   = errs.New("identity has no usable email")
	ErrDateInPast        = errs.New("date is in the past")
	ErrSlotElapsed       = errs.New("time slot has already passed")
	ErrUnknownBarber     = errs.New("barber not found")
	ErrBarberUnavailable = errs.New("barber does not offer this time slot")
	ErrSlotTaken         = errs.New("slot already booked")
	ErrNotOwner          = errs.New("appointment belongs to another user")
	ErrNoAppointment     = errs.New("no appointment at this slot")
	ErrCancelledTwice    = errs.New("appointment already cancelled")
	ErrIdentityConflict  = errs.New("external id is linked to another email")
)

// invalid keeps the reason text in the message so it can be shown to clients.
func invalid(err, reason error) error {
	return errs.Mark(errs.Mark(errs.Wrap(err, reason.Error()), reason), errs.ErrValidation)
}

func classified(reason, class error) error {
	return errs.Mark(errs.Wrap(reason, class.Error()), class)
}
