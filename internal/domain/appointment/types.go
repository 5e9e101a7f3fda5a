package appointment

import "errors"

var (
	ErrInvalidStatus    = errors.New("invalid appointment status")
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")
)

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCancelled:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Outbox event types.
const (
	EventBooked    = "appointment.booked"
	EventCancelled = "appointment.cancelled"
)
