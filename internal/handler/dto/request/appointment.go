package request

import (
	"strings"

	"barbershop-booking/internal/usecase/commands"
)

type BookAppointmentRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
	BarberID int64  `json:"barberId" binding:"required,gt=0"`
}

func (r BookAppointmentRequest) ToCommand() commands.BookRequest {
	return commands.BookRequest{
		Date:     strings.TrimSpace(r.Date),
		TimeSlot: strings.TrimSpace(r.TimeSlot),
		BarberID: r.BarberID,
	}
}

type CancelAppointmentRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
}

func (r CancelAppointmentRequest) ToCommand() commands.CancelRequest {
	return commands.CancelRequest{
		Date:     strings.TrimSpace(r.Date),
		TimeSlot: strings.TrimSpace(r.TimeSlot),
	}
}

type DaySlotsQuery struct {
	Date string `form:"date" binding:"required"`
}
