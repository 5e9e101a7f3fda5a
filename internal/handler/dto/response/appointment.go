package response

import (
	"time"

	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	Date        string     `json:"date"`
	TimeSlot    string     `json:"timeSlot"`
	BarberID    int64      `json:"barberId"`
	BarberName  string     `json:"barberName"`
	UserName    string     `json:"userName"`
	UserEmail   string     `json:"userEmail"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

func FromAppointmentResult(r *commands.AppointmentResult) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          r.ID,
		Date:        r.Date,
		TimeSlot:    r.TimeSlot,
		BarberID:    r.BarberID,
		BarberName:  r.BarberName,
		UserName:    r.UserName,
		UserEmail:   r.UserEmail,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		CancelledAt: r.CancelledAt,
	}
}

type ReservationResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Date               string     `json:"date"`
	TimeSlot           string     `json:"timeSlot"`
	Time24             string     `json:"time24"`
	BarberID           int64      `json:"barberId"`
	BarberName         string     `json:"barberName"`
	BarberProfileImage string     `json:"barberProfileImage,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = &ReservationResponse{
			ID:                 v.ID,
			Date:               v.Date,
			TimeSlot:           v.TimeSlot,
			Time24:             v.Time24,
			BarberID:           v.BarberID,
			BarberName:         v.BarberName,
			BarberProfileImage: v.BarberProfileImage,
			Status:             v.Status,
			CreatedAt:          v.CreatedAt,
			CancelledAt:        v.CancelledAt,
		}
	}
	return out
}
