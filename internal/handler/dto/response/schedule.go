package response

import (
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BarberResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	ProfileImage string   `json:"profileImage"`
	TimeSlots    []string `json:"timeSlots"`
}

type BarberSummaryResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
}

type DaySlotResponse struct {
	Time        string                 `json:"time"`
	Time24      string                 `json:"time24"`
	Barber      *BarberSummaryResponse `json:"barber"`
	IsBooked    bool                   `json:"isBooked"`
	BookedBy    string                 `json:"bookedBy,omitempty"`
	IsCancelled bool                   `json:"isCancelled"`
	Available   bool                   `json:"available"`
}

func FromBarberViews(views []*queries.BarberView) ([]*BarberResponse, error) {
	out := make([]*BarberResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, errs.Wrap(err, "copy barber views")
	}
	for _, b := range out {
		if b.TimeSlots == nil {
			b.TimeSlots = []string{}
		}
	}
	return out, nil
}

func FromDaySlotViews(views []*queries.DaySlotView) []*DaySlotResponse {
	out := make([]*DaySlotResponse, len(views))
	for i, v := range views {
		out[i] = &DaySlotResponse{
			Time:        v.Time,
			Time24:      v.Time24,
			IsBooked:    v.IsBooked,
			BookedBy:    v.BookedBy,
			IsCancelled: v.IsCancelled,
			Available:   v.Available,
		}
		if v.Barber != nil {
			out[i].Barber = &BarberSummaryResponse{
				ID:           v.Barber.ID,
				Name:         v.Barber.Name,
				ProfileImage: v.Barber.ProfileImage,
			}
		}
	}
	return out
}
