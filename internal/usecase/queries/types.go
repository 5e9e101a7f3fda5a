package queries

import (
	"time"

	"github.com/google/uuid"
)

// BarberSummary is the barber attribution shown on a day slot.
type BarberSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
}

// BarberView represents the public roster entry
type BarberView struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	ProfileImage string   `json:"profileImage"`
	TimeSlots    []string `json:"timeSlots"`
}

// DaySlotView is one row of a day's schedule. BookedBy carries the display
// name only; emails are never exposed on the public schedule.
type DaySlotView struct {
	Time        string         `json:"time"`
	Time24      string         `json:"time24"`
	Barber      *BarberSummary `json:"barber"`
	IsBooked    bool           `json:"isBooked"`
	BookedBy    string         `json:"bookedBy,omitempty"`
	IsCancelled bool           `json:"isCancelled"`
	Available   bool           `json:"available"`
}

// ReservationView represents one of the caller's appointments
type ReservationView struct {
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
