//go:build unit

package response_test

import (
	"testing"

	resdto "barbershop-booking/internal/handler/dto/response"
	"barbershop-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFromBarberViews(t *testing.T) {
	views := []*queries.BarberView{
		{ID: 1, Name: "Ken Tanaka", ProfileImage: "ken.png", TimeSlots: []string{"09:00 AM", "09:30 AM"}},
		{ID: 2, Name: "Aya Mori"},
	}

	got, err := resdto.FromBarberViews(views)
	require.NoError(t, err)

	want := []*resdto.BarberResponse{
		{ID: 1, Name: "Ken Tanaka", ProfileImage: "ken.png", TimeSlots: []string{"09:00 AM", "09:30 AM"}},
		{ID: 2, Name: "Aya Mori", TimeSlots: []string{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BarberResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestFromDaySlotViews(t *testing.T) {
	views := []*queries.DaySlotView{
		{Time: "09:00 AM", Time24: "09:00", Barber: &queries.BarberSummary{ID: 1, Name: "Ken Tanaka"}, IsBooked: true, BookedBy: "Alice Smith"},
		{Time: "09:30 AM", Time24: "09:30", IsCancelled: true},
	}

	got := resdto.FromDaySlotViews(views)

	want := []*resdto.DaySlotResponse{
		{Time: "09:00 AM", Time24: "09:00", Barber: &resdto.BarberSummaryResponse{ID: 1, Name: "Ken Tanaka"}, IsBooked: true, BookedBy: "Alice Smith"},
		{Time: "09:30 AM", Time24: "09:30", IsCancelled: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DaySlotResponse mismatch (-want +got):\n%s", diff)
	}
}
