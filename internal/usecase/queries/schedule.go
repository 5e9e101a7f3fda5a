package queries

import (
	"context"

	"barbershop-booking/internal/domain/barber"
	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/domain/slot"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrInvalidDate = errs.New("invalid date")

	tracer = otel.Tracer("barbershop-booking/usecase/queries")
)

type ScheduleReadStore interface {
	ListBarbers(ctx context.Context) ([]*barber.Barber, error)
	ListBookings(ctx context.Context, date slot.Date) ([]schedule.Booking, error)
}

type ScheduleQueries interface {
	GetDaySlots(ctx context.Context, date string) ([]*DaySlotView, error)
	ListBarbers(ctx context.Context) ([]*BarberView, error)
}

type scheduleQueriesImpl struct {
	store ScheduleReadStore
	shop  shared.ShopSettings
	clock clock.Clock
}

func NewScheduleQueries(store ScheduleReadStore, shop shared.ShopSettings, clk clock.Clock) ScheduleQueries {
	return &scheduleQueriesImpl{store: store, shop: shop, clock: clk}
}

// GetDaySlots never turns a failed read into an empty day.
func (q *scheduleQueriesImpl) GetDaySlots(ctx context.Context, date string) ([]*DaySlotView, error) {
	ctx, span := tracer.Start(ctx, "ScheduleQueries.GetDaySlots")
	defer span.End()
	span.SetAttributes(attribute.String("appointment.date", date))

	d, err := slot.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(errs.Mark(errs.Wrap(err, ErrInvalidDate.Error()), ErrInvalidDate), errs.ErrValidation)
	}

	roster, err := q.store.ListBarbers(ctx)
	if err != nil {
		return nil, errs.OrUnavailable(err)
	}
	if len(roster) == 0 {
		return []*DaySlotView{}, nil
	}

	bookings, err := q.store.ListBookings(ctx, d)
	if err != nil {
		return nil, errs.OrUnavailable(err)
	}

	_, now := q.shop.Today(q.clock.Now())
	slots := schedule.DeriveDay(schedule.DayInput{
		Date:     d,
		Now:      now,
		Catalog:  q.shop.Catalog,
		Roster:   roster,
		Bookings: bookings,
		Policy:   q.shop.Policy,
	})

	views := make([]*DaySlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, toDaySlotView(s))
	}
	return views, nil
}

func (q *scheduleQueriesImpl) ListBarbers(ctx context.Context) ([]*BarberView, error) {
	roster, err := q.store.ListBarbers(ctx)
	if err != nil {
		return nil, errs.OrUnavailable(err)
	}

	views := make([]*BarberView, 0, len(roster))
	for _, b := range roster {
		offered := b.OfferedTimes(q.shop.Catalog)
		labels := make([]string, 0, len(offered))
		for _, t := range offered {
			labels = append(labels, t.Format12())
		}
		views = append(views, &BarberView{
			ID:           b.ID(),
			Name:         b.Name(),
			ProfileImage: b.ProfileImage(),
			TimeSlots:    labels,
		})
	}
	return views, nil
}

func toDaySlotView(s schedule.DaySlot) *DaySlotView {
	v := &DaySlotView{
		Time:        s.Time.Format12(),
		Time24:      s.Time.Format24(),
		IsBooked:    s.IsBooked,
		BookedBy:    s.BookedBy,
		IsCancelled: s.IsCancelled,
		Available:   s.Available,
	}
	if s.Barber != nil {
		v.Barber = &BarberSummary{
			ID:           s.Barber.ID(),
			Name:         s.Barber.Name(),
			ProfileImage: s.Barber.ProfileImage(),
		}
	}
	return v
}
