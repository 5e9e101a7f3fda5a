package queries

import (
	"context"

	"barbershop-booking/internal/domain/slot"
	"barbershop-booking/internal/domain/user"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/shared"
)

var ErrInvalidEmail = errs.New("invalid email")

type ReservationReadStore interface {
	// ListByUserEmail returns appointments on or after from, ordered by (date, time).
	ListByUserEmail(ctx context.Context, email string, from slot.Date) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetUserReservations(ctx context.Context, email string) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	shop  shared.ShopSettings
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, shop shared.ShopSettings, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, shop: shop, clock: clk}
}

// GetUserReservations lists both booked and cancelled appointments from today
// onward. An unknown email yields an empty list.
func (q *reservationQueriesImpl) GetUserReservations(ctx context.Context, email string) ([]*ReservationView, error) {
	ctx, span := tracer.Start(ctx, "ReservationQueries.GetUserReservations")
	defer span.End()

	e, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(errs.Mark(errs.Wrap(err, ErrInvalidEmail.Error()), ErrInvalidEmail), errs.ErrValidation)
	}

	today, _ := q.shop.Today(q.clock.Now())
	views, err := q.store.ListByUserEmail(ctx, e.Value(), today)
	if err != nil {
		return nil, errs.OrUnavailable(err)
	}
	if views == nil {
		views = []*ReservationView{}
	}
	return views, nil
}
