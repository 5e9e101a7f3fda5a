package readstore

import (
	"context"

	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/domain/barber"
	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/domain/slot"
	"barbershop-booking/internal/infra"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type ScheduleViewQueries interface {
	ListBarbers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Barbers, error)
	ListAppointmentsByDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.ListAppointmentsByDateRow, error)
}

type ScheduleReadStore struct {
	queries ScheduleViewQueries
	db      sqlc.DBTX
}

func NewScheduleReadStore(queries ScheduleViewQueries, db sqlc.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleReadStore) ListBarbers(ctx context.Context) ([]*barber.Barber, error) {
	rows, err := r.queries.ListBarbers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list barbers", err)
	}

	roster, err := toBarbers(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode barbers", err, infra.KindCorruptRow)
	}
	return roster, nil
}

func (r *ScheduleReadStore) ListBookings(ctx context.Context, date slot.Date) ([]schedule.Booking, error) {
	rows, err := r.queries.ListAppointmentsByDate(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by date", err)
	}

	bookings := make([]schedule.Booking, 0, len(rows))
	for _, row := range rows {
		t, err := pgconv.SlotTimeFromPgtype(row.TimeSlot)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode appointment time", err, infra.KindCorruptRow)
		}
		status, err := appointment.ParseStatus(row.Status)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode appointment status", err, infra.KindCorruptRow)
		}
		bookings = append(bookings, schedule.Booking{
			AppointmentID: row.ID,
			Time:          t,
			Status:        status,
			BarberID:      row.BarberID,
			UserName:      row.UserName,
			UserEmail:     row.UserEmail,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return bookings, nil
}
