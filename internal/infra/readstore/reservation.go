package readstore

import (
	"context"

	"barbershop-booking/internal/domain/slot"
	"barbershop-booking/internal/infra"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/pkg/pgconv"
	"barbershop-booking/internal/usecase/queries"
)

type ReservationViewQueries interface {
	ListAppointmentsByUserEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsByUserEmailParams) ([]sqlc.ListAppointmentsByUserEmailRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) ListByUserEmail(ctx context.Context, email string, from slot.Date) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListAppointmentsByUserEmail(ctx, r.db, sqlc.ListAppointmentsByUserEmailParams{
		Email: email,
		Date:  pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by user email", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		date, err := pgconv.DateFromPgtype(row.Date)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode appointment date", err, infra.KindCorruptRow)
		}
		t, err := pgconv.SlotTimeFromPgtype(row.TimeSlot)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode appointment time", err, infra.KindCorruptRow)
		}
		views = append(views, &queries.ReservationView{
			ID:                 row.ID,
			Date:               date.Key(),
			TimeSlot:           t.Format12(),
			Time24:             t.Format24(),
			BarberID:           row.BarberID,
			BarberName:         row.BarberName,
			BarberProfileImage: row.BarberProfilePicture,
			Status:             row.Status,
			CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
			CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
		})
	}
	return views, nil
}
