package repository

import (
	"context"

	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/domain/slot"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/infra/repository/converter"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/pkg/pgconv"
	"barbershop-booking/internal/usecase/shared"
)

type AppointmentWriteQueries interface {
	InsertAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAppointmentParams) (sqlc.Appointments, error)
	LockAppointmentsAtSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.LockAppointmentsAtSlotParams) ([]sqlc.LockAppointmentsAtSlotRow, error)
	CancelAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelAppointmentParams) (sqlc.Appointments, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
}

func NewAppointmentRepository(queries AppointmentWriteQueries) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
	}
}

func (r *AppointmentRepository) Insert(ctx context.Context, tx sqlc.DBTX, appt *appointment.Appointment, blockCancelled bool) (bool, error) {
	_, err := r.queries.InsertAppointment(ctx, tx, converter.AppointmentToInsertParams(appt, blockCancelled))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert appointment", err)
	}
	return true, nil
}

func (r *AppointmentRepository) LockSlot(ctx context.Context, tx sqlc.DBTX, date slot.Date, t slot.Time) ([]shared.SlotClaim, error) {
	rows, err := r.queries.LockAppointmentsAtSlot(ctx, tx, sqlc.LockAppointmentsAtSlotParams{
		Date:     pgconv.DateToPgtype(date),
		TimeSlot: pgconv.SlotTimeToPgtype(t),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock appointments at slot", err)
	}

	claims := make([]shared.SlotClaim, 0, len(rows))
	for _, row := range rows {
		appt, err := converter.AppointmentFromRow(sqlc.Appointments{
			ID:          row.ID,
			UserID:      row.UserID,
			BarberID:    row.BarberID,
			Date:        row.Date,
			TimeSlot:    row.TimeSlot,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
			CancelledAt: row.CancelledAt,
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert appointment", err, infra.KindCorruptRow)
		}
		claims = append(claims, shared.SlotClaim{
			Appointment: appt,
			OwnerName:   row.UserName,
			OwnerEmail:  row.UserEmail,
			BarberName:  row.BarberName,
		})
	}
	return claims, nil
}

func (r *AppointmentRepository) MarkCancelled(ctx context.Context, tx sqlc.DBTX, appt *appointment.Appointment) (bool, error) {
	at := appt.UpdatedAt()
	if appt.CancelledAt() != nil {
		at = *appt.CancelledAt()
	}
	_, err := r.queries.CancelAppointment(ctx, tx, sqlc.CancelAppointmentParams{
		ID:          appt.ID(),
		CancelledAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to cancel appointment", err)
	}
	return true, nil
}
