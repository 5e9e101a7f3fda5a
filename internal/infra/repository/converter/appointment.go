package converter

import (
	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/domain/user"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/pkg/pgconv"
)

func AppointmentToInsertParams(a *appointment.Appointment, blockCancelled bool) sqlc.InsertAppointmentParams {
	return sqlc.InsertAppointmentParams{
		ID:             a.ID(),
		UserID:         a.UserID(),
		BarberID:       a.BarberID(),
		Date:           pgconv.DateToPgtype(a.Date()),
		TimeSlot:       pgconv.SlotTimeToPgtype(a.Time()),
		CreatedAt:      pgconv.TimeToPgtype(a.CreatedAt()),
		BlockCancelled: blockCancelled,
	}
}

func AppointmentFromRow(row sqlc.Appointments) (*appointment.Appointment, error) {
	date, err := pgconv.DateFromPgtype(row.Date)
	if err != nil {
		return nil, errs.Wrap(err, "appointment "+row.ID.String())
	}
	t, err := pgconv.SlotTimeFromPgtype(row.TimeSlot)
	if err != nil {
		return nil, errs.Wrap(err, "appointment "+row.ID.String())
	}
	status, err := appointment.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "appointment "+row.ID.String())
	}
	return appointment.Reconstruct(
		row.ID, row.UserID, row.BarberID,
		date, t, status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
	), nil
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrap(err, "user "+row.ID.String())
	}
	return user.Reconstruct(
		row.ID,
		pgconv.StringPtrFromPgtype(row.ExternalID),
		user.NameOrDefault(row.Name, email),
		email,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
