// Mirrors sqlc v1.29.0 output for queries/appointments.sql.
// Run `sqlc generate` in internal/infra/sqlc after changing the queries.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const cancelAppointment = `-- name: CancelAppointment :one
UPDATE appointments
SET status = 'cancelled', cancelled_at = $2, updated_at = $2
WHERE id = $1 AND status = 'booked'
RETURNING id, user_id, barber_id, date, time_slot, status, created_at, updated_at, cancelled_at
`

type CancelAppointmentParams struct {
	ID          uuid.UUID
	CancelledAt pgtype.Timestamptz
}

func (q *Queries) CancelAppointment(ctx context.Context, db DBTX, arg CancelAppointmentParams) (Appointments, error) {
	row := db.QueryRow(ctx, cancelAppointment, arg.ID, arg.CancelledAt)
	var i Appointments
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.BarberID,
		&i.Date,
		&i.TimeSlot,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CancelledAt,
	)
	return i, err
}

const insertAppointment = `-- name: InsertAppointment :one
INSERT INTO appointments (id, user_id, barber_id, date, time_slot, status, created_at, updated_at)
SELECT $1, $2, $3, $4, $5, 'booked', $6, $6
WHERE NOT (
    $7::boolean
    AND EXISTS (
        SELECT 1 FROM appointments c
        WHERE c.date = $4 AND c.time_slot = $5 AND c.status = 'cancelled'
    )
)
ON CONFLICT (date, time_slot) WHERE status = 'booked' DO NOTHING
RETURNING id, user_id, barber_id, date, time_slot, status, created_at, updated_at, cancelled_at
`

type InsertAppointmentParams struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	BarberID       int64
	Date           pgtype.Date
	TimeSlot       pgtype.Time
	CreatedAt      pgtype.Timestamptz
	BlockCancelled bool
}

// Single conditional insert. No row back means the slot is taken, or holds a
// cancelled appointment while cancelled slots stay closed.
func (q *Queries) InsertAppointment(ctx context.Context, db DBTX, arg InsertAppointmentParams) (Appointments, error) {
	row := db.QueryRow(ctx, insertAppointment,
		arg.ID,
		arg.UserID,
		arg.BarberID,
		arg.Date,
		arg.TimeSlot,
		arg.CreatedAt,
		arg.BlockCancelled,
	)
	var i Appointments
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.BarberID,
		&i.Date,
		&i.TimeSlot,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CancelledAt,
	)
	return i, err
}

const listAppointmentsByDate = `-- name: ListAppointmentsByDate :many
SELECT a.id, a.user_id, a.barber_id, a.date, a.time_slot, a.status, a.created_at, a.updated_at, a.cancelled_at,
       u.name AS user_name, u.email AS user_email, b.name AS barber_name
FROM appointments a
JOIN users u ON u.id = a.user_id
JOIN barbers b ON b.id = a.barber_id
WHERE a.date = $1
ORDER BY a.time_slot, a.created_at
`

type ListAppointmentsByDateRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	BarberID    int64
	Date        pgtype.Date
	TimeSlot    pgtype.Time
	Status      string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
	CancelledAt pgtype.Timestamptz
	UserName    string
	UserEmail   string
	BarberName  string
}

func (q *Queries) ListAppointmentsByDate(ctx context.Context, db DBTX, date pgtype.Date) ([]ListAppointmentsByDateRow, error) {
	rows, err := db.Query(ctx, listAppointmentsByDate, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListAppointmentsByDateRow
	for rows.Next() {
		var i ListAppointmentsByDateRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.BarberID,
			&i.Date,
			&i.TimeSlot,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.CancelledAt,
			&i.UserName,
			&i.UserEmail,
			&i.BarberName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listAppointmentsByUserEmail = `-- name: ListAppointmentsByUserEmail :many
SELECT a.id, a.user_id, a.barber_id, a.date, a.time_slot, a.status, a.created_at, a.updated_at, a.cancelled_at,
       b.name AS barber_name, b.profile_picture AS barber_profile_picture
FROM appointments a
JOIN users u ON u.id = a.user_id
JOIN barbers b ON b.id = a.barber_id
WHERE u.email = $1 AND a.date >= $2
ORDER BY a.date, a.time_slot, a.created_at
`

type ListAppointmentsByUserEmailParams struct {
	Email string
	Date  pgtype.Date
}

type ListAppointmentsByUserEmailRow struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	BarberID             int64
	Date                 pgtype.Date
	TimeSlot             pgtype.Time
	Status               string
	CreatedAt            pgtype.Timestamptz
	UpdatedAt            pgtype.Timestamptz
	CancelledAt          pgtype.Timestamptz
	BarberName           string
	BarberProfilePicture string
}

func (q *Queries) ListAppointmentsByUserEmail(ctx context.Context, db DBTX, arg ListAppointmentsByUserEmailParams) ([]ListAppointmentsByUserEmailRow, error) {
	rows, err := db.Query(ctx, listAppointmentsByUserEmail, arg.Email, arg.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListAppointmentsByUserEmailRow
	for rows.Next() {
		var i ListAppointmentsByUserEmailRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.BarberID,
			&i.Date,
			&i.TimeSlot,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.CancelledAt,
			&i.BarberName,
			&i.BarberProfilePicture,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const lockAppointmentsAtSlot = `-- name: LockAppointmentsAtSlot :many
SELECT a.id, a.user_id, a.barber_id, a.date, a.time_slot, a.status, a.created_at, a.updated_at, a.cancelled_at,
       u.name AS user_name, u.email AS user_email, b.name AS barber_name
FROM appointments a
JOIN users u ON u.id = a.user_id
JOIN barbers b ON b.id = a.barber_id
WHERE a.date = $1 AND a.time_slot = $2
ORDER BY a.created_at
FOR UPDATE OF a
`

type LockAppointmentsAtSlotParams struct {
	Date     pgtype.Date
	TimeSlot pgtype.Time
}

type LockAppointmentsAtSlotRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	BarberID    int64
	Date        pgtype.Date
	TimeSlot    pgtype.Time
	Status      string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
	CancelledAt pgtype.Timestamptz
	UserName    string
	UserEmail   string
	BarberName  string
}

func (q *Queries) LockAppointmentsAtSlot(ctx context.Context, db DBTX, arg LockAppointmentsAtSlotParams) ([]LockAppointmentsAtSlotRow, error) {
	rows, err := db.Query(ctx, lockAppointmentsAtSlot, arg.Date, arg.TimeSlot)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LockAppointmentsAtSlotRow
	for rows.Next() {
		var i LockAppointmentsAtSlotRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.BarberID,
			&i.Date,
			&i.TimeSlot,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.CancelledAt,
			&i.UserName,
			&i.UserEmail,
			&i.BarberName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
