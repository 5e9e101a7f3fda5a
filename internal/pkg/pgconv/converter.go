package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"barbershop-booking/internal/domain/slot"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrNullDate = errors.New("null date value in pgtype.Date")
	ErrNullTime = errors.New("null time value in pgtype.Time")
)

const microsPerMinute = int64(time.Minute / time.Microsecond)

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// DateToPgtype stores the civil date at UTC midnight so the driver never
// shifts it across a day boundary.
func DateToPgtype(d slot.Date) pgtype.Date {
	return pgtype.Date{Time: d.UTCMidnight(), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) (slot.Date, error) {
	if !pd.Valid {
		return slot.Date{}, ErrNullDate
	}
	return slot.DateOf(pd.Time), nil
}

func SlotTimeToPgtype(t slot.Time) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t.Minutes()) * microsPerMinute, Valid: true}
}

func SlotTimeFromPgtype(pt pgtype.Time) (slot.Time, error) {
	if !pt.Valid {
		return slot.Time{}, ErrNullTime
	}
	return slot.FromMinutes(int(pt.Microseconds / microsPerMinute))
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
