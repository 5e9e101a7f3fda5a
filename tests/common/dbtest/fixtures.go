//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Barbers seeded by SeedReferenceData. Ken offers every catalog slot.
const (
	SeedBarberKen = int64(1)
	SeedBarberAya = int64(2)
)

func CreateTestUser(t *testing.T, db DBLike, email, name string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, name, strings.ToLower(email))
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", strings.ToLower(email)).Scan(&userID)
	}

	return userID
}

func CreateTestBarber(t *testing.T, db DBLike, name string, availability []string) int64 {
	t.Helper()

	if availability == nil {
		availability = []string{}
	}
	raw, err := json.Marshal(availability)
	require.NoError(t, err)

	var id int64
	err = db.QueryRow(context.Background(),
		"INSERT INTO barbers (name, availability) VALUES ($1, $2) RETURNING id", name, raw).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestAppointment inserts a booked row directly, bypassing the booking rules.
func CreateTestAppointment(t *testing.T, db DBLike, userID uuid.UUID, barberID int64, date, timeSlot string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO appointments (id, user_id, barber_id, date, time_slot, status) VALUES ($1, $2, $3, $4::date, $5::time, 'booked')",
		id, userID, barberID, date, timeSlot)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO barbers (id, name, profile_picture, availability) VALUES
		    (1, 'Ken Tanaka', 'ken.png', '[]'::jsonb),
		    (2, 'Aya Mori', 'aya.png', '["09:00 AM", "09:30 AM", "01:00 PM"]'::jsonb)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	// keep BIGSERIAL ahead of the fixed ids above
	_, err = pool.Exec(ctx, `SELECT setval(pg_get_serial_sequence('barbers', 'id'), (SELECT MAX(id) FROM barbers))`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
