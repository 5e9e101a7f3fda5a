//go:build unit

package queries_test

import (
	"context"
	"testing"

	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/queries"
	"barbershop-booking/tests/common/builder"
	"barbershop-booking/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationQueries_GetUserReservations(t *testing.T) {
	ctx := context.Background()

	t.Run("当日以降の予約をキャンセル済みも含めて日時順で返す", func(t *testing.T) {
		store := memstore.New(roster()...)
		seed(t, store, builder.NewUserBuilder(), "2024-06-03", "09:00 AM", true)
		seed(t, store, builder.NewUserBuilder(), "2024-06-01", "04:00 PM", false)
		seed(t, store, builder.NewUserBuilder(), "2024-05-31", "09:00 AM", false)
		seed(t, store, builder.NewUserBuilder().AsBob(), "2024-06-02", "09:00 AM", false)
		q := queries.NewReservationQueries(store, shop(false), clock.NewMockClock(now))

		views, err := q.GetUserReservations(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Len(t, views, 2)

		assert.Equal(t, "2024-06-01", views[0].Date)
		assert.Equal(t, "04:00 PM", views[0].TimeSlot)
		assert.Equal(t, "16:00", views[0].Time24)
		assert.Equal(t, "booked", views[0].Status)
		assert.Equal(t, "Ken Tanaka", views[0].BarberName)

		assert.Equal(t, "2024-06-03", views[1].Date)
		assert.Equal(t, "cancelled", views[1].Status)
		assert.NotNil(t, views[1].CancelledAt)
	})

	t.Run("メールの大小文字は区別しない", func(t *testing.T) {
		store := memstore.New(roster()...)
		seed(t, store, builder.NewUserBuilder(), "2024-06-02", "09:00 AM", false)
		q := queries.NewReservationQueries(store, shop(false), clock.NewMockClock(now))

		views, err := q.GetUserReservations(ctx, "  ALICE@Example.com ")
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("未知のユーザーは空のリスト", func(t *testing.T) {
		q := queries.NewReservationQueries(memstore.New(roster()...), shop(false), clock.NewMockClock(now))

		views, err := q.GetUserReservations(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("異常系: 不正なメールはValidation", func(t *testing.T) {
		q := queries.NewReservationQueries(memstore.New(roster()...), shop(false), clock.NewMockClock(now))

		_, err := q.GetUserReservations(ctx, "not-an-email")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.True(t, errs.Is(err, queries.ErrInvalidEmail))
	})

	t.Run("異常系: ストア障害はStoreUnavailable", func(t *testing.T) {
		store := memstore.New(roster()...)
		store.FailWith(assert.AnError)
		q := queries.NewReservationQueries(store, shop(false), clock.NewMockClock(now))

		_, err := q.GetUserReservations(ctx, "alice@example.com")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})
}
