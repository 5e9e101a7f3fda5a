//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/domain/barber"
	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/domain/slot"
	"barbershop-booking/internal/domain/user"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/shared"
	"barbershop-booking/tests/common/builder"
	"barbershop-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokyo = mustLocation("Asia/Tokyo")

// 2024-06-01 10:15 in the shop's timezone
var now = time.Date(2024, 6, 1, 10, 15, 0, 0, tokyo)

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func roster() []*barber.Barber {
	return []*barber.Barber{
		builder.NewBarberBuilder().BuildDomain(),
		builder.NewBarberBuilder().WithID(2).WithName("Aya Mori").WithAvailability("09:00 AM", "01:00 PM").BuildDomain(),
	}
}

func shop(reopen bool) shared.ShopSettings {
	return shared.ShopSettings{
		Catalog:  slot.DefaultCatalog(),
		Location: tokyo,
		Policy:   schedule.Policy{ReopenCancelled: reopen},
	}
}

func newBooking(reopen bool) (commands.BookingCommands, *memstore.Store) {
	store := memstore.New(roster()...)
	return commands.NewBookingCommands(store, shop(reopen), clock.NewMockClock(now)), store
}

func alice() user.Identity { return builder.NewUserBuilder().BuildIdentity() }
func bob() user.Identity   { return builder.NewUserBuilder().AsBob().BuildIdentity() }

func seedUser(t *testing.T, store *memstore.Store, id user.Identity) *user.User {
	t.Helper()
	u, err := builder.NewUserBuilder().WithName(id.Name).WithEmail(id.Email).BuildDomain()
	require.NoError(t, err)
	store.SeedUser(u)
	return u
}

func seedAppointment(store *memstore.Store, owner *user.User, date, timeSlot string, cancelled bool) *appointment.Appointment {
	b := builder.NewAppointmentBuilder().WithDate(date).WithTimeSlot(timeSlot).With(func(a *builder.AppointmentBuilder) {
		a.UserID = owner.ID()
		a.CreatedAt = now.Add(-24 * time.Hour)
	})
	if cancelled {
		b.AsCancelled()
	}
	appt := b.BuildDomain()
	store.SeedAppointment(appt)
	return appt
}

func TestBookingCommands_Book(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 翌日の枠を予約できる", func(t *testing.T) {
		uc, store := newBooking(false)

		res, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: 1}, alice())
		require.NoError(t, err)

		assert.Equal(t, "2024-06-02", res.Date)
		assert.Equal(t, "09:00 AM", res.TimeSlot)
		assert.Equal(t, int64(1), res.BarberID)
		assert.Equal(t, "Ken Tanaka", res.BarberName)
		assert.Equal(t, "Alice Smith", res.UserName)
		assert.Equal(t, "alice@example.com", res.UserEmail)
		assert.Equal(t, appointment.StatusBooked.String(), res.Status)
		assert.True(t, now.Equal(res.CreatedAt))
		assert.Nil(t, res.CancelledAt)

		require.Len(t, store.Appointments(), 1)
		require.Len(t, store.Users(), 1)

		events := store.Events()
		require.Len(t, events, 1)
		assert.Equal(t, appointment.EventBooked, events[0].Type)
		assert.Equal(t, res.ID, events[0].AppointmentID)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
		assert.Equal(t, res.ID.String(), payload["appointmentId"])
		assert.Equal(t, "alice@example.com", payload["userEmail"])
	})

	t.Run("正常系: 24時間表記も受け付ける", func(t *testing.T) {
		uc, _ := newBooking(false)

		res, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "13:00", BarberID: 2}, alice())
		require.NoError(t, err)
		assert.Equal(t, "01:00 PM", res.TimeSlot)
		assert.Equal(t, "Aya Mori", res.BarberName)
	})

	t.Run("正常系: 当日でもこれからの枠は予約できる", func(t *testing.T) {
		uc, _ := newBooking(false)

		_, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-01", TimeSlot: "10:30 AM", BarberID: 1}, alice())
		require.NoError(t, err)
	})

	t.Run("正常系: 既存ユーザーの表示名を維持する", func(t *testing.T) {
		uc, store := newBooking(false)
		seedUser(t, store, alice())

		id := alice()
		id.Name = "Someone Else"
		res, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: 1}, id)
		require.NoError(t, err)
		assert.Equal(t, "Alice Smith", res.UserName)
		assert.Len(t, store.Users(), 1)
	})

	t.Run("正常系: 名前がなければメールのローカル部を使う", func(t *testing.T) {
		uc, _ := newBooking(false)

		res, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: 1},
			user.Identity{Subject: "user_carol", Email: "carol@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "carol", res.UserName)
	})

	cases := []struct {
		name     string
		req      commands.BookRequest
		caller   user.Identity
		class    error
		reason   error
		contains string
	}{
		{
			name:   "過去日はNG",
			req:    commands.BookRequest{Date: "2024-05-31", TimeSlot: "09:00 AM", BarberID: 1},
			caller: alice(),
			class:  errs.ErrValidation,
			reason: commands.ErrDateInPast,
		},
		{
			name:   "当日の経過済み枠はNG",
			req:    commands.BookRequest{Date: "2024-06-01", TimeSlot: "10:00 AM", BarberID: 1},
			caller: alice(),
			class:  errs.ErrValidation,
			reason: commands.ErrSlotElapsed,
		},
		{
			name:   "存在しない日付はNG",
			req:    commands.BookRequest{Date: "2024-02-30", TimeSlot: "09:00 AM", BarberID: 1},
			caller: alice(),
			class:  errs.ErrValidation,
			reason: commands.ErrInvalidDate,
		},
		{
			name:   "カタログ外の時刻はNG",
			req:    commands.BookRequest{Date: "2024-06-02", TimeSlot: "12:30 PM", BarberID: 1},
			caller: alice(),
			class:  errs.ErrValidation,
			reason: commands.ErrUnknownTimeSlot,
		},
		{
			name:   "解釈できない時刻はNG",
			req:    commands.BookRequest{Date: "2024-06-02", TimeSlot: "noon", BarberID: 1},
			caller: alice(),
			class:  errs.ErrValidation,
			reason: commands.ErrUnknownTimeSlot,
		},
		{
			name:   "存在しない理容師はNG",
			req:    commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: 99},
			caller: alice(),
			class:  errs.ErrValidation,
			reason: commands.ErrUnknownBarber,
		},
		{
			name:   "理容師の担当外の枠はNG",
			req:    commands.BookRequest{Date: "2024-06-02", TimeSlot: "10:00 AM", BarberID: 2},
			caller: alice(),
			class:  errs.ErrValidation,
			reason: commands.ErrBarberUnavailable,
		},
		{
			name:     "メールのないIDはNG",
			req:      commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: 1},
			caller:   user.Identity{Subject: "user_x", Name: "X"},
			class:    errs.ErrValidation,
			reason:   commands.ErrInvalidIdentity,
			contains: "identity has no usable email",
		},
	}
	for _, tc := range cases {
		t.Run("異常系: "+tc.name, func(t *testing.T) {
			uc, store := newBooking(false)

			res, err := uc.Book(ctx, tc.req, tc.caller)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errs.Is(err, tc.class), "class: %v", err)
			assert.True(t, errs.Is(err, tc.reason), "reason: %v", err)
			if tc.contains != "" {
				assert.Contains(t, err.Error(), tc.contains)
			}
			assert.Empty(t, store.Appointments())
			assert.Empty(t, store.Events())
		})
	}

	t.Run("異常系: 別の理容師でも同じ枠は二重予約できない", func(t *testing.T) {
		uc, store := newBooking(false)

		_, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: 1}, alice())
		require.NoError(t, err)

		_, err = uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00", BarberID: 2}, bob())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSlotUnavailable))
		assert.True(t, errs.Is(err, commands.ErrSlotTaken))

		// the failed attempt leaves no trace
		assert.Len(t, store.Appointments(), 1)
		assert.Len(t, store.Events(), 1)
		assert.Len(t, store.Users(), 1)
	})

	t.Run("キャンセル済みの枠は既定では再予約できない", func(t *testing.T) {
		uc, store := newBooking(false)
		owner := seedUser(t, store, alice())
		seedAppointment(store, owner, "2024-06-02", "09:00 AM", true)

		_, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: 1}, bob())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSlotUnavailable))
	})

	t.Run("再開ポリシーならキャンセル済みの枠を再予約できる", func(t *testing.T) {
		uc, store := newBooking(true)
		owner := seedUser(t, store, alice())
		seedAppointment(store, owner, "2024-06-02", "09:00 AM", true)

		res, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: 1}, bob())
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", res.UserEmail)
		assert.Len(t, store.Appointments(), 2)
	})

	t.Run("既定ポリシーでは挿入前に枠をロックする", func(t *testing.T) {
		uc, store := newBooking(false)

		_, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: 1}, alice())
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-06-02 09:00"}, store.SlotLocks())
	})

	t.Run("再開ポリシーでは枠をロックしない", func(t *testing.T) {
		uc, store := newBooking(true)

		_, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: 1}, alice())
		require.NoError(t, err)
		assert.Empty(t, store.SlotLocks())
	})

	t.Run("異常系: ストア障害はStoreUnavailable", func(t *testing.T) {
		uc, store := newBooking(false)
		store.FailWith(assert.AnError)

		_, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: 1}, alice())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})

	t.Run("同時予約でも成功は1件だけ", func(t *testing.T) {
		uc, store := newBooking(false)

		const n = 20
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			conflicts int
		)
		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				caller := user.Identity{
					Subject: "user_" + uuid.NewString(),
					Email:   "guest" + uuid.NewString()[:8] + "@example.com",
				}
				barberID := int64(1 + i%2)
				_, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: barberID}, caller)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case errs.Is(err, errs.ErrSlotUnavailable):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.Equal(t, n-1, conflicts)
		assert.Len(t, store.Appointments(), 1)
	})
}

func TestBookingCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 自分の予約をキャンセルできる", func(t *testing.T) {
		uc, store := newBooking(false)
		owner := seedUser(t, store, alice())
		appt := seedAppointment(store, owner, "2024-06-02", "09:00 AM", false)

		res, err := uc.Cancel(ctx, commands.CancelRequest{Date: "2024-06-02", TimeSlot: "09:00 AM"}, alice())
		require.NoError(t, err)

		assert.Equal(t, appt.ID(), res.ID)
		assert.Equal(t, appointment.StatusCancelled.String(), res.Status)
		require.NotNil(t, res.CancelledAt)
		assert.True(t, now.Equal(*res.CancelledAt))
		assert.Equal(t, "Ken Tanaka", res.BarberName)

		stored := store.Appointments()
		require.Len(t, stored, 1)
		assert.False(t, stored[0].IsBooked())

		events := store.Events()
		require.Len(t, events, 1)
		assert.Equal(t, appointment.EventCancelled, events[0].Type)
	})

	t.Run("正常系: メールの大小文字は区別しない", func(t *testing.T) {
		uc, store := newBooking(false)
		owner := seedUser(t, store, alice())
		seedAppointment(store, owner, "2024-06-02", "09:00 AM", false)

		caller := alice()
		caller.Email = "ALICE@Example.com"
		_, err := uc.Cancel(ctx, commands.CancelRequest{Date: "2024-06-02", TimeSlot: "09:00"}, caller)
		require.NoError(t, err)
	})

	t.Run("正常系: カタログから外れた時刻の予約もキャンセルできる", func(t *testing.T) {
		uc, store := newBooking(false)
		owner := seedUser(t, store, alice())
		seedAppointment(store, owner, "2024-06-02", "12:30 PM", false)

		_, err := uc.Cancel(ctx, commands.CancelRequest{Date: "2024-06-02", TimeSlot: "12:30 PM"}, alice())
		require.NoError(t, err)
	})

	cases := []struct {
		name   string
		seed   func(t *testing.T, store *memstore.Store)
		req    commands.CancelRequest
		class  error
		reason error
	}{
		{
			name:   "予約がなければNotFound",
			seed:   func(*testing.T, *memstore.Store) {},
			req:    commands.CancelRequest{Date: "2024-06-02", TimeSlot: "09:00 AM"},
			class:  errs.ErrNotFound,
			reason: commands.ErrNoAppointment,
		},
		{
			name: "他人の予約はForbidden",
			seed: func(t *testing.T, store *memstore.Store) {
				seedAppointment(store, seedUser(t, store, bob()), "2024-06-02", "09:00 AM", false)
			},
			req:    commands.CancelRequest{Date: "2024-06-02", TimeSlot: "09:00 AM"},
			class:  errs.ErrForbidden,
			reason: commands.ErrNotOwner,
		},
		{
			name: "自分のキャンセル済み予約はAlreadyCancelled",
			seed: func(t *testing.T, store *memstore.Store) {
				seedAppointment(store, seedUser(t, store, alice()), "2024-06-02", "09:00 AM", true)
			},
			req:    commands.CancelRequest{Date: "2024-06-02", TimeSlot: "09:00 AM"},
			class:  errs.ErrAlreadyCancelled,
			reason: commands.ErrCancelledTwice,
		},
		{
			name: "他人のキャンセル済み予約だけならForbidden",
			seed: func(t *testing.T, store *memstore.Store) {
				seedAppointment(store, seedUser(t, store, bob()), "2024-06-02", "09:00 AM", true)
			},
			req:    commands.CancelRequest{Date: "2024-06-02", TimeSlot: "09:00 AM"},
			class:  errs.ErrForbidden,
			reason: commands.ErrNotOwner,
		},
		{
			name:   "不正な日付はValidation",
			seed:   func(*testing.T, *memstore.Store) {},
			req:    commands.CancelRequest{Date: "06/02/2024", TimeSlot: "09:00 AM"},
			class:  errs.ErrValidation,
			reason: commands.ErrInvalidDate,
		},
		{
			name:   "不正な時刻はValidation",
			seed:   func(*testing.T, *memstore.Store) {},
			req:    commands.CancelRequest{Date: "2024-06-02", TimeSlot: "25:00"},
			class:  errs.ErrValidation,
			reason: commands.ErrInvalidTimeSlot,
		},
	}
	for _, tc := range cases {
		t.Run("異常系: "+tc.name, func(t *testing.T) {
			uc, store := newBooking(false)
			tc.seed(t, store)
			before := store.Appointments()

			res, err := uc.Cancel(ctx, tc.req, alice())
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errs.Is(err, tc.class), "class: %v", err)
			assert.True(t, errs.Is(err, tc.reason), "reason: %v", err)

			after := store.Appointments()
			require.Len(t, after, len(before))
			for i := range before {
				assert.Equal(t, before[i].Status(), after[i].Status())
			}
			assert.Empty(t, store.Events())
		})
	}

	t.Run("異常系: 再予約された枠では他人の有効予約が優先されForbidden", func(t *testing.T) {
		uc, store := newBooking(true)
		seedAppointment(store, seedUser(t, store, alice()), "2024-06-02", "09:00 AM", true)

		_, err := uc.Book(ctx, commands.BookRequest{Date: "2024-06-02", TimeSlot: "09:00 AM", BarberID: 1}, bob())
		require.NoError(t, err)

		_, err = uc.Cancel(ctx, commands.CancelRequest{Date: "2024-06-02", TimeSlot: "09:00 AM"}, alice())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("異常系: ストア障害はStoreUnavailable", func(t *testing.T) {
		uc, store := newBooking(false)
		store.FailWith(assert.AnError)

		_, err := uc.Cancel(ctx, commands.CancelRequest{Date: "2024-06-02", TimeSlot: "09:00 AM"}, alice())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})
}
