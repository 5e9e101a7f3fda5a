//go:build unit || e2e

// Package memstore is an in-memory UnitOfWork and read store for use case tests.
// Transactions are serialized and rolled back on error, and the uniqueness rules
// of the Postgres schema are enforced the same way.
package memstore

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/domain/barber"
	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/domain/slot"
	"barbershop-booking/internal/domain/user"
	"barbershop-booking/internal/infra"
	sqlc "barbershop-booking/internal/infra/sqlc/generated"
	"barbershop-booking/internal/usecase/queries"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Event struct {
	ID          int64
	shared.OutboxEvent
	PublishedAt *time.Time
}

type Delivery struct {
	ID         string
	EventType  string
	ReceivedAt time.Time
}

type state struct {
	users        []*user.User
	appointments []*appointment.Appointment
	events       []Event
	deliveries   map[string]Delivery
}

type Store struct {
	mu        sync.Mutex
	barbers   map[int64]*barber.Barber
	st        state
	nextID    int64
	failErr   error
	slotLocks []string
}

// ErrSlotNotLocked is returned by Insert when cancelled rows must block the
// slot but the transaction never took LockSlot. Postgres would let such an
// insert race a concurrent cancellation.
var ErrSlotNotLocked = errors.New("memstore: insert blocking cancelled slots without LockSlot")

var (
	_ shared.UnitOfWork            = (*Store)(nil)
	_ queries.ScheduleReadStore    = (*Store)(nil)
	_ queries.ReservationReadStore = (*Store)(nil)
)

func New(roster ...*barber.Barber) *Store {
	s := &Store{
		barbers: make(map[int64]*barber.Barber, len(roster)),
		st:      state{deliveries: map[string]Delivery{}},
	}
	for _, b := range roster {
		s.barbers[b.ID()] = b
	}
	return s
}

// FailWith makes every following operation return err until cleared with nil.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return infra.WrapRepoErr("failed to begin transaction", s.failErr, infra.KindUnavailable)
	}

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{s: s, locked: map[string]bool{}}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &commandReads{s: s, locked: false}
}

// ---- read side ----

func (s *Store) ListBarbers(_ context.Context) ([]*barber.Barber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, infra.WrapRepoErr("failed to list barbers", s.failErr, infra.KindUnavailable)
	}
	return s.roster(), nil
}

func (s *Store) ListBookings(_ context.Context, date slot.Date) ([]schedule.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by date", s.failErr, infra.KindUnavailable)
	}

	var out []schedule.Booking
	for _, a := range s.st.appointments {
		if !a.Date().Equal(date) {
			continue
		}
		owner := s.userByID(a.UserID())
		out = append(out, schedule.Booking{
			AppointmentID: a.ID(),
			Time:          a.Time(),
			Status:        a.Status(),
			BarberID:      a.BarberID(),
			UserName:      owner.Name().Value(),
			UserEmail:     owner.Email().Value(),
			CreatedAt:     a.CreatedAt(),
		})
	}
	return out, nil
}

func (s *Store) ListByUserEmail(_ context.Context, email string, from slot.Date) ([]*queries.ReservationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by user", s.failErr, infra.KindUnavailable)
	}

	var out []*queries.ReservationView
	for _, a := range s.sortedAppointments() {
		owner := s.userByID(a.UserID())
		if owner.Email().Value() != email || a.Date().Before(from) {
			continue
		}
		v := &queries.ReservationView{
			ID:          a.ID(),
			Date:        a.Date().Key(),
			TimeSlot:    a.Time().Format12(),
			Time24:      a.Time().Format24(),
			BarberID:    a.BarberID(),
			Status:      a.Status().String(),
			CreatedAt:   a.CreatedAt(),
			CancelledAt: a.CancelledAt(),
		}
		if b, ok := s.barbers[a.BarberID()]; ok {
			v.BarberName = b.Name()
			v.BarberProfileImage = b.ProfileImage()
		}
		out = append(out, v)
	}
	return out, nil
}

// ---- inspection helpers ----

func (s *Store) Appointments() []*appointment.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedAppointments()
}

func (s *Store) Users() []*user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.users)
}

func (s *Store) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.events)
}

func (s *Store) Deliveries() []Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Delivery, 0, len(s.st.deliveries))
	for _, d := range s.st.deliveries {
		out = append(out, d)
	}
	return out
}

// SlotLocks lists every "date time" key passed to LockSlot, in call order.
func (s *Store) SlotLocks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.slotLocks)
}

// MarkPublished stamps every outbox event, as the relay would.
func (s *Store) MarkPublished(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.events {
		if s.st.events[i].PublishedAt == nil {
			t := at
			s.st.events[i].PublishedAt = &t
		}
	}
}

// SeedUser stores u as if the webhook or a booking had created it.
func (s *Store) SeedUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users = append(s.st.users, u)
}

// SeedAppointment stores a without any booking checks.
func (s *Store) SeedAppointment(a *appointment.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.appointments = append(s.st.appointments, cloneAppointment(a))
}

// SeedDelivery records a webhook delivery received at.
func (s *Store) SeedDelivery(id, eventType string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.deliveries[id] = Delivery{ID: id, EventType: eventType, ReceivedAt: at}
}

// ---- internals (callers hold mu) ----

func (s *Store) roster() []*barber.Barber {
	out := make([]*barber.Barber, 0, len(s.barbers))
	for _, b := range s.barbers {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b *barber.Barber) int { return int(a.ID() - b.ID()) })
	return out
}

func (s *Store) sortedAppointments() []*appointment.Appointment {
	out := slices.Clone(s.st.appointments)
	slices.SortStableFunc(out, func(a, b *appointment.Appointment) int {
		if c := a.Date().Compare(b.Date()); c != 0 {
			return c
		}
		if c := a.Time().Compare(b.Time()); c != 0 {
			return c
		}
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	return out
}

func (s *Store) userByID(id uuid.UUID) *user.User {
	for _, u := range s.st.users {
		if u.ID() == id {
			return u
		}
	}
	return nil
}

func (s *Store) userByEmail(email string) (int, *user.User) {
	for i, u := range s.st.users {
		if u.Email().Value() == email {
			return i, u
		}
	}
	return -1, nil
}

func (st state) clone() state {
	out := state{
		users:        slices.Clone(st.users),
		appointments: make([]*appointment.Appointment, 0, len(st.appointments)),
		events:       slices.Clone(st.events),
		deliveries:   make(map[string]Delivery, len(st.deliveries)),
	}
	for _, a := range st.appointments {
		out.appointments = append(out.appointments, cloneAppointment(a))
	}
	for k, v := range st.deliveries {
		out.deliveries[k] = v
	}
	return out
}

func cloneAppointment(a *appointment.Appointment) *appointment.Appointment {
	return appointment.Reconstruct(a.ID(), a.UserID(), a.BarberID(), a.Date(), a.Time(),
		a.Status(), a.CreatedAt(), a.UpdatedAt(), a.CancelledAt())
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// ---- transaction ----

type memTx struct {
	s      *Store
	locked map[string]bool
}

func slotKey(date slot.Date, t slot.Time) string {
	return date.Key() + " " + t.Format24()
}

func (t *memTx) Users() shared.UserRepository               { return (*userRepo)(t) }
func (t *memTx) Appointments() shared.AppointmentRepository { return (*appointmentRepo)(t) }
func (t *memTx) Events() shared.EventRepository             { return (*eventRepo)(t) }
func (t *memTx) Deliveries() shared.DeliveryRepository      { return (*deliveryRepo)(t) }
func (t *memTx) Reads() shared.CommandReads                 { return &commandReads{s: t.s, locked: true} }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

type commandReads struct {
	s      *Store
	locked bool
}

func (r *commandReads) BarberByID(_ context.Context, id int64) (*barber.Barber, error) {
	if !r.locked {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if r.s.failErr != nil {
		return nil, infra.WrapRepoErr("failed to get barber", r.s.failErr, infra.KindUnavailable)
	}
	b, ok := r.s.barbers[id]
	if !ok {
		return nil, infra.WrapRepoErr("barber not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return b, nil
}

type userRepo memTx

func (r *userRepo) EnsureByEmail(_ context.Context, _ sqlc.DBTX, u *user.User) (*user.User, error) {
	if _, existing := r.s.userByEmail(u.Email().Value()); existing != nil {
		return existing, nil
	}
	r.s.st.users = append(r.s.st.users, u)
	return u, nil
}

func (r *userRepo) SyncExternal(_ context.Context, _ sqlc.DBTX, u *user.User) (*user.User, bool, error) {
	if ext := u.ExternalID(); ext != nil {
		for _, other := range r.s.st.users {
			if other.ExternalID() != nil && *other.ExternalID() == *ext && other.Email() != u.Email() {
				return nil, false, infra.WrapRepoErr("failed to upsert external user", uniqueViolation("users_external_id_key"))
			}
		}
	}

	i, existing := r.s.userByEmail(u.Email().Value())
	if existing == nil {
		r.s.st.users = append(r.s.st.users, u)
		return u, true, nil
	}

	ext := existing.ExternalID()
	if ext == nil {
		ext = u.ExternalID()
	}
	updated := user.Reconstruct(existing.ID(), ext, existing.Name(), existing.Email(), existing.CreatedAt(), u.UpdatedAt())
	r.s.st.users[i] = updated
	return updated, false, nil
}

type appointmentRepo memTx

func (r *appointmentRepo) Insert(_ context.Context, _ sqlc.DBTX, appt *appointment.Appointment, blockCancelled bool) (bool, error) {
	if blockCancelled && !r.locked[slotKey(appt.Date(), appt.Time())] {
		return false, ErrSlotNotLocked
	}
	for _, a := range r.s.st.appointments {
		if !a.Date().Equal(appt.Date()) || a.Time() != appt.Time() {
			continue
		}
		if a.IsBooked() || blockCancelled {
			return false, nil
		}
	}
	if r.s.userByID(appt.UserID()) == nil {
		return false, infra.WrapRepoErr("failed to insert appointment", &pgconn.PgError{Code: "23503"})
	}
	r.s.st.appointments = append(r.s.st.appointments, cloneAppointment(appt))
	return true, nil
}

func (r *appointmentRepo) LockSlot(_ context.Context, _ sqlc.DBTX, date slot.Date, t slot.Time) ([]shared.SlotClaim, error) {
	r.locked[slotKey(date, t)] = true
	r.s.slotLocks = append(r.s.slotLocks, slotKey(date, t))
	var claims []shared.SlotClaim
	for _, a := range r.s.sortedAppointments() {
		if !a.Date().Equal(date) || a.Time() != t {
			continue
		}
		owner := r.s.userByID(a.UserID())
		claim := shared.SlotClaim{
			Appointment: cloneAppointment(a),
			OwnerName:   owner.Name().Value(),
			OwnerEmail:  owner.Email().Value(),
		}
		if b, ok := r.s.barbers[a.BarberID()]; ok {
			claim.BarberName = b.Name()
		}
		claims = append(claims, claim)
	}
	return claims, nil
}

func (r *appointmentRepo) MarkCancelled(_ context.Context, _ sqlc.DBTX, appt *appointment.Appointment) (bool, error) {
	for i, a := range r.s.st.appointments {
		if a.ID() != appt.ID() {
			continue
		}
		if !a.IsBooked() {
			return false, nil
		}
		r.s.st.appointments[i] = cloneAppointment(appt)
		return true, nil
	}
	return false, nil
}

type eventRepo memTx

func (r *eventRepo) Append(_ context.Context, _ sqlc.DBTX, e shared.OutboxEvent) error {
	r.s.nextID++
	r.s.st.events = append(r.s.st.events, Event{ID: r.s.nextID, OutboxEvent: e})
	return nil
}

func (r *eventRepo) PurgePublished(_ context.Context, _ sqlc.DBTX, before time.Time) (int64, error) {
	var n int64
	kept := r.s.st.events[:0:0]
	for _, e := range r.s.st.events {
		if e.PublishedAt != nil && e.PublishedAt.Before(before) {
			n++
			continue
		}
		kept = append(kept, e)
	}
	r.s.st.events = kept
	return n, nil
}

type deliveryRepo memTx

func (r *deliveryRepo) Record(_ context.Context, _ sqlc.DBTX, deliveryID, eventType string, at time.Time) (bool, error) {
	if _, seen := r.s.st.deliveries[deliveryID]; seen {
		return false, nil
	}
	r.s.st.deliveries[deliveryID] = Delivery{ID: deliveryID, EventType: eventType, ReceivedAt: at}
	return true, nil
}

func (r *deliveryRepo) Purge(_ context.Context, _ sqlc.DBTX, before time.Time) (int64, error) {
	var n int64
	for id, d := range r.s.st.deliveries {
		if d.ReceivedAt.Before(before) {
			delete(r.s.st.deliveries, id)
			n++
		}
	}
	return n, nil
}
