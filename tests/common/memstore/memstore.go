//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use case tests.
// Transactions run one at a time and roll back when fn returns an error.
package memstore

import (
	"context"
	"errors"
	"maps"
	"sync"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type state struct {
	accommodations map[uuid.UUID]struct{}
	roomTypes      map[uuid.UUID]inventory.RoomType
	bookings       map[uuid.UUID]booking.Booking
	payments       map[uuid.UUID]payment.Payment // by booking id
	idempotency    map[idemKey]shared.IdempotencyRecord
}

func (s state) clone() state {
	return state{
		accommodations: maps.Clone(s.accommodations),
		roomTypes:      maps.Clone(s.roomTypes),
		bookings:       maps.Clone(s.bookings),
		payments:       maps.Clone(s.payments),
		idempotency:    maps.Clone(s.idempotency),
	}
}

type Store struct {
	mu      sync.Mutex
	data    state
	commits int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{data: state{
		accommodations: map[uuid.UUID]struct{}{},
		roomTypes:      map[uuid.UUID]inventory.RoomType{},
		bookings:       map[uuid.UUID]booking.Booking{},
		payments:       map[uuid.UUID]payment.Payment{},
		idempotency:    map[idemKey]shared.IdempotencyRecord{},
	}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(ctx, &tx{s: s}); err != nil {
		s.data = snapshot
		return err
	}
	s.commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s, lock: true}
}

// Seeding and inspection helpers

func (s *Store) AddAccommodation(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.accommodations[id] = struct{}{}
}

func (s *Store) SeedRoomType(rt *inventory.RoomType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.accommodations[rt.AccommodationID()] = struct{}{}
	s.data.roomTypes[rt.ID()] = *rt
}

func (s *Store) RoomType(id uuid.UUID) (*inventory.RoomType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt, ok := s.data.roomTypes[id]
	return &rt, ok
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data.bookings[id]
	return &b, ok
}

func (s *Store) Payment(bookingID uuid.UUID) (*payment.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data.payments[bookingID]
	return &p, ok
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.bookings)
}

func (s *Store) Idempotency(key, userID uuid.UUID) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.data.idempotency[idemKey{key: key, userID: userID}]
	return rec, ok
}

// Commits counts successful transactions.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

type tx struct {
	s *Store
}

func (t *tx) Bookings() shared.BookingRepository        { return bookingRepo{t.s} }
func (t *tx) Payments() shared.PaymentRepository        { return paymentRepo{t.s} }
func (t *tx) RoomTypes() shared.RoomTypeRepository      { return roomTypeRepo{t.s} }
func (t *tx) Idempotency() shared.IdempotencyRepository { return idempotencyRepo{t.s} }
func (t *tx) Reads() shared.CommandReads                { return &reads{s: t.s} }

// reads takes the store lock only when used outside a transaction.
type reads struct {
	s    *Store
	lock bool
}

func (r *reads) enter() func() {
	if !r.lock {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *reads) RoomTypeByID(_ context.Context, id uuid.UUID) (*inventory.RoomType, error) {
	defer r.enter()()
	rt, ok := r.s.data.roomTypes[id]
	if !ok {
		return nil, infra.NotFound("room type")
	}
	return &rt, nil
}

func (r *reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	defer r.enter()()
	b, ok := r.s.data.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking")
	}
	return &b, nil
}

func (r *reads) PaymentByBookingID(_ context.Context, bookingID uuid.UUID) (*payment.Payment, error) {
	defer r.enter()()
	p, ok := r.s.data.payments[bookingID]
	if !ok {
		return nil, infra.NotFound("payment")
	}
	return &p, nil
}

func (r *reads) PaymentByTransactionID(_ context.Context, transactionID string) (*payment.Payment, error) {
	defer r.enter()()
	for _, p := range r.s.data.payments {
		if p.TransactionID() == transactionID {
			return &p, nil
		}
	}
	return nil, infra.NotFound("payment")
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.s.data.roomTypes[b.RoomTypeID()]; !ok {
		return infra.WrapRepoErr("failed to create booking", errors.New("room type missing"), infra.KindForeignKeyViolated)
	}
	r.s.data.bookings[b.ID()] = *b
	return nil
}

func (r bookingRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.data.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking")
	}
	return &b, nil
}

func (r bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.s.data.bookings[b.ID()]; !ok {
		return infra.NotFound("booking")
	}
	r.s.data.bookings[b.ID()] = *b
	return nil
}

type paymentRepo struct{ s *Store }

func (r paymentRepo) Create(_ context.Context, p *payment.Payment) error {
	if _, ok := r.s.data.payments[p.BookingID()]; ok {
		return infra.WrapRepoErr("failed to create payment", errors.New("duplicate booking payment"), infra.KindDuplicateKey)
	}
	r.s.data.payments[p.BookingID()] = *p
	return nil
}

func (r paymentRepo) GetByBookingIDForUpdate(_ context.Context, bookingID uuid.UUID) (*payment.Payment, error) {
	p, ok := r.s.data.payments[bookingID]
	if !ok {
		return nil, infra.NotFound("payment")
	}
	return &p, nil
}

func (r paymentRepo) Update(_ context.Context, p *payment.Payment) error {
	if _, ok := r.s.data.payments[p.BookingID()]; !ok {
		return infra.NotFound("payment")
	}
	r.s.data.payments[p.BookingID()] = *p
	return nil
}

type roomTypeRepo struct{ s *Store }

func (r roomTypeRepo) LockByID(_ context.Context, id uuid.UUID) (*inventory.RoomType, error) {
	rt, ok := r.s.data.roomTypes[id]
	if !ok {
		return nil, infra.NotFound("room type")
	}
	return &rt, nil
}

func (r roomTypeRepo) OverlappingHolds(_ context.Context, roomTypeID uuid.UUID, period booking.StayPeriod) ([]inventory.Hold, error) {
	var holds []inventory.Hold
	for _, b := range r.s.data.bookings {
		if b.RoomTypeID() != roomTypeID || !b.Status().HoldsInventory() || !b.Period().Overlaps(period) {
			continue
		}
		holds = append(holds, inventory.Hold{Period: b.Period(), Rooms: b.NumRooms()})
	}
	return holds, nil
}

func (r roomTypeRepo) Create(_ context.Context, rt *inventory.RoomType) error {
	if _, ok := r.s.data.accommodations[rt.AccommodationID()]; !ok {
		return infra.WrapRepoErr("failed to create room type", errors.New("accommodation missing"), infra.KindForeignKeyViolated)
	}
	r.s.data.roomTypes[rt.ID()] = *rt
	return nil
}

func (r roomTypeRepo) Update(_ context.Context, rt *inventory.RoomType) error {
	if _, ok := r.s.data.roomTypes[rt.ID()]; !ok {
		return infra.NotFound("room type")
	}
	r.s.data.roomTypes[rt.ID()] = *rt
	return nil
}

type idempotencyRepo struct{ s *Store }

func (r idempotencyRepo) TryInsert(_ context.Context, rec shared.IdempotencyRecord) (bool, error) {
	k := idemKey{key: rec.Key, userID: rec.UserID}
	if _, ok := r.s.data.idempotency[k]; ok {
		return false, nil
	}
	r.s.data.idempotency[k] = rec
	return true, nil
}

func (r idempotencyRepo) FindForUpdate(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.s.data.idempotency[idemKey{key: key, userID: userID}]
	if !ok {
		return nil, infra.NotFound("idempotency key")
	}
	return &rec, nil
}

func (r idempotencyRepo) Reclaim(_ context.Context, rec shared.IdempotencyRecord) error {
	r.s.data.idempotency[idemKey{key: rec.Key, userID: rec.UserID}] = rec
	return nil
}

func (r idempotencyRepo) Complete(_ context.Context, key, userID, bookingID uuid.UUID) error {
	k := idemKey{key: key, userID: userID}
	rec, ok := r.s.data.idempotency[k]
	if !ok {
		return infra.NotFound("idempotency key")
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultBookingID = &bookingID
	r.s.data.idempotency[k] = rec
	return nil
}

// SetIdempotency overwrites a stored record, e.g. to simulate a request still in flight.
func (s *Store) SetIdempotency(rec shared.IdempotencyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.idempotency[idemKey{key: rec.Key, userID: rec.UserID}] = rec
}
