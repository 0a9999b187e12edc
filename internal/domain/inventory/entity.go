package inventory

import (
	"errors"
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidName           = errors.New("room type name is required")
	ErrInvalidNightlyRate    = errors.New("nightly price must be greater than zero")
	ErrInvalidCapacity       = errors.New("capacity must be greater than zero")
	ErrInvalidTotalInventory = errors.New("total inventory cannot be negative")
	ErrNoChanges             = errors.New("no changes requested")
)

const MaxNameLength = 120

type RoomType struct {
	id              uuid.UUID
	accommodationID uuid.UUID
	name            string
	nightlyRate     money.Money
	capacity        int
	totalInventory  int
	createdAt       time.Time
	updatedAt       time.Time
}

// Changes carries an administrative edit; nil fields are left untouched.
type Changes struct {
	Name           *string
	NightlyRate    *money.Money
	Capacity       *int
	TotalInventory *int
}

func (c Changes) IsEmpty() bool {
	return c.Name == nil && c.NightlyRate == nil && c.Capacity == nil && c.TotalInventory == nil
}

func NewRoomType(
	accommodationID uuid.UUID,
	name string,
	nightlyRate money.Money,
	capacity, totalInventory int,
	now time.Time,
) (*RoomType, error) {
	rt := &RoomType{
		id:              uuid.New(),
		accommodationID: accommodationID,
		name:            strings.TrimSpace(name),
		nightlyRate:     nightlyRate,
		capacity:        capacity,
		totalInventory:  totalInventory,
		createdAt:       now,
		updatedAt:       now,
	}
	if err := rt.validate(); err != nil {
		return nil, err
	}
	return rt, nil
}

func ReconstructRoomType(
	id, accommodationID uuid.UUID,
	name string,
	nightlyRate money.Money,
	capacity, totalInventory int,
	createdAt, updatedAt time.Time,
) *RoomType {
	return &RoomType{
		id:              id,
		accommodationID: accommodationID,
		name:            name,
		nightlyRate:     nightlyRate,
		capacity:        capacity,
		totalInventory:  totalInventory,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Apply edits price, capacity or inventory. Lowering inventory below what is
// already booked is accepted; it only blocks new bookings.
func (rt *RoomType) Apply(c Changes, now time.Time) error {
	if c.IsEmpty() {
		return ErrNoChanges
	}

	next := *rt
	if c.Name != nil {
		trimmed := strings.TrimSpace(*c.Name)
		next.name = trimmed
	}
	patch.Apply(&next.nightlyRate, c.NightlyRate)
	patch.Apply(&next.capacity, c.Capacity)
	patch.Apply(&next.totalInventory, c.TotalInventory)

	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*rt = next
	return nil
}

func (rt *RoomType) validate() error {
	if rt.name == "" || len(rt.name) > MaxNameLength {
		return ErrInvalidName
	}
	if !rt.nightlyRate.IsPositive() {
		return ErrInvalidNightlyRate
	}
	if rt.capacity <= 0 || rt.capacity > booking.MaxCount {
		return ErrInvalidCapacity
	}
	if rt.totalInventory < 0 || rt.totalInventory > booking.MaxCount {
		return ErrInvalidTotalInventory
	}
	return nil
}

func (rt *RoomType) Spec() booking.RoomTypeSpec {
	return booking.RoomTypeSpec{
		ID:          rt.id,
		NightlyRate: rt.nightlyRate,
		Capacity:    rt.capacity,
	}
}

func (rt *RoomType) ID() uuid.UUID              { return rt.id }
func (rt *RoomType) AccommodationID() uuid.UUID { return rt.accommodationID }
func (rt *RoomType) Name() string               { return rt.name }
func (rt *RoomType) NightlyRate() money.Money   { return rt.nightlyRate }
func (rt *RoomType) Capacity() int              { return rt.capacity }
func (rt *RoomType) TotalInventory() int        { return rt.totalInventory }
func (rt *RoomType) CreatedAt() time.Time       { return rt.createdAt }
func (rt *RoomType) UpdatedAt() time.Time       { return rt.updatedAt }
