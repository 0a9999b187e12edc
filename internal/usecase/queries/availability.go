package queries

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityRequest struct {
	RoomTypeID uuid.UUID
	CheckIn    string
	CheckOut   string
	Rooms      int
}

// AvailabilityReadStore reads straight from the database; listings cached
// elsewhere are never consulted here.
type AvailabilityReadStore interface {
	FindRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	OverlappingHolds(ctx context.Context, roomTypeID uuid.UUID, period booking.StayPeriod) ([]inventory.Hold, error)
}

type AvailabilityQueries interface {
	Check(ctx context.Context, req AvailabilityRequest) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store   AvailabilityReadStore
	pricing booking.PriceCalculator
}

func NewAvailabilityQueries(store AvailabilityReadStore, pricing booking.PriceCalculator) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, pricing: pricing}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, req AvailabilityRequest) (*AvailabilityView, error) {
	period, err := booking.ParseStayPeriod(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}
	if req.Rooms < 1 {
		return nil, errs.Mark(booking.ErrInvalidRoomCount, ErrInvalidQuery)
	}

	rt, err := q.store.FindRoomType(ctx, req.RoomTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	holds, err := q.store.OverlappingHolds(ctx, rt.ID, period)
	if err != nil {
		return nil, err
	}
	availability := inventory.Tally(rt.TotalInventory, period, req.Rooms, holds)

	rate, err := money.FromMinor(rt.NightlyPriceMinor, rt.Currency)
	if err != nil {
		return nil, errs.Wrap(err, "room type has an invalid nightly price")
	}
	quote, err := q.pricing.Compute(rate, period, req.Rooms)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuery)
	}

	return &AvailabilityView{
		RoomTypeID:     rt.ID,
		CheckIn:        period.CheckIn().Format(booking.DateLayout),
		CheckOut:       period.CheckOut().Format(booking.DateLayout),
		Nights:         period.Nights(),
		RequestedRooms: req.Rooms,
		TotalInventory: availability.TotalInventory,
		Remaining:      max(availability.Remaining(), 0),
		Available:      availability.Available(),
		QuotedPrice:    quote.String(),
		Currency:       quote.Currency(),
	}, nil
}
