package queries

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra"

	"github.com/google/uuid"
)

type RoomTypeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	FindByAccommodation(ctx context.Context, accommodationID uuid.UUID) ([]*RoomTypeView, error)
}

// RoomTypeCache holds listings per accommodation. A miss is (nil, false, nil).
type RoomTypeCache interface {
	Get(ctx context.Context, accommodationID uuid.UUID) ([]*RoomTypeView, bool, error)
	Set(ctx context.Context, accommodationID uuid.UUID, views []*RoomTypeView) error
}

type RoomTypeQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	ListByAccommodation(ctx context.Context, accommodationID uuid.UUID) ([]*RoomTypeView, error)
}

type roomTypeQueriesImpl struct {
	store RoomTypeReadStore
	cache RoomTypeCache
}

func NewRoomTypeQueries(store RoomTypeReadStore, cache RoomTypeCache) RoomTypeQueries {
	return &roomTypeQueriesImpl{store: store, cache: cache}
}

func (q *roomTypeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListByAccommodation serves from the cache when it can. Cache failures fall
// through to the database.
func (q *roomTypeQueriesImpl) ListByAccommodation(ctx context.Context, accommodationID uuid.UUID) ([]*RoomTypeView, error) {
	views, hit, err := q.cache.Get(ctx, accommodationID)
	if err != nil {
		slog.WarnContext(ctx, "room type cache read failed", "accommodation_id", accommodationID.String(), "error", err.Error())
	}
	if hit {
		return views, nil
	}

	views, err = q.store.FindByAccommodation(ctx, accommodationID)
	if err != nil {
		return nil, err
	}

	if err := q.cache.Set(ctx, accommodationID, views); err != nil {
		slog.WarnContext(ctx, "room type cache write failed", "accommodation_id", accommodationID.String(), "error", err.Error())
	}
	return views, nil
}
