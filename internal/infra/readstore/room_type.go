package readstore

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/repository/converter"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomTypeReadQueries interface {
	GetRoomTypeByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.RoomType, error)
	ListRoomTypesByAccommodation(ctx context.Context, db query.DBTX, accommodationID uuid.UUID) ([]query.RoomType, error)
	ListOverlappingHolds(ctx context.Context, db query.DBTX, arg query.ListOverlappingHoldsParams) ([]query.ListOverlappingHoldsRow, error)
}

// RoomTypeReadStore serves both the listing endpoints and live availability.
type RoomTypeReadStore struct {
	queries RoomTypeReadQueries
	db      query.DBTX
}

func NewRoomTypeReadStore(queries RoomTypeReadQueries, db query.DBTX) *RoomTypeReadStore {
	return &RoomTypeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomTypeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	row, err := r.queries.GetRoomTypeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room type by id", err)
	}
	return toRoomTypeView(row), nil
}

// FindRoomType is FindByID under the name availability checks expect.
func (r *RoomTypeReadStore) FindRoomType(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	return r.FindByID(ctx, id)
}

func (r *RoomTypeReadStore) FindByAccommodation(ctx context.Context, accommodationID uuid.UUID) ([]*queries.RoomTypeView, error) {
	rows, err := r.queries.ListRoomTypesByAccommodation(ctx, r.db, accommodationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types by accommodation", err)
	}
	views := make([]*queries.RoomTypeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRoomTypeView(row))
	}
	return views, nil
}

func (r *RoomTypeReadStore) OverlappingHolds(ctx context.Context, roomTypeID uuid.UUID, period booking.StayPeriod) ([]inventory.Hold, error) {
	rows, err := r.queries.ListOverlappingHolds(ctx, r.db, query.ListOverlappingHoldsParams{
		RoomTypeID:   roomTypeID,
		CheckInDate:  pgconv.DateToPgtype(period.CheckIn()),
		CheckOutDate: pgconv.DateToPgtype(period.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}
	holds, err := converter.HoldsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert overlapping bookings", err, infra.KindDBFailure)
	}
	return holds, nil
}

func toRoomTypeView(row query.RoomType) *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:                row.ID,
		AccommodationID:   row.AccommodationID,
		Name:              row.Name,
		NightlyPrice:      formatMinor(row.NightlyPriceMinor, row.Currency),
		NightlyPriceMinor: row.NightlyPriceMinor,
		Currency:          row.Currency,
		Capacity:          int(row.Capacity),
		TotalInventory:    int(row.TotalInventory),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
