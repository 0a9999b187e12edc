package repository

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/repository/converter"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomTypeWriteQueries interface {
	LockRoomTypeByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.RoomType, error)
	ListOverlappingHolds(ctx context.Context, db query.DBTX, arg query.ListOverlappingHoldsParams) ([]query.ListOverlappingHoldsRow, error)
	CreateRoomType(ctx context.Context, db query.DBTX, arg query.CreateRoomTypeParams) error
	UpdateRoomType(ctx context.Context, db query.DBTX, arg query.UpdateRoomTypeParams) (int64, error)
}

type RoomTypeRepository struct {
	queries RoomTypeWriteQueries
	db      query.DBTX
}

func NewRoomTypeRepository(queries RoomTypeWriteQueries, db query.DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomTypeRepository) LockByID(ctx context.Context, id uuid.UUID) (*inventory.RoomType, error) {
	row, err := r.queries.LockRoomTypeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room type", err)
	}
	rt, err := converter.RoomTypeFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room type", err, infra.KindDBFailure)
	}
	return rt, nil
}

func (r *RoomTypeRepository) OverlappingHolds(ctx context.Context, roomTypeID uuid.UUID, period booking.StayPeriod) ([]inventory.Hold, error) {
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

func (r *RoomTypeRepository) Create(ctx context.Context, rt *inventory.RoomType) error {
	params, err := converter.RoomTypeToCreateParams(rt)
	if err != nil {
		return infra.WrapRepoErr("room type does not fit its columns", err, infra.KindCheckViolated)
	}
	if err := r.queries.CreateRoomType(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create room type", err)
	}
	return nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *inventory.RoomType) error {
	params, err := converter.RoomTypeToUpdateParams(rt)
	if err != nil {
		return infra.WrapRepoErr("room type does not fit its columns", err, infra.KindCheckViolated)
	}
	affected, err := r.queries.UpdateRoomType(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update room type", err)
	}
	if affected == 0 {
		return infra.NotFound("room type not found")
	}
	return nil
}
