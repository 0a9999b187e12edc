package converter

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
)

func RoomTypeToCreateParams(rt *inventory.RoomType) (query.CreateRoomTypeParams, error) {
	capacity, inv, err := roomTypeCounts(rt)
	if err != nil {
		return query.CreateRoomTypeParams{}, err
	}
	return query.CreateRoomTypeParams{
		ID:                rt.ID(),
		AccommodationID:   rt.AccommodationID(),
		Name:              rt.Name(),
		NightlyPriceMinor: rt.NightlyRate().Minor(),
		Currency:          rt.NightlyRate().Currency(),
		Capacity:          capacity,
		TotalInventory:    inv,
		CreatedAt:         pgconv.TimeToPgtype(rt.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(rt.UpdatedAt()),
	}, nil
}

func RoomTypeToUpdateParams(rt *inventory.RoomType) (query.UpdateRoomTypeParams, error) {
	capacity, inv, err := roomTypeCounts(rt)
	if err != nil {
		return query.UpdateRoomTypeParams{}, err
	}
	return query.UpdateRoomTypeParams{
		ID:                rt.ID(),
		Name:              rt.Name(),
		NightlyPriceMinor: rt.NightlyRate().Minor(),
		Capacity:          capacity,
		TotalInventory:    inv,
		UpdatedAt:         pgconv.TimeToPgtype(rt.UpdatedAt()),
	}, nil
}

func roomTypeCounts(rt *inventory.RoomType) (capacity, totalInventory int32, err error) {
	if capacity, err = pgconv.IntToInt32(rt.Capacity()); err != nil {
		return 0, 0, errs.Wrapf(err, "room type %s capacity", rt.ID())
	}
	if totalInventory, err = pgconv.IntToInt32(rt.TotalInventory()); err != nil {
		return 0, 0, errs.Wrapf(err, "room type %s total inventory", rt.ID())
	}
	return capacity, totalInventory, nil
}

func RoomTypeFromRow(row query.RoomType) (*inventory.RoomType, error) {
	rate, err := money.FromMinor(row.NightlyPriceMinor, row.Currency)
	if err != nil {
		return nil, errs.Wrapf(err, "room type %s has an invalid nightly price", row.ID)
	}
	return inventory.ReconstructRoomType(
		row.ID,
		row.AccommodationID,
		row.Name,
		rate,
		int(row.Capacity),
		int(row.TotalInventory),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func HoldsFromRows(rows []query.ListOverlappingHoldsRow) ([]inventory.Hold, error) {
	holds := make([]inventory.Hold, 0, len(rows))
	for _, row := range rows {
		period, err := booking.NewStayPeriod(pgconv.DateFromPgtype(row.CheckInDate), pgconv.DateFromPgtype(row.CheckOutDate))
		if err != nil {
			return nil, err
		}
		holds = append(holds, inventory.Hold{Period: period, Rooms: int(row.NumRooms)})
	}
	return holds, nil
}
