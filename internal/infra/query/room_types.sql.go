package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomTypeColumns = `id, accommodation_id, name, nightly_price_minor, currency, capacity, total_inventory, created_at, updated_at`

func scanRoomType(row pgx.Row) (RoomType, error) {
	var i RoomType
	err := row.Scan(
		&i.ID,
		&i.AccommodationID,
		&i.Name,
		&i.NightlyPriceMinor,
		&i.Currency,
		&i.Capacity,
		&i.TotalInventory,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getRoomTypeByID = `-- name: GetRoomTypeByID :one
SELECT ` + roomTypeColumns + `
FROM room_types
WHERE id = $1
`

func (q *Queries) GetRoomTypeByID(ctx context.Context, db DBTX, id uuid.UUID) (RoomType, error) {
	return scanRoomType(db.QueryRow(ctx, getRoomTypeByID, id))
}

const lockRoomTypeByID = `-- name: LockRoomTypeByID :one
SELECT ` + roomTypeColumns + `
FROM room_types
WHERE id = $1
FOR UPDATE
`

// LockRoomTypeByID serializes every booking writer of one room type.
func (q *Queries) LockRoomTypeByID(ctx context.Context, db DBTX, id uuid.UUID) (RoomType, error) {
	return scanRoomType(db.QueryRow(ctx, lockRoomTypeByID, id))
}

const listRoomTypesByAccommodation = `-- name: ListRoomTypesByAccommodation :many
SELECT ` + roomTypeColumns + `
FROM room_types
WHERE accommodation_id = $1
ORDER BY nightly_price_minor ASC, name ASC, id ASC
`

func (q *Queries) ListRoomTypesByAccommodation(ctx context.Context, db DBTX, accommodationID uuid.UUID) ([]RoomType, error) {
	rows, err := db.Query(ctx, listRoomTypesByAccommodation, accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RoomType
	for rows.Next() {
		i, err := scanRoomType(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createRoomType = `-- name: CreateRoomType :exec
INSERT INTO room_types (
    id, accommodation_id, name, nightly_price_minor, currency, capacity, total_inventory, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreateRoomTypeParams struct {
	ID                uuid.UUID
	AccommodationID   uuid.UUID
	Name              string
	NightlyPriceMinor int64
	Currency          string
	Capacity          int32
	TotalInventory    int32
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

func (q *Queries) CreateRoomType(ctx context.Context, db DBTX, arg CreateRoomTypeParams) error {
	_, err := db.Exec(ctx, createRoomType,
		arg.ID,
		arg.AccommodationID,
		arg.Name,
		arg.NightlyPriceMinor,
		arg.Currency,
		arg.Capacity,
		arg.TotalInventory,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateRoomType = `-- name: UpdateRoomType :execrows
UPDATE room_types
SET name = $2,
    nightly_price_minor = $3,
    capacity = $4,
    total_inventory = $5,
    updated_at = $6
WHERE id = $1
`

type UpdateRoomTypeParams struct {
	ID                uuid.UUID
	Name              string
	NightlyPriceMinor int64
	Capacity          int32
	TotalInventory    int32
	UpdatedAt         pgtype.Timestamptz
}

func (q *Queries) UpdateRoomType(ctx context.Context, db DBTX, arg UpdateRoomTypeParams) (int64, error) {
	result, err := db.Exec(ctx, updateRoomType,
		arg.ID,
		arg.Name,
		arg.NightlyPriceMinor,
		arg.Capacity,
		arg.TotalInventory,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
