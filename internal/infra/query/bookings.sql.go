package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, user_id, room_type_id, check_in_date, check_out_date, num_rooms, num_guests,
    total_price_minor, currency, status, payment_status, guest_name, guest_email, guest_phone, created_at, updated_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var i Booking
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.RoomTypeID,
		&i.CheckInDate,
		&i.CheckOutDate,
		&i.NumRooms,
		&i.NumGuests,
		&i.TotalPriceMinor,
		&i.Currency,
		&i.Status,
		&i.PaymentStatus,
		&i.GuestName,
		&i.GuestEmail,
		&i.GuestPhone,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createBooking = `-- name: CreateBooking :exec
INSERT INTO bookings (
    id, user_id, room_type_id, check_in_date, check_out_date, num_rooms, num_guests,
    total_price_minor, currency, status, payment_status, guest_name, guest_email, guest_phone, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
`

type CreateBookingParams struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RoomTypeID      uuid.UUID
	CheckInDate     pgtype.Date
	CheckOutDate    pgtype.Date
	NumRooms        int32
	NumGuests       int32
	TotalPriceMinor int64
	Currency        string
	Status          string
	PaymentStatus   string
	GuestName       string
	GuestEmail      string
	GuestPhone      pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.UserID,
		arg.RoomTypeID,
		arg.CheckInDate,
		arg.CheckOutDate,
		arg.NumRooms,
		arg.NumGuests,
		arg.TotalPriceMinor,
		arg.Currency,
		arg.Status,
		arg.PaymentStatus,
		arg.GuestName,
		arg.GuestEmail,
		arg.GuestPhone,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getBookingByID = `-- name: GetBookingByID :one
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const getBookingByIDForUpdate = `-- name: GetBookingByIDForUpdate :one
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetBookingByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByIDForUpdate, id))
}

const updateBookingStatus = `-- name: UpdateBookingStatus :execrows
UPDATE bookings
SET status = $2,
    payment_status = $3,
    updated_at = $4
WHERE id = $1
`

type UpdateBookingStatusParams struct {
	ID            uuid.UUID
	Status        string
	PaymentStatus string
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.PaymentStatus, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listOverlappingHolds = `-- name: ListOverlappingHolds :many
SELECT check_in_date, check_out_date, num_rooms
FROM bookings
WHERE room_type_id = $1
  AND status <> 'cancelled'
  AND check_in_date < $3
  AND check_out_date > $2
`

type ListOverlappingHoldsParams struct {
	RoomTypeID   uuid.UUID
	CheckInDate  pgtype.Date
	CheckOutDate pgtype.Date
}

type ListOverlappingHoldsRow struct {
	CheckInDate  pgtype.Date
	CheckOutDate pgtype.Date
	NumRooms     int32
}

// ListOverlappingHolds applies the half-open overlap test
// existing.check_in < requested.check_out AND existing.check_out > requested.check_in.
func (q *Queries) ListOverlappingHolds(ctx context.Context, db DBTX, arg ListOverlappingHoldsParams) ([]ListOverlappingHoldsRow, error) {
	rows, err := db.Query(ctx, listOverlappingHolds, arg.RoomTypeID, arg.CheckInDate, arg.CheckOutDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListOverlappingHoldsRow
	for rows.Next() {
		var i ListOverlappingHoldsRow
		if err := rows.Scan(&i.CheckInDate, &i.CheckOutDate, &i.NumRooms); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getBookingViewByID = `-- name: GetBookingViewByID :one
SELECT b.id, b.user_id, b.room_type_id, rt.name AS room_type_name, rt.accommodation_id,
       b.check_in_date, b.check_out_date, b.num_rooms, b.num_guests, b.total_price_minor, b.currency,
       b.status, b.payment_status, b.guest_name, b.guest_email, b.guest_phone, b.created_at, b.updated_at,
       p.id AS payment_id, p.status AS payment_row_status, p.transaction_id, p.amount_minor, p.updated_at AS payment_updated_at
FROM bookings b
JOIN room_types rt ON rt.id = b.room_type_id
LEFT JOIN payments p ON p.booking_id = b.id
WHERE b.id = $1
`

type GetBookingViewByIDRow struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	RoomTypeID       uuid.UUID
	RoomTypeName     string
	AccommodationID  uuid.UUID
	CheckInDate      pgtype.Date
	CheckOutDate     pgtype.Date
	NumRooms         int32
	NumGuests        int32
	TotalPriceMinor  int64
	Currency         string
	Status           string
	PaymentStatus    string
	GuestName        string
	GuestEmail       string
	GuestPhone       pgtype.Text
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
	PaymentID        pgtype.UUID
	PaymentRowStatus pgtype.Text
	TransactionID    pgtype.Text
	AmountMinor      pgtype.Int8
	PaymentUpdatedAt pgtype.Timestamptz
}

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (GetBookingViewByIDRow, error) {
	row := db.QueryRow(ctx, getBookingViewByID, id)
	var i GetBookingViewByIDRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.RoomTypeID,
		&i.RoomTypeName,
		&i.AccommodationID,
		&i.CheckInDate,
		&i.CheckOutDate,
		&i.NumRooms,
		&i.NumGuests,
		&i.TotalPriceMinor,
		&i.Currency,
		&i.Status,
		&i.PaymentStatus,
		&i.GuestName,
		&i.GuestEmail,
		&i.GuestPhone,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.PaymentID,
		&i.PaymentRowStatus,
		&i.TransactionID,
		&i.AmountMinor,
		&i.PaymentUpdatedAt,
	)
	return i, err
}

type BookingListRow struct {
	ID              uuid.UUID
	RoomTypeID      uuid.UUID
	RoomTypeName    string
	CheckInDate     pgtype.Date
	CheckOutDate    pgtype.Date
	NumRooms        int32
	TotalPriceMinor int64
	Currency        string
	Status          string
	PaymentStatus   string
	CreatedAt       pgtype.Timestamptz
}

const listBookingsByUserFirstPage = `-- name: ListBookingsByUserFirstPage :many
SELECT b.id, b.room_type_id, rt.name AS room_type_name, b.check_in_date, b.check_out_date, b.num_rooms,
       b.total_price_minor, b.currency, b.status, b.payment_status, b.created_at
FROM bookings b
JOIN room_types rt ON rt.id = b.room_type_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2
`

type ListBookingsByUserFirstPageParams struct {
	UserID uuid.UUID
	Limit  int32
}

func (q *Queries) ListBookingsByUserFirstPage(ctx context.Context, db DBTX, arg ListBookingsByUserFirstPageParams) ([]BookingListRow, error) {
	rows, err := db.Query(ctx, listBookingsByUserFirstPage, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectBookingListRows(rows)
}

const listBookingsByUserKeyset = `-- name: ListBookingsByUserKeyset :many
SELECT b.id, b.room_type_id, rt.name AS room_type_name, b.check_in_date, b.check_out_date, b.num_rooms,
       b.total_price_minor, b.currency, b.status, b.payment_status, b.created_at
FROM bookings b
JOIN room_types rt ON rt.id = b.room_type_id
WHERE b.user_id = $1
  AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4
`

type ListBookingsByUserKeysetParams struct {
	UserID    uuid.UUID
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

func (q *Queries) ListBookingsByUserKeyset(ctx context.Context, db DBTX, arg ListBookingsByUserKeysetParams) ([]BookingListRow, error) {
	rows, err := db.Query(ctx, listBookingsByUserKeyset, arg.UserID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectBookingListRows(rows)
}

func collectBookingListRows(rows pgx.Rows) ([]BookingListRow, error) {
	defer rows.Close()
	var items []BookingListRow
	for rows.Next() {
		var i BookingListRow
		if err := rows.Scan(
			&i.ID,
			&i.RoomTypeID,
			&i.RoomTypeName,
			&i.CheckInDate,
			&i.CheckOutDate,
			&i.NumRooms,
			&i.TotalPriceMinor,
			&i.Currency,
			&i.Status,
			&i.PaymentStatus,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
