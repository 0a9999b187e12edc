package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `id, booking_id, user_id, amount_minor, currency, status, transaction_id, client_handle, created_at, updated_at`

func scanPayment(row pgx.Row) (Payment, error) {
	var i Payment
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.UserID,
		&i.AmountMinor,
		&i.Currency,
		&i.Status,
		&i.TransactionID,
		&i.ClientHandle,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createPayment = `-- name: CreatePayment :exec
INSERT INTO payments (
    id, booking_id, user_id, amount_minor, currency, status, transaction_id, client_handle, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type CreatePaymentParams struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	UserID        uuid.UUID
	AmountMinor   int64
	Currency      string
	Status        string
	TransactionID string
	ClientHandle  pgtype.Text
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) error {
	_, err := db.Exec(ctx, createPayment,
		arg.ID,
		arg.BookingID,
		arg.UserID,
		arg.AmountMinor,
		arg.Currency,
		arg.Status,
		arg.TransactionID,
		arg.ClientHandle,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getPaymentByBookingID = `-- name: GetPaymentByBookingID :one
SELECT ` + paymentColumns + `
FROM payments
WHERE booking_id = $1
`

func (q *Queries) GetPaymentByBookingID(ctx context.Context, db DBTX, bookingID uuid.UUID) (Payment, error) {
	return scanPayment(db.QueryRow(ctx, getPaymentByBookingID, bookingID))
}

const getPaymentByBookingIDForUpdate = `-- name: GetPaymentByBookingIDForUpdate :one
SELECT ` + paymentColumns + `
FROM payments
WHERE booking_id = $1
FOR UPDATE
`

func (q *Queries) GetPaymentByBookingIDForUpdate(ctx context.Context, db DBTX, bookingID uuid.UUID) (Payment, error) {
	return scanPayment(db.QueryRow(ctx, getPaymentByBookingIDForUpdate, bookingID))
}

const getPaymentByTransactionID = `-- name: GetPaymentByTransactionID :one
SELECT ` + paymentColumns + `
FROM payments
WHERE transaction_id = $1
`

func (q *Queries) GetPaymentByTransactionID(ctx context.Context, db DBTX, transactionID string) (Payment, error) {
	return scanPayment(db.QueryRow(ctx, getPaymentByTransactionID, transactionID))
}

const updatePaymentStatus = `-- name: UpdatePaymentStatus :execrows
UPDATE payments
SET status = $2,
    updated_at = $3
WHERE id = $1
`

type UpdatePaymentStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdatePaymentStatus(ctx context.Context, db DBTX, arg UpdatePaymentStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updatePaymentStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
