package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertIdempotencyKey = `-- name: InsertIdempotencyKey :execrows
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO NOTHING
`

type InsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

// InsertIdempotencyKey affects no row when the key is already taken. A
// concurrent insert of the same key blocks until the first transaction ends.
func (q *Queries) InsertIdempotencyKey(ctx context.Context, db DBTX, arg InsertIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, insertIdempotencyKey, arg.Key, arg.UserID, arg.Endpoint, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getIdempotencyKeyForUpdate = `-- name: GetIdempotencyKeyForUpdate :one
SELECT key, user_id, endpoint, request_hash, status, result_booking_id, expires_at, created_at, updated_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2
FOR UPDATE
`

type GetIdempotencyKeyForUpdateParams struct {
	Key    uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) GetIdempotencyKeyForUpdate(ctx context.Context, db DBTX, arg GetIdempotencyKeyForUpdateParams) (IdempotencyKey, error) {
	row := db.QueryRow(ctx, getIdempotencyKeyForUpdate, arg.Key, arg.UserID)
	var i IdempotencyKey
	err := row.Scan(
		&i.Key,
		&i.UserID,
		&i.Endpoint,
		&i.RequestHash,
		&i.Status,
		&i.ResultBookingID,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const reclaimIdempotencyKey = `-- name: ReclaimIdempotencyKey :execrows
UPDATE idempotency_keys
SET endpoint = $3,
    request_hash = $4,
    status = 'processing',
    result_booking_id = NULL,
    expires_at = $5,
    updated_at = now()
WHERE key = $1 AND user_id = $2 AND expires_at <= $6
`

type ReclaimIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
	Now         pgtype.Timestamptz
}

func (q *Queries) ReclaimIdempotencyKey(ctx context.Context, db DBTX, arg ReclaimIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, reclaimIdempotencyKey,
		arg.Key,
		arg.UserID,
		arg.Endpoint,
		arg.RequestHash,
		arg.ExpiresAt,
		arg.Now,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const completeIdempotencyKey = `-- name: CompleteIdempotencyKey :execrows
UPDATE idempotency_keys
SET status = 'completed',
    result_booking_id = $3,
    updated_at = now()
WHERE key = $1 AND user_id = $2
`

type CompleteIdempotencyKeyParams struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	ResultBookingID pgtype.UUID
}

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, arg CompleteIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, completeIdempotencyKey, arg.Key, arg.UserID, arg.ResultBookingID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
