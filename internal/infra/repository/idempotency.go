package repository

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	InsertIdempotencyKey(ctx context.Context, db query.DBTX, arg query.InsertIdempotencyKeyParams) (int64, error)
	GetIdempotencyKeyForUpdate(ctx context.Context, db query.DBTX, arg query.GetIdempotencyKeyForUpdateParams) (query.IdempotencyKey, error)
	ReclaimIdempotencyKey(ctx context.Context, db query.DBTX, arg query.ReclaimIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db query.DBTX, arg query.CompleteIdempotencyKeyParams) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      query.DBTX
	now     func() time.Time
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db query.DBTX, now func() time.Time) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
		now:     now,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, rec shared.IdempotencyRecord) (bool, error) {
	affected, err := r.queries.InsertIdempotencyKey(ctx, r.db, query.InsertIdempotencyKeyParams{
		Key:         rec.Key,
		UserID:      rec.UserID,
		Endpoint:    rec.Endpoint,
		RequestHash: rec.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return affected == 1, nil
}

func (r *IdempotencyRepository) FindForUpdate(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKeyForUpdate(ctx, r.db, query.GetIdempotencyKeyForUpdateParams{Key: key, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &shared.IdempotencyRecord{
		Key:             row.Key,
		UserID:          row.UserID,
		Endpoint:        row.Endpoint,
		RequestHash:     row.RequestHash,
		Status:          shared.IdempotencyStatus(row.Status),
		ResultBookingID: pgconv.UUIDPtrFromPgtype(row.ResultBookingID),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) Reclaim(ctx context.Context, rec shared.IdempotencyRecord) error {
	affected, err := r.queries.ReclaimIdempotencyKey(ctx, r.db, query.ReclaimIdempotencyKeyParams{
		Key:         rec.Key,
		UserID:      rec.UserID,
		Endpoint:    rec.Endpoint,
		RequestHash: rec.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
		Now:         pgconv.TimeToPgtype(r.now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reclaim idempotency key", err)
	}
	if affected == 0 {
		return infra.NotFound("no expired idempotency key to reclaim")
	}
	return nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key, userID, bookingID uuid.UUID) error {
	affected, err := r.queries.CompleteIdempotencyKey(ctx, r.db, query.CompleteIdempotencyKeyParams{
		Key:             key,
		UserID:          userID,
		ResultBookingID: pgconv.UUIDPtrToPgtype(&bookingID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if affected == 0 {
		return infra.NotFound("idempotency key not found")
	}
	return nil
}
