//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/repository"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"
	repositorymock "hotel-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)

func newIdempotencyRepo(t *testing.T) (*repository.IdempotencyRepository, *repositorymock.MockIdempotencyWriteQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	repo := repository.NewIdempotencyRepository(mockQueries, &mockDBTX{}, func() time.Time { return fixedNow })
	return repo, mockQueries
}

func idempotencyRecord() shared.IdempotencyRecord {
	return shared.IdempotencyRecord{
		Key:         uuid.New(),
		UserID:      uuid.New(),
		Endpoint:    "POST /api/bookings",
		RequestHash: "3f2a",
		Status:      shared.IdempotencyProcessing,
		ExpiresAt:   fixedNow.Add(24 * time.Hour),
	}
}

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectNew  bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "fresh key", affected: 1, expectNew: true},
		{name: "key already taken", affected: 0, expectNew: false},
		{name: "database error", queryErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries := newIdempotencyRepo(t)
			rec := idempotencyRecord()

			mockQueries.EXPECT().
				InsertIdempotencyKey(ctx, gomock.Any(), query.InsertIdempotencyKeyParams{
					Key:         rec.Key,
					UserID:      rec.UserID,
					Endpoint:    rec.Endpoint,
					RequestHash: rec.RequestHash,
					ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
				}).
				Return(tc.affected, tc.queryErr)

			inserted, err := repo.TryInsert(ctx, rec)

			if tc.queryErr != nil {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectNew, inserted)
		})
	}
}

func TestIdempotencyRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	rec := idempotencyRecord()
	bookingID := uuid.New()

	t.Run("completed record", func(t *testing.T) {
		repo, mockQueries := newIdempotencyRepo(t)
		mockQueries.EXPECT().
			GetIdempotencyKeyForUpdate(ctx, gomock.Any(), query.GetIdempotencyKeyForUpdateParams{Key: rec.Key, UserID: rec.UserID}).
			Return(query.IdempotencyKey{
				Key:             rec.Key,
				UserID:          rec.UserID,
				Endpoint:        rec.Endpoint,
				RequestHash:     rec.RequestHash,
				Status:          string(shared.IdempotencyCompleted),
				ResultBookingID: pgtype.UUID{Bytes: bookingID, Valid: true},
				ExpiresAt:       pgconv.TimeToPgtype(rec.ExpiresAt),
			}, nil)

		got, err := repo.FindForUpdate(ctx, rec.Key, rec.UserID)
		require.NoError(t, err)
		assert.Equal(t, shared.IdempotencyCompleted, got.Status)
		require.NotNil(t, got.ResultBookingID)
		assert.Equal(t, bookingID, *got.ResultBookingID)
		assert.True(t, rec.ExpiresAt.Equal(got.ExpiresAt))
	})

	t.Run("processing record has no result", func(t *testing.T) {
		repo, mockQueries := newIdempotencyRepo(t)
		mockQueries.EXPECT().GetIdempotencyKeyForUpdate(ctx, gomock.Any(), gomock.Any()).Return(query.IdempotencyKey{
			Key:    rec.Key,
			UserID: rec.UserID,
			Status: string(shared.IdempotencyProcessing),
		}, nil)

		got, err := repo.FindForUpdate(ctx, rec.Key, rec.UserID)
		require.NoError(t, err)
		assert.Nil(t, got.ResultBookingID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mockQueries := newIdempotencyRepo(t)
		mockQueries.EXPECT().GetIdempotencyKeyForUpdate(ctx, gomock.Any(), gomock.Any()).Return(query.IdempotencyKey{}, pgx.ErrNoRows)

		_, err := repo.FindForUpdate(ctx, rec.Key, rec.UserID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestIdempotencyRepository_Reclaim(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the clock so only expired rows are taken", func(t *testing.T) {
		repo, mockQueries := newIdempotencyRepo(t)
		rec := idempotencyRecord()

		mockQueries.EXPECT().
			ReclaimIdempotencyKey(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.ReclaimIdempotencyKeyParams) (int64, error) {
				assert.True(t, fixedNow.Equal(arg.Now.Time))
				assert.Equal(t, rec.RequestHash, arg.RequestHash)
				return 1, nil
			})

		assert.NoError(t, repo.Reclaim(ctx, rec))
	})

	t.Run("live key is not reclaimed", func(t *testing.T) {
		repo, mockQueries := newIdempotencyRepo(t)
		mockQueries.EXPECT().ReclaimIdempotencyKey(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := repo.Reclaim(ctx, idempotencyRecord())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestIdempotencyRepository_Complete(t *testing.T) {
	ctx := context.Background()
	key, userID, bookingID := uuid.New(), uuid.New(), uuid.New()

	t.Run("records the booking", func(t *testing.T) {
		repo, mockQueries := newIdempotencyRepo(t)
		mockQueries.EXPECT().
			CompleteIdempotencyKey(ctx, gomock.Any(), query.CompleteIdempotencyKeyParams{
				Key:             key,
				UserID:          userID,
				ResultBookingID: pgtype.UUID{Bytes: bookingID, Valid: true},
			}).
			Return(int64(1), nil)

		assert.NoError(t, repo.Complete(ctx, key, userID, bookingID))
	})

	t.Run("database error", func(t *testing.T) {
		repo, mockQueries := newIdempotencyRepo(t)
		mockQueries.EXPECT().CompleteIdempotencyKey(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errDBConnectionLost)

		err := repo.Complete(ctx, key, userID, bookingID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
