//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/repository"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/tests/common/builder"
	repositorymock "hotel-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomTypeRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	stored := builder.NewRoomTypeBuilder().BuildStored()
	row := query.RoomType{
		ID:                stored.ID(),
		AccommodationID:   stored.AccommodationID(),
		Name:              stored.Name(),
		NightlyPriceMinor: stored.NightlyRate().Minor(),
		Currency:          stored.NightlyRate().Currency(),
		Capacity:          int32(stored.Capacity()),
		TotalInventory:    int32(stored.TotalInventory()),
		CreatedAt:         pgconv.TimeToPgtype(stored.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(stored.UpdatedAt()),
	}

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRoomTypeWriteQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row locked and converted",
			setupMock: func(mock *repositorymock.MockRoomTypeWriteQueries) {
				mock.EXPECT().LockRoomTypeByID(ctx, gomock.Any(), stored.ID()).Return(row, nil)
			},
		},
		{
			name: "error: room type not found",
			setupMock: func(mock *repositorymock.MockRoomTypeWriteQueries) {
				mock.EXPECT().LockRoomTypeByID(ctx, gomock.Any(), stored.ID()).Return(query.RoomType{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *repositorymock.MockRoomTypeWriteQueries) {
				mock.EXPECT().LockRoomTypeByID(ctx, gomock.Any(), stored.ID()).Return(query.RoomType{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: stored currency is unknown",
			setupMock: func(mock *repositorymock.MockRoomTypeWriteQueries) {
				corrupt := row
				corrupt.Currency = "xx"
				mock.EXPECT().LockRoomTypeByID(ctx, gomock.Any(), stored.ID()).Return(corrupt, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
			repo := repository.NewRoomTypeRepository(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			got, actualError := repo.LockByID(ctx, stored.ID())

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, stored.ID(), got.ID())
			assert.True(t, stored.NightlyRate().Equal(got.NightlyRate()))
			assert.Equal(t, stored.TotalInventory(), got.TotalInventory())
		})
	}
}

func TestRoomTypeRepository_OverlappingHolds(t *testing.T) {
	ctx := context.Background()
	stored := builder.NewRoomTypeBuilder().BuildStored()
	period, err := booking.ParseStayPeriod("2030-06-10", "2030-06-13")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
	repo := repository.NewRoomTypeRepository(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().
		ListOverlappingHolds(ctx, gomock.Any(), query.ListOverlappingHoldsParams{
			RoomTypeID:   stored.ID(),
			CheckInDate:  pgconv.DateToPgtype(period.CheckIn()),
			CheckOutDate: pgconv.DateToPgtype(period.CheckOut()),
		}).
		Return([]query.ListOverlappingHoldsRow{{
			CheckInDate:  pgconv.DateToPgtype(time.Date(2030, 6, 12, 0, 0, 0, 0, time.UTC)),
			CheckOutDate: pgconv.DateToPgtype(time.Date(2030, 6, 14, 0, 0, 0, 0, time.UTC)),
			NumRooms:     3,
		}}, nil)

	holds, err := repo.OverlappingHolds(ctx, stored.ID(), period)
	require.NoError(t, err)
	require.Len(t, holds, 1)
	assert.Equal(t, 3, holds[0].Rooms)
	assert.True(t, holds[0].Period.Overlaps(period))
}

func TestRoomTypeRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		returnError error
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "error: unknown accommodation", returnError: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "error: database error", returnError: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
			repo := repository.NewRoomTypeRepository(mockQueries, &mockDBTX{})

			rt, err := builder.NewRoomTypeBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().
				CreateRoomType(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreateRoomTypeParams) error {
					assert.Equal(t, rt.ID(), arg.ID)
					assert.Equal(t, int64(58000), arg.NightlyPriceMinor)
					assert.Equal(t, int32(5), arg.TotalInventory)
					return tc.returnError
				})

			actualError := repo.Create(ctx, rt)

			if tc.returnError != nil {
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				return
			}
			assert.NoError(t, actualError)
		})
	}
}

func TestRoomTypeRepository_Update(t *testing.T) {
	ctx := context.Background()
	stored := builder.NewRoomTypeBuilder().BuildStored()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
		repo := repository.NewRoomTypeRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().UpdateRoomType(ctx, gomock.Any(), gomock.Any()).Return(int64(1), nil)
		assert.NoError(t, repo.Update(ctx, stored))
	})

	t.Run("no row affected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
		repo := repository.NewRoomTypeRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().UpdateRoomType(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)
		assert.True(t, infra.IsKind(repo.Update(ctx, stored), infra.KindNotFound))
	})

	t.Run("check violation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomTypeWriteQueries(ctrl)
		repo := repository.NewRoomTypeRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().UpdateRoomType(ctx, gomock.Any(), gomock.Any()).Return(int64(0), &pgconn.PgError{Code: "23514"})
		assert.True(t, infra.IsKind(repo.Update(ctx, stored), infra.KindCheckViolated))
	})
}
