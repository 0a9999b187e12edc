//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/pkg/pgconv"
	readstoremock "hotel-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func roomTypeRow(id, accommodationID uuid.UUID) query.RoomType {
	now := pgconv.TimeToPgtype(time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC))
	return query.RoomType{
		ID:                id,
		AccommodationID:   accommodationID,
		Name:              "Deluxe Double",
		NightlyPriceMinor: 58000,
		Currency:          "usd",
		Capacity:          2,
		TotalInventory:    5,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestRoomTypeReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	roomTypeID := uuid.New()
	accommodationID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockRoomTypeReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success",
			setupMock: func(mock *readstoremock.MockRoomTypeReadQueries) {
				mock.EXPECT().GetRoomTypeByID(ctx, gomock.Any(), roomTypeID).Return(roomTypeRow(roomTypeID, accommodationID), nil)
			},
		},
		{
			name: "error: room type not found",
			setupMock: func(mock *readstoremock.MockRoomTypeReadQueries) {
				mock.EXPECT().GetRoomTypeByID(ctx, gomock.Any(), roomTypeID).Return(query.RoomType{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockRoomTypeReadQueries) {
				mock.EXPECT().GetRoomTypeByID(ctx, gomock.Any(), roomTypeID).Return(query.RoomType{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockRoomTypeReadQueries(ctrl)
			store := readstore.NewRoomTypeReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, actualError := store.FindRoomType(ctx, roomTypeID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, roomTypeID, result.ID)
			assert.Equal(t, accommodationID, result.AccommodationID)
			assert.Equal(t, "580.00", result.NightlyPrice)
			assert.Equal(t, int64(58000), result.NightlyPriceMinor)
			assert.Equal(t, 2, result.Capacity)
			assert.Equal(t, 5, result.TotalInventory)
		})
	}
}

func TestRoomTypeReadStore_FindByAccommodation(t *testing.T) {
	ctx := context.Background()
	accommodationID := uuid.New()

	t.Run("maps every row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRoomTypeReadQueries(ctrl)
		store := readstore.NewRoomTypeReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListRoomTypesByAccommodation(ctx, gomock.Any(), accommodationID).Return([]query.RoomType{
			roomTypeRow(uuid.New(), accommodationID),
			roomTypeRow(uuid.New(), accommodationID),
		}, nil)

		views, err := store.FindByAccommodation(ctx, accommodationID)
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRoomTypeReadQueries(ctrl)
		store := readstore.NewRoomTypeReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListRoomTypesByAccommodation(ctx, gomock.Any(), accommodationID).Return(nil, errDBConnectionLost)

		_, err := store.FindByAccommodation(ctx, accommodationID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRoomTypeReadStore_OverlappingHolds(t *testing.T) {
	ctx := context.Background()
	roomTypeID := uuid.New()
	period, err := booking.ParseStayPeriod("2030-06-10", "2030-06-13")
	require.NoError(t, err)

	t.Run("converts rows into holds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRoomTypeReadQueries(ctrl)
		store := readstore.NewRoomTypeReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().
			ListOverlappingHolds(ctx, gomock.Any(), query.ListOverlappingHoldsParams{
				RoomTypeID:   roomTypeID,
				CheckInDate:  date("2030-06-10"),
				CheckOutDate: date("2030-06-13"),
			}).
			Return([]query.ListOverlappingHoldsRow{
				{CheckInDate: date("2030-06-09"), CheckOutDate: date("2030-06-11"), NumRooms: 2},
				{CheckInDate: date("2030-06-12"), CheckOutDate: date("2030-06-15"), NumRooms: 1},
			}, nil)

		holds, err := store.OverlappingHolds(ctx, roomTypeID, period)
		require.NoError(t, err)
		require.Len(t, holds, 2)
		assert.Equal(t, 2, holds[0].Rooms)
		assert.Equal(t, 2, holds[0].Period.Nights())
		assert.Equal(t, 1, holds[1].Rooms)
	})

	t.Run("corrupt row is a db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRoomTypeReadQueries(ctrl)
		store := readstore.NewRoomTypeReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListOverlappingHolds(ctx, gomock.Any(), gomock.Any()).Return([]query.ListOverlappingHoldsRow{
			{CheckInDate: date("2030-06-12"), CheckOutDate: date("2030-06-12"), NumRooms: 1},
		}, nil)

		_, err := store.OverlappingHolds(ctx, roomTypeID, period)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
