//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"hotel-booking/internal/domain/user"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	bookingURL      = "/api/bookings/%s"
	availabilityURL = "/api/room-types/%s/availability?check_in=%s&check_out=%s&rooms=%d"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) seedRoomType(inventory int) uuid.UUID {
	t := s.T()
	accommodationID := dbtest.CreateTestAccommodation(t, s.DB, "Harbour Hotel")
	f := dbtest.DefaultRoomType()
	f.TotalInventory = inventory
	return dbtest.CreateTestRoomType(t, s.DB, accommodationID, f)
}

func bookingBody(roomTypeID uuid.UUID, checkIn, checkOut string, rooms int) map[string]any {
	return map[string]any{
		"roomTypeId": roomTypeID,
		"checkIn":    checkIn,
		"checkOut":   checkOut,
		"numRooms":   rooms,
		"numGuests":  rooms,
		"guestName":  "Ada Lovelace",
		"guestEmail": "ada@example.com",
	}
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("create, pay, read and cancel", func() {
		t := s.T()
		roomTypeID := s.seedRoomType(3)
		_, token := s.JWT.NewGuest(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingBody(roomTypeID, "2030-06-10", "2030-06-13", 2), token)
		var created resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "pending", created.Status)
		require.Equal(t, "720.00", created.TotalPrice)
		require.NotEmpty(t, created.PaymentHandle)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, roomTypeID, "2030-06-12", "2030-06-14", 1), nil, "")
		var avail resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &avail)
		require.Equal(t, 1, avail.Remaining)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(bookingURL, created.BookingID)+"/payment/confirm", nil, token)
		var paid resdto.PaymentResultResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		require.Equal(t, "confirmed", paid.Outcome)
		require.Equal(t, "paid", dbtest.PaymentStatus(t, s.DB, created.BookingID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.BookingID), nil, token)
		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		want := resdto.BookingResponse{
			ID:            created.BookingID,
			RoomTypeID:    roomTypeID,
			RoomTypeName:  "Double Room",
			CheckIn:       "2030-06-10",
			CheckOut:      "2030-06-13",
			Nights:        3,
			NumRooms:      2,
			NumGuests:     2,
			TotalPrice:    "720.00",
			Currency:      "usd",
			Status:        "confirmed",
			PaymentStatus: "paid",
			Guest:         resdto.GuestResponse{Name: "Ada Lovelace", Email: "ada@example.com"},
		}
		if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(resdto.BookingResponse{},
			"UserID", "AccommodationID", "Payment", "CreatedAt", "UpdatedAt")); diff != "" {
			t.Errorf("booking mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingURL, created.BookingID)+"/cancel", nil, token)
		var cancelled resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)
		require.Equal(t, 0, dbtest.CountHolding(t, s.DB, roomTypeID))
	})

	s.Run("another guest cannot read the booking", func() {
		t := s.T()
		roomTypeID := s.seedRoomType(1)
		_, owner := s.JWT.NewGuest(t)
		_, stranger := s.JWT.NewGuest(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingBody(roomTypeID, "2030-07-01", "2030-07-02", 1), owner)
		var created resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.BookingID), nil, stranger)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		admin := s.JWT.GenerateToken(t, uuid.New(), user.RoleAdmin)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.BookingID), nil, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("requires a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")

		expired := s.JWT.CreateExpiredToken(s.T(), uuid.New(), user.RoleGuest)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, expired)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *BookingSuite) TestIdempotentCreate() {
	s.Run("replay returns the first booking", func() {
		t := s.T()
		roomTypeID := s.seedRoomType(2)
		_, token := s.JWT.NewGuest(t)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		body := bookingBody(roomTypeID, "2030-08-01", "2030-08-03", 1)

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, token, headers)
		var a resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, first, http.StatusCreated, &a)

		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, token, headers)
		var b resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, second, http.StatusCreated, &b)
		require.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))
		require.Equal(t, a.BookingID, b.BookingID)
		require.Equal(t, 1, dbtest.CountHolding(t, s.DB, roomTypeID))

		body["numGuests"] = 2
		third := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, token, headers)
		require.Equal(t, http.StatusUnprocessableEntity, third.Code, third.Body.String())
	})
}

func (s *BookingSuite) TestConcurrentBookingsNeverOversell() {
	s.Run("parallel requests for the last rooms", func() {
		t := s.T()
		const inventory, attempts = 3, 12
		roomTypeID := s.seedRoomType(inventory)

		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				token := s.JWT.GenerateToken(t, uuid.New(), user.RoleGuest)
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
					bookingBody(roomTypeID, "2030-09-10", "2030-09-12", 1), token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		var created, conflicts int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, inventory, created)
		require.Equal(t, attempts-inventory, conflicts)
		require.Equal(t, inventory, dbtest.CountHolding(t, s.DB, roomTypeID))
	})
}

func (s *BookingSuite) TestListBookings() {
	s.Run("pages through the caller's bookings", func() {
		t := s.T()
		roomTypeID := s.seedRoomType(5)
		_, token := s.JWT.NewGuest(t)

		for day := 1; day <= 3; day++ {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
				bookingBody(roomTypeID, fmt.Sprintf("2030-10-%02d", day), fmt.Sprintf("2030-10-%02d", day+1), 1), token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2", nil, token)
		var page1 resdto.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page1)
		require.Len(t, page1.Items, 2)
		require.NotEmpty(t, page1.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2&after="+page1.NextCursor, nil, token)
		var page2 resdto.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page2)
		require.Len(t, page2.Items, 1)
		require.Empty(t, page2.NextCursor)

		seen := map[uuid.UUID]bool{}
		for _, it := range append(page1.Items, page2.Items...) {
			require.False(t, seen[it.ID], "booking listed twice")
			seen[it.ID] = true
		}
	})
}
