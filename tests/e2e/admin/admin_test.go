//go:build e2e

package admin_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotel-booking/internal/domain/user"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) TestRoomTypeManagement() {
	s.Run("admin creates and updates a room type", func() {
		t := s.T()
		accommodationID := dbtest.CreateTestAccommodation(t, s.DB, "Seaside Inn")
		admin := s.JWT.GenerateToken(t, uuid.New(), user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/room-types", map[string]any{
			"accommodationId": accommodationID,
			"name":            "Suite",
			"nightlyPrice":    "250.00",
			"currency":        "usd",
			"capacity":        4,
			"totalInventory":  2,
		}, admin)
		var created resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "250.00", created.NightlyPrice)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/admin/room-types/"+created.ID.String(),
			map[string]any{"totalInventory": 5}, admin)
		var updated resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, 5, updated.TotalInventory)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/accommodations/%s/room-types", accommodationID), nil, "")
		var listing []resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listing)
		require.Len(t, listing, 1)
		require.Equal(t, 5, listing[0].TotalInventory)
	})

	s.Run("guests and staff cannot manage room types", func() {
		t := s.T()
		for _, role := range []user.Role{user.RoleGuest, user.RoleStaff} {
			token := s.JWT.GenerateToken(t, uuid.New(), role)
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/room-types", map[string]any{
				"accommodationId": uuid.New(),
				"name":            "Suite",
				"nightlyPrice":    "250.00",
				"capacity":        2,
				"totalInventory":  1,
			}, token)
			httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
		}
	})

	s.Run("unknown accommodation is a 404", func() {
		t := s.T()
		admin := s.JWT.GenerateToken(t, uuid.New(), user.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/room-types", map[string]any{
			"accommodationId": uuid.New(),
			"name":            "Suite",
			"nightlyPrice":    "250.00",
			"capacity":        2,
			"totalInventory":  1,
		}, admin)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *AdminSuite) TestRefundAndComplete() {
	s.Run("only admins refund, and only once", func() {
		t := s.T()
		accommodationID := dbtest.CreateTestAccommodation(t, s.DB, "Old Town Hostel")
		roomTypeID := dbtest.CreateTestRoomType(t, s.DB, accommodationID, dbtest.DefaultRoomType())
		guestID := uuid.New()
		guest := s.JWT.GenerateToken(t, guestID, user.RoleGuest)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", map[string]any{
			"roomTypeId": roomTypeID,
			"checkIn":    "2031-01-10",
			"checkOut":   "2031-01-11",
			"numRooms":   1,
			"numGuests":  1,
			"guestName":  "Grace Hopper",
			"guestEmail": "grace@example.com",
		}, guest)
		var created resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		bookingPath := "/api/bookings/" + created.BookingID.String()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingPath+"/payment/confirm", nil, guest)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		staff := s.JWT.GenerateToken(t, uuid.New(), user.RoleStaff)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin"+bookingPath+"/refund", nil, staff)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		admin := s.JWT.GenerateToken(t, uuid.New(), user.RoleAdmin)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin"+bookingPath+"/refund", nil, admin)
		var refunded resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &refunded)
		require.Equal(t, "refunded", refunded.PaymentStatus)
		require.Equal(t, "refunded", dbtest.PaymentStatus(t, s.DB, created.BookingID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin"+bookingPath+"/refund", nil, admin)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
