//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/pkg/ptr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/common/testutil"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockRoomTypes    *commandsmock.MockRoomTypeCommands
	mockBookings     *commandsmock.MockBookingCommands
	mockRoomTypeRead *queriesmock.MockRoomTypeQueries
	mockBookingRead  *queriesmock.MockBookingQueries
	handler          *api.AdminHandler
	admin            shared.Actor
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomTypes = commandsmock.NewMockRoomTypeCommands(s.mockCtrl)
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockRoomTypeRead = queriesmock.NewMockRoomTypeQueries(s.mockCtrl)
	s.mockBookingRead = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockRoomTypes, s.mockBookings, s.mockRoomTypeRead, s.mockBookingRead)
	s.admin = shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin}

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.admin.UserID)
		c.Set("user_role", s.admin.Role)
		c.Next()
	}

	s.router.POST("/admin/room-types", authMiddleware, s.handler.CreateRoomType)
	s.router.PATCH("/admin/room-types/:id", authMiddleware, s.handler.UpdateRoomType)
	s.router.POST("/admin/bookings/:id/refund", authMiddleware, s.handler.RefundPayment)
	s.router.POST("/admin/bookings/:id/complete", authMiddleware, s.handler.CompleteBooking)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestCreateRoomType
// ================================================================================

func (s *AdminHandlerTestSuite) TestCreateRoomType() {
	url := "/admin/room-types"
	b := builder.NewRoomTypeBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 with the stored room type", func() {
		gomock.InOrder(
			s.mockRoomTypes.EXPECT().CreateRoomType(gomock.Any(), b.BuildCommand()).Return(view.ID, nil),
			s.mockRoomTypeRead.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/room-types/" + view.ID.String()})
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: accommodationId", mutate: testutil.Field("accommodationId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: nightlyPrice", mutate: testutil.Field("nightlyPrice", nil), expectCode: http.StatusBadRequest},
			{name: "capacity zero", mutate: testutil.Field("capacity", 0), expectCode: http.StatusBadRequest},
			{name: "negative inventory", mutate: testutil.Field("totalInventory", -1), expectCode: http.StatusBadRequest},
			{name: "currency too long", mutate: testutil.Field("currency", "dollars"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{"bad price", commands.ErrValidation, http.StatusBadRequest},
			{"unknown accommodation", commands.ErrAccommodationNotFound, http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRoomTypes.EXPECT().CreateRoomType(gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.err.Error())
			})
		}
	})
}

// ================================================================================
// TestUpdateRoomType
// ================================================================================

func (s *AdminHandlerTestSuite) TestUpdateRoomType() {
	view := builder.NewRoomTypeBuilder().BuildView()
	url := "/admin/room-types/" + view.ID.String()

	s.Run("success: only sent fields are passed on", func() {
		gomock.InOrder(
			s.mockRoomTypes.EXPECT().UpdateRoomType(gomock.Any(), view.ID, commands.UpdateRoomTypeRequest{
				TotalInventory: ptr.To(0),
			}).Return(nil),
			s.mockRoomTypeRead.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"totalInventory": 0}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when nothing to update", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No fields to update")
	})

	s.Run("error: 400 on invalid capacity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"capacity": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 for an unknown room type", func() {
		s.mockRoomTypes.EXPECT().UpdateRoomType(gomock.Any(), view.ID, gomock.Any()).Return(commands.ErrRoomTypeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "Suite"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room type not found")
	})
}

// ================================================================================
// TestBookingActions
// ================================================================================

func (s *AdminHandlerTestSuite) TestRefundPayment() {
	view := builder.NewBookingBuilder().BuildView()
	view.PaymentStatus = "refunded"
	url := "/admin/bookings/" + view.ID.String() + "/refund"

	s.Run("success: returns the refunded booking", func() {
		gomock.InOrder(
			s.mockBookings.EXPECT().RefundPayment(gomock.Any(), view.ID, s.admin).Return(nil),
			s.mockBookingRead.EXPECT().GetByID(gomock.Any(), s.admin, view.ID).Return(view, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("refunded", response.PaymentStatus)
	})

	s.Run("error: 409 when nothing was paid", func() {
		s.mockBookings.EXPECT().RefundPayment(gomock.Any(), view.ID, gomock.Any()).Return(commands.ErrInvalidState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not allowed in the current state")
	})

	s.Run("error: 502 when the provider rejects the refund", func() {
		s.mockBookings.EXPECT().RefundPayment(gomock.Any(), view.ID, gomock.Any()).Return(commands.ErrPaymentGateway).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment provider unavailable")
	})
}

func (s *AdminHandlerTestSuite) TestCompleteBooking() {
	view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusCompleted }).BuildView()
	url := "/admin/bookings/" + view.ID.String() + "/complete"

	s.Run("success", func() {
		gomock.InOrder(
			s.mockBookings.EXPECT().CompleteBooking(gomock.Any(), view.ID, s.admin).Return(nil),
			s.mockBookingRead.EXPECT().GetByID(gomock.Any(), s.admin, view.ID).Return(view, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
	})

	s.Run("error: 400 on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/nope/complete", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
