package api

import (
	"context"
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the /admin routes; the router guards them by role.
type AdminHandler struct {
	roomTypes     commands.RoomTypeCommands
	bookings      commands.BookingCommands
	roomTypeQuery queries.RoomTypeQueries
	bookingQuery  queries.BookingQueries
}

func NewAdminHandler(
	roomTypes commands.RoomTypeCommands,
	bookings commands.BookingCommands,
	roomTypeQuery queries.RoomTypeQueries,
	bookingQuery queries.BookingQueries,
) *AdminHandler {
	return &AdminHandler{
		roomTypes:     roomTypes,
		bookings:      bookings,
		roomTypeQuery: roomTypeQuery,
		bookingQuery:  bookingQuery,
	}
}

// @Summary Create room type
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} resdto.RoomTypeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/room-types [post]
func (h *AdminHandler) CreateRoomType(c *gin.Context) {
	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	id, err := h.roomTypes.CreateRoomType(c.Request.Context(), cmd)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/api/room-types/"+id.String())
	h.renderRoomType(c, id, http.StatusCreated)
}

// @Summary Update room type
// @Description Partial update; invalidates the accommodation listing cache
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param request body reqdto.UpdateRoomTypeRequest true "Fields to change"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/room-types/{id} [patch]
func (h *AdminHandler) UpdateRoomType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "No fields to update", nil)
		return
	}

	if err := h.roomTypes.UpdateRoomType(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.renderRoomType(c, id, http.StatusOK)
}

// @Summary Refund payment
// @Description Refund the paid payment of a booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /admin/bookings/{id}/refund [post]
func (h *AdminHandler) RefundPayment(c *gin.Context) {
	h.bookingAction(c, h.bookings.RefundPayment)
}

// @Summary Complete booking
// @Description Mark a confirmed booking as completed after the stay
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/complete [post]
func (h *AdminHandler) CompleteBooking(c *gin.Context) {
	h.bookingAction(c, h.bookings.CompleteBooking)
}

func (h *AdminHandler) bookingAction(c *gin.Context, action func(ctx context.Context, id uuid.UUID, actor shared.Actor) error) {
	id, actor, ok := bookingTarget(c)
	if !ok {
		return
	}
	if err := action(c.Request.Context(), id, actor); err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	view, err := h.bookingQuery.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AdminHandler) renderRoomType(c *gin.Context, id uuid.UUID, status int) {
	view, err := h.roomTypeQuery.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomTypeView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

func bookingTarget(c *gin.Context) (uuid.UUID, shared.Actor, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, shared.Actor{}, false
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return uuid.Nil, shared.Actor{}, false
	}
	return id, actor, true
}
