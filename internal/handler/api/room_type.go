package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomTypeHandler struct {
	q     queries.RoomTypeQueries
	avail queries.AvailabilityQueries
}

func NewRoomTypeHandler(q queries.RoomTypeQueries, avail queries.AvailabilityQueries) *RoomTypeHandler {
	return &RoomTypeHandler{q: q, avail: avail}
}

// @Summary List room types
// @Description List the room types of an accommodation
// @Tags room-types
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {array} resdto.RoomTypeResponse
// @Failure 400 {object} httperr.Response
// @Router /accommodations/{id}/room-types [get]
func (h *RoomTypeHandler) ListByAccommodation(c *gin.Context) {
	accommodationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	views, err := h.q.ListByAccommodation(c.Request.Context(), accommodationID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomTypeViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get room type
// @Tags room-types
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-types/{id} [get]
func (h *RoomTypeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomTypeView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Check availability
// @Description Remaining rooms and quoted price for a stay, read live from the database
// @Tags room-types
// @Produce json
// @Param id path string true "Room type ID"
// @Param check_in query string true "YYYY-MM-DD"
// @Param check_out query string true "YYYY-MM-DD"
// @Param rooms query int false "Rooms requested (default 1)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-types/{id}/availability [get]
func (h *RoomTypeHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "check_in and check_out are required", nil)
		return
	}

	view, err := h.avail.Check(c.Request.Context(), q.ToQuery(id))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
