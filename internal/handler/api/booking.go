package api

import (
	"errors"
	"net/http"

	reqdto "hotel-ops/internal/handler/dto/request"
	resdto "hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/handler/httperr"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Check a guest into a room
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.CreateBooking(c.Request.Context(), req.ToInput(), actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
		case errors.Is(err, commands.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingSnapshot(snap))
}

// @Summary List bookings
// @Description List bookings visible to the caller
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}

	views, err := h.q.List(c.Request.Context(), actorID, role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": resdto.FromBookingViews(views)})
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, queries.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Record not visible", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking
// @Description Patch guest details, stay dates, or move the booking to another room
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.UpdateBooking(c.Request.Context(), id, req.ToInput(), actorID, role)
	if err != nil {
		h.abortBookingMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snap))
}

// @Summary Close booking
// @Description Check the guest out, release the room, and open a post-checkout cleaning task
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/close [post]
func (h *BookingHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}

	snap, err := h.cmds.CloseBooking(c.Request.Context(), id, actorID, role)
	if err != nil {
		h.abortBookingMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snap))
}

func (h *BookingHandler) abortBookingMutation(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errors.Is(err, commands.ErrPermissionDenied):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
	case errors.Is(err, commands.ErrBookingAlreadyClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking already closed", nil)
	case errors.Is(err, commands.ErrRoomOccupied):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room already has an active booking", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
