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

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary Create room
// @Description Register a new room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Create room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.CreateRoom(c.Request.Context(), req.ToInput(), actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
		case errors.Is(err, commands.ErrDuplicateRoomNumber):
			httperr.AbortWithError(c, http.StatusConflict, err, "Room number already registered", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomSnapshot(snap))
}

// @Summary List rooms
// @Description List rooms with occupancy derived from active bookings
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Failure 401 {object} map[string]string
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}

	views, err := h.q.List(c.Request.Context(), actorID, role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": resdto.FromRoomViews(views)})
}

// @Summary Get room
// @Description Get one room with derived occupancy
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Update room
// @Description Patch stored room fields
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Update room request"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.UpdateRoom(c.Request.Context(), id, req.ToInput(), actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, commands.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomSnapshot(snap))
}

// @Summary Delete room
// @Description Delete a room without active bookings
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.cmds.DeleteRoom(c.Request.Context(), id, actorID, role); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, commands.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
		case errors.Is(err, commands.ErrRoomHasActiveBooking):
			httperr.AbortWithError(c, http.StatusConflict, err, "Room still has an active booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
