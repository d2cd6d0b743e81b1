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

type HousekeepingHandler struct {
	cmds commands.HousekeepingCommands
	q    queries.TaskQueries
}

func NewHousekeepingHandler(cmds commands.HousekeepingCommands, q queries.TaskQueries) *HousekeepingHandler {
	return &HousekeepingHandler{cmds: cmds, q: q}
}

// @Summary Create cleaning task
// @Tags housekeeping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTaskRequest true "Create task request"
// @Success 201 {object} resdto.TaskResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /housekeeping/tasks [post]
func (h *HousekeepingHandler) Create(c *gin.Context) {
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.CreateTask(c.Request.Context(), req.ToInput(), actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
		case errors.Is(err, commands.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid task data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTaskSnapshot(snap))
}

// @Summary List cleaning tasks
// @Description List tasks, optionally filtered by status
// @Tags housekeeping
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending, in-progress, completed)"
// @Success 200 {array} resdto.TaskResponse
// @Failure 400 {object} map[string]string
// @Router /housekeeping/tasks [get]
func (h *HousekeepingHandler) List(c *gin.Context) {
	if _, _, ok := requireActor(c); !ok {
		return
	}

	views, err := h.q.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidStatus) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status filter", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": resdto.FromTaskViews(views)})
}

// @Summary Get cleaning task
// @Tags housekeeping
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} resdto.TaskResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /housekeeping/tasks/{id} [get]
func (h *HousekeepingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrTaskNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Task not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTaskView(view))
}

// @Summary Update cleaning task
// @Description Patch priority, assignee, or notes. Status changes go through the advance endpoint.
// @Tags housekeeping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body reqdto.UpdateTaskRequest true "Update task request"
// @Success 200 {object} resdto.TaskResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /housekeeping/tasks/{id} [patch]
func (h *HousekeepingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateTaskRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.UpdateTask(c.Request.Context(), id, req.ToInput(), actorID, role)
	if err != nil {
		h.abortTaskMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTaskSnapshot(snap))
}

// @Summary Advance cleaning task
// @Description Move a task forward through pending, in-progress, completed
// @Tags housekeeping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body reqdto.AdvanceTaskRequest true "Target status"
// @Success 200 {object} resdto.TaskResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /housekeeping/tasks/{id}/advance [post]
func (h *HousekeepingHandler) Advance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.AdvanceTaskRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.AdvanceTask(c.Request.Context(), id, req.Status, actorID, role)
	if err != nil {
		if errors.Is(err, commands.ErrIllegalTaskTransition) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Transition not allowed", nil)
			return
		}
		h.abortTaskMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTaskSnapshot(snap))
}

// @Summary Delete cleaning task
// @Description Remove a task. Restricted to administrators.
// @Tags housekeeping
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /housekeeping/tasks/{id} [delete]
func (h *HousekeepingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.cmds.DeleteTask(c.Request.Context(), id, actorID, role); err != nil {
		h.abortTaskMutation(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HousekeepingHandler) abortTaskMutation(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTaskNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Task not found", nil)
	case errors.Is(err, commands.ErrPermissionDenied):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid task data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
