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

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.CreateCustomer(c.Request.Context(), req.ToInput(), actorID, role)
	if err != nil {
		h.abortCustomerMutation(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCustomerSnapshot(snap))
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CustomerResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	if _, _, ok := requireActor(c); !ok {
		return
	}

	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": resdto.FromCustomerViews(views)})
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Update customer request"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [patch]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCustomerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.UpdateCustomer(c.Request.Context(), id, req.ToInput(), actorID, role)
	if err != nil {
		h.abortCustomerMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerSnapshot(snap))
}

// @Summary Delete customer
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.cmds.DeleteCustomer(c.Request.Context(), id, actorID, role); err != nil {
		h.abortCustomerMutation(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) abortCustomerMutation(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCustomerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
	case errors.Is(err, commands.ErrPermissionDenied):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
