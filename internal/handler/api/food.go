package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "hotel-ops/internal/handler/dto/request"
	resdto "hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/handler/httperr"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxImageBytes caps food image uploads at 5 MiB.
const maxImageBytes = 5 << 20

type FoodHandler struct {
	cmds commands.FoodCommands
	q    queries.FoodQueries
}

func NewFoodHandler(cmds commands.FoodCommands, q queries.FoodQueries) *FoodHandler {
	return &FoodHandler{cmds: cmds, q: q}
}

// @Summary Create food item
// @Tags foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFoodRequest true "Create food request"
// @Success 201 {object} resdto.FoodResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /foods [post]
func (h *FoodHandler) Create(c *gin.Context) {
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.CreateFood(c.Request.Context(), req.ToInput(), actorID, role)
	if err != nil {
		h.abortFoodMutation(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFoodSnapshot(snap))
}

// @Summary List food items
// @Tags foods
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FoodResponse
// @Router /foods [get]
func (h *FoodHandler) List(c *gin.Context) {
	if _, _, ok := requireActor(c); !ok {
		return
	}

	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": resdto.FromFoodViews(views)})
}

// @Summary Get food item
// @Tags foods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Food ID"
// @Success 200 {object} resdto.FoodResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /foods/{id} [get]
func (h *FoodHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrFoodNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Food item not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFoodView(view))
}

// @Summary Update food item
// @Tags foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Food ID"
// @Param request body reqdto.UpdateFoodRequest true "Update food request"
// @Success 200 {object} resdto.FoodResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /foods/{id} [patch]
func (h *FoodHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateFoodRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	snap, err := h.cmds.UpdateFood(c.Request.Context(), id, req.ToInput(), actorID, role)
	if err != nil {
		h.abortFoodMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFoodSnapshot(snap))
}

// @Summary Upload food image
// @Description Attach or replace the image for a food item
// @Tags foods
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Food ID"
// @Param image formData file true "Image file"
// @Success 200 {object} resdto.FoodResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /foods/{id}/image [post]
func (h *FoodHandler) UploadImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Image file required", nil)
		return
	}
	if fileHeader.Size > maxImageBytes {
		httperr.AbortWithError(c, http.StatusBadRequest, errImageTooLarge, "Image exceeds size limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unable to read image", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unable to read image", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	snap, err := h.cmds.UploadFoodImage(c.Request.Context(), id, data, contentType, actorID, role)
	if err != nil {
		h.abortFoodMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFoodSnapshot(snap))
}

// @Summary Delete food item
// @Tags foods
// @Security BearerAuth
// @Param id path string true "Food ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /foods/{id} [delete]
func (h *FoodHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, role, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.cmds.DeleteFood(c.Request.Context(), id, actorID, role); err != nil {
		h.abortFoodMutation(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FoodHandler) abortFoodMutation(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrFoodNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Food item not found", nil)
	case errors.Is(err, commands.ErrPermissionDenied):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid food data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
