package api

import (
	"net/http"
	"strings"

	"hotel-ops/internal/handler/httperr"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/usecase/commands"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

var errEmptyFileKey = errors.New("empty file key")

// FileHandler serves stored blobs (guest documents, food images) by key.
type FileHandler struct {
	blobs commands.BlobStore
}

func NewFileHandler(blobs commands.BlobStore) *FileHandler {
	return &FileHandler{blobs: blobs}
}

// @Summary Serve stored file
// @Description Stream a stored blob by its key
// @Tags files
// @Produce octet-stream
// @Security BearerAuth
// @Param key path string true "File key"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /files/{key} [get]
func (h *FileHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errEmptyFileKey, "File key required", nil)
		return
	}

	data, contentType, err := h.blobs.Fetch(c.Request.Context(), key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "File not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	c.Data(http.StatusOK, contentType, data)
}
