package api

import (
	"net/http"

	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/handler/httperr"
	"hotel-ops/internal/handler/middleware"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingActor  = errors.New("authenticated user missing from context")
	errImageTooLarge = errors.New("uploaded image exceeds size limit")
)

// requireActor pulls the authenticated caller from the request context,
// aborting with 401 when the auth middleware did not run.
func requireActor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return uuid.Nil, "", false
	}
	return actorID, role, true
}
