//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/handler/api"
	resdto "hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"
	"hotel-ops/tests/common/httptest"
	commandsmock "hotel-ops/tests/mock/commands"
	queriesmock "hotel-ops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HousekeepingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHousekeepingCommands
	mockQueries  *queriesmock.MockTaskQueries
	actorID      uuid.UUID
	actorRole    user.Role
}

func (s *HousekeepingHandlerTestSuite) fakeAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
		c.Next()
	}
}

func (s *HousekeepingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHousekeepingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTaskQueries(s.mockCtrl)
	s.actorID = uuid.New()
	s.actorRole = user.RoleStaff

	handler := api.NewHousekeepingHandler(s.mockCommands, s.mockQueries)
	g := s.router.Group("/housekeeping/tasks", s.fakeAuth())
	g.POST("", handler.Create)
	g.GET("", handler.List)
	g.GET("/:id", handler.Get)
	g.PATCH("/:id", handler.Update)
	g.POST("/:id/advance", handler.Advance)
	g.DELETE("/:id", handler.Delete)
}

func (s *HousekeepingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHousekeepingHandlerSuite(t *testing.T) {
	suite.Run(t, new(HousekeepingHandlerTestSuite))
}

func (s *HousekeepingHandlerTestSuite) taskSnapshot(status string) *commands.TaskSnapshot {
	return &commands.TaskSnapshot{
		ID:         uuid.New(),
		RoomID:     uuid.New(),
		RoomNumber: "204",
		TaskType:   "Standard Clean",
		Status:     status,
		Priority:   "medium",
		CreatedBy:  s.actorID,
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *HousekeepingHandlerTestSuite) TestAdvance() {
	id := uuid.New()
	url := "/housekeeping/tasks/" + id.String() + "/advance"

	s.Run("success: moves the task forward", func() {
		snap := s.taskSnapshot("in-progress")
		s.mockCommands.EXPECT().AdvanceTask(gomock.Any(), id, "in-progress", s.actorID, s.actorRole).
			Return(snap, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "in-progress"}, "")

		var response resdto.TaskResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("in-progress", response.Status)
	})

	s.Run("error: 409 on an illegal transition", func() {
		s.mockCommands.EXPECT().AdvanceTask(gomock.Any(), id, "completed", s.actorID, s.actorRole).
			Return(nil, commands.ErrIllegalTaskTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "completed"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Transition not allowed")
	})

	s.Run("error: 400 when status missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *HousekeepingHandlerTestSuite) TestList() {
	url := "/housekeeping/tasks"

	s.Run("success: passes the status filter through", func() {
		views := []*queries.TaskView{{ID: uuid.New(), Status: "pending", TaskType: "Standard Clean"}}
		s.mockQueries.EXPECT().List(gomock.Any(), "pending").
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=pending", nil, "")

		var response struct {
			Tasks []resdto.TaskResponse `json:"tasks"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Tasks, 1)
	})

	s.Run("error: 400 for an unknown status filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "paused").
			Return(nil, queries.ErrInvalidStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=paused", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown status filter")
	})
}

func (s *HousekeepingHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/housekeeping/tasks/" + id.String()

	s.Run("error: 403 for non-admin callers", func() {
		s.mockCommands.EXPECT().DeleteTask(gomock.Any(), id, s.actorID, s.actorRole).
			Return(commands.ErrPermissionDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not permitted")
	})

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().DeleteTask(gomock.Any(), id, s.actorID, s.actorRole).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
