//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/handler/api"
	resdto "hotel-ops/internal/handler/dto/response"
	"hotel-ops/internal/pkg/config"
	"hotel-ops/internal/pkg/cookie"
	"hotel-ops/internal/pkg/jwt"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	mockJWTService := &jwt.Service{}
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, mockJWTService, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{"email": "manager@hotel.test", "password": "correct-horse"}
	userID := uuid.New()

	s.Run("success: returns 200 and sets token cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&commands.LoginResult{
				UserID:    userID,
				Role:      user.RoleManager,
				TokenPair: &commands.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("access", response.AccessToken)
		s.Equal(userID.String(), response.UserID)
		s.Equal("manager", response.Role)
		s.NotNil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
		s.NotNil(httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName))
	})

	s.Run("error: 400 on malformed bodies", func() {
		testCases := []map[string]any{
			{"email": "not-an-email", "password": "correct-horse"},
			{"email": "manager@hotel.test", "password": "short"},
			{"password": "correct-horse"},
			{"email": "manager@hotel.test"},
		}
		for _, body := range testCases {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			s.Equal(http.StatusBadRequest, rec.Code)
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "invalid credentials", commandsError: commands.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized},
			{name: "unknown user looks identical", commandsError: commands.ErrUserNotFound, expectedStatus: http.StatusUnauthorized},
			{name: "inactive account", commandsError: commands.ErrUserInactive, expectedStatus: http.StatusForbidden},
			{name: "internal error", commandsError: errors.New("store down"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.Equal(tc.expectedStatus, rec.Code)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: accepts the token from the request body", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "refresh-token").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"refresh_token": "refresh-token"}, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
	})

	s.Run("success: accepts the token from the cookie", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "cookie-token").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 without any token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 401 for a rejected token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "stale").
			Return(nil, commands.ErrTokenValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"refresh_token": "stale"}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.NotNil(access)
		s.Empty(access.Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the current user", func() {
		view := &queries.AuthorizedUserView{ID: uuid.New(), Email: "manager@hotel.test", Role: "manager"}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("manager@hotel.test", response.User.Email)
	})

	s.Run("error: 401 when no caller in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 404 for a vanished user", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
