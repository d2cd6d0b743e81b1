//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/handler/dto/request"
	"hotel-ops/internal/handler/dto/response"
	"hotel-ops/tests/common/dbtest"
	"hotel-ops/tests/common/httptest"
	"hotel-ops/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	meURL    = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "admin@example.com",
			password:       dbtest.TestUserPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       dbtest.TestUserPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "admin@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing email",
			email:          "",
			password:       dbtest.TestUserPassword,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}, "")
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp response.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
				require.NotEmpty(t, resp.AccessToken)
				require.Equal(t, string(user.RoleAdmin), resp.Role)
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("authenticated user reads own profile", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "admin@example.com",
			Password: dbtest.TestUserPassword,
		}, "")

		var login response.LoginResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &login)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, login.AccessToken)

		var me response.MeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.NotNil(t, me.User)
		require.Equal(t, "admin@example.com", me.User.Email)
	})

	s.Run("missing token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
