//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/tests/common/dbtest"
	"hotel-booking-api/tests/common/httptest"
	"hotel-booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	registerURL = "/api/auth/register"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
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

	dbtest.CreateTestUser(s.T(), s.DB, "guest", "guest@example.com", "password123", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, s.Config.Seed.AdminUsername, s.Config.Seed.AdminEmail, s.Config.Seed.AdminPassword, string(user.RoleAdmin))
}

func (s *authSuite) loginUser(email, password string) string {
	t := s.T()

	reqBody := request.LoginRequest{Email: email, Password: password}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed for %s", email)

	var loginRes resdto.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
	require.NotEmpty(t, loginRes.AccessToken)
	return loginRes.AccessToken
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "valid credentials",
			email:          "guest@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "a registered user can log in",
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "unknown email is rejected",
		},
		{
			name:           "wrong password",
			email:          "guest@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "wrong password is rejected",
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "empty email fails binding",
		},
		{
			name:           "empty password",
			email:          "guest@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "empty password fails binding",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken, "access token missing")
				require.NotNil(t, loginRes.User, "user view missing")
				require.Equal(t, tt.email, loginRes.User.Email)
			}
		})
	}
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		body           request.RegisterRequest
		expectedStatus int
		description    string
	}{
		{
			name:           "new user",
			body:           request.RegisterRequest{Username: "newguest", Email: "newguest@example.com", Password: "password123"},
			expectedStatus: http.StatusCreated,
			description:    "registration with fresh credentials succeeds",
		},
		{
			name:           "duplicate email",
			body:           request.RegisterRequest{Username: "otherguest", Email: "guest@example.com", Password: "password123"},
			expectedStatus: http.StatusConflict,
			description:    "an already registered email is rejected",
		},
		{
			name:           "duplicate username",
			body:           request.RegisterRequest{Username: "guest", Email: "fresh@example.com", Password: "password123"},
			expectedStatus: http.StatusConflict,
			description:    "an already registered username is rejected",
		},
		{
			name:           "short password",
			body:           request.RegisterRequest{Username: "shorty", Email: "shorty@example.com", Password: "short"},
			expectedStatus: http.StatusBadRequest,
			description:    "passwords under 8 characters fail binding",
		},
		{
			name:           "invalid email",
			body:           request.RegisterRequest{Username: "badmail", Email: "not-an-email", Password: "password123"},
			expectedStatus: http.StatusBadRequest,
			description:    "malformed email fails binding",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.body, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusCreated {
				// The new account must be able to log in right away.
				s.loginUser(tt.body.Email, tt.body.Password)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("returns the authenticated user's profile", func() {
		t := s.T()

		token := s.loginUser("guest@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		require.Contains(t, body, "guest@example.com")
		require.NotContains(t, body, "password", "password data must never leave the API")
	})

	s.Run("rejects a garbage token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints reject anonymous requests", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/bookings"},
			{http.MethodGet, "/api/admin/bookings"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s should require a token", endpoint.method, endpoint.path)
		}
	})
}

func (s *authSuite) TestAdminRoleGate() {
	s.Run("an admin token passes the role gate", func() {
		t := s.T()

		token := s.loginUser(s.Config.Seed.AdminEmail, s.Config.Seed.AdminPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users", nil, token)
		require.Equal(t, http.StatusOK, w.Code, "admin should pass the role gate")
	})

	s.Run("a customer token is rejected with 403", func() {
		t := s.T()

		token := s.loginUser("guest@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, "customers must not reach admin routes")
	})
}
