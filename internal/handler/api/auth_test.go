//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"parking-reservation/internal/domain/user"
	"parking-reservation/internal/handler/api"
	reqdto "parking-reservation/internal/handler/dto/request"
	resdto "parking-reservation/internal/handler/dto/response"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/testutil"
	"parking-reservation/internal/testutil/httptest"
	commandsmock "parking-reservation/internal/testutil/mock/commands"
	queriesmock "parking-reservation/internal/testutil/mock/queries"
	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
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
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/reset-password", s.handler.ResetPassword)
	s.router.GET("/auth/me", asUser(testUserID, user.RoleUser), s.handler.Me)
	s.router.GET("/auth/me-anonymous", s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func registerRequest() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: "ravi.k",
		Email:    "ravi@example.com",
		Phone:    "9876543210",
		Password: "s3cret-pass",
		FullName: "Ravi Kumar",
		Gender:   "m",
		Pincode:  "560001",
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	req := registerRequest()

	s.Run("success: returns 201 with the new id", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), req.ToInput()).Return(int64(42), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(42), response.ID)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"username", "email", "phone", "password", "full_name"} {
			s.Run("missing "+field, func() {
				body := testutil.DtoMap(s.T(), req, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate username",
				commandsError:  errs.Mark(errs.New("username already registered"), commands.ErrDuplicateAccount, errs.ErrConstraintViolation),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "username already registered",
			},
			{
				name:           "invalid phone",
				commandsError:  errs.Mark(user.ErrInvalidPhone, errs.ErrInvalidInput, errs.ErrConstraintViolation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "phone must be exactly 10 digits",
			},
			{
				name:           "storage failure",
				commandsError:  errs.Mark(errors.New("connection reset"), errs.ErrStorageFailure),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Service temporarily unavailable",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Register(gomock.Any(), req.ToInput()).Return(int64(0), tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	req := reqdto.LoginRequest{Identifier: "ravi@example.com", Password: "s3cret-pass"}
	in := commands.LoginInput{Identifier: req.Identifier, Password: req.Password}

	s.Run("success: returns 200 with a bearer token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), in).
			Return(&commands.LoginResult{
				UserID:      testUserID,
				Role:        user.RoleUser,
				AccessToken: "test-jwt-token",
				ExpiresIn:   time.Hour,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.LoginResponse{
			AccessToken: "test-jwt-token",
			TokenType:   "Bearer",
			ExpiresIn:   3600,
			UserID:      testUserID,
			Role:        "user",
		}, response)
	})

	s.Run("error: 400 Bad Request on missing identifier", func() {
		body := testutil.DtoMap(s.T(), req, testutil.Field("identifier", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"invalid credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
			{"user inactive", commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
			{"internal server error", errors.New("token signing failed"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), in).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestResetPassword() {
	url := "/auth/reset-password"
	req := reqdto.ResetPasswordRequest{Username: "ravi.k", Email: "ravi@example.com", NewPassword: "n3w-secret"}

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().ResetPassword(gomock.Any(), commands.ResetPasswordInput{
			Username:    "ravi.k",
			Email:       "ravi@example.com",
			NewPassword: "n3w-secret",
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"username", "email", "new_password"} {
			s.Run("missing "+field, func() {
				body := testutil.DtoMap(s.T(), req, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 422 when username and email do not match an active account", func() {
		s.mockCommands.EXPECT().ResetPassword(gomock.Any(), req.ToInput()).Return(commands.ErrResetRejected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "invalid username or email")
	})

	s.Run("error: 422 on a weak password", func() {
		s.mockCommands.EXPECT().ResetPassword(gomock.Any(), req.ToInput()).
			Return(errs.Mark(user.ErrPasswordTooWeak, errs.ErrInvalidInput, errs.ErrConstraintViolation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the current profile", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), testUserID).
			Return(&queries.UserView{ID: testUserID, Username: "ravi.k", Role: "user", IsActive: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("ravi.k", response.Username)
		s.True(response.IsActive)
	})

	s.Run("error: 404 when the user is gone", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), testUserID).Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})

	s.Run("error: 401 without an authenticated user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me-anonymous", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
