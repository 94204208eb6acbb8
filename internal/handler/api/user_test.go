//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"parking-reservation/internal/domain/user"
	"parking-reservation/internal/handler/api"
	reqdto "parking-reservation/internal/handler/dto/request"
	resdto "parking-reservation/internal/handler/dto/response"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/testutil/httptest"
	commandsmock "parking-reservation/internal/testutil/mock/commands"
	queriesmock "parking-reservation/internal/testutil/mock/queries"
	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockUserCommands
	mockQueries     *queriesmock.MockUserQueries
	mockConsistency *queriesmock.MockConsistencyQueries
}

func (s *UserHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.mockConsistency = queriesmock.NewMockConsistencyQueries(s.mockCtrl)
	users := api.NewUserHandler(s.mockCommands, s.mockQueries)
	consistency := api.NewConsistencyHandler(s.mockConsistency)

	s.router.PUT("/api/users/me", asUser(testUserID, user.RoleUser), users.UpdateProfile)
	s.router.DELETE("/api/users/me", asUser(testUserID, user.RoleUser), users.DeactivateSelf)
	admin := s.router.Group("/api/admin", asUser(testAdminID, user.RoleAdmin))
	admin.GET("/users", users.List)
	admin.GET("/users/:id", users.Get)
	admin.POST("/users/:id/toggle", users.Toggle)
	admin.GET("/consistency", consistency.Check)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestDeactivateSelf() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().DeactivateSelf(gomock.Any(), testUserID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/users/me", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 while a reservation is open", func() {
		s.mockCommands.EXPECT().DeactivateSelf(gomock.Any(), testUserID).
			Return(errs.Mark(user.ErrActiveParkings, errs.ErrConstraintViolation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/users/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "active parkings")
	})
}

func (s *UserHandlerTestSuite) TestUpdateProfile() {
	url := "/api/users/me"
	req := reqdto.ProfileRequest{
		Email:    "ravi.k@example.org",
		Phone:    "9123400000",
		FullName: "Ravi Kumar",
		Gender:   "m",
		Address:  "12 MG Road",
		Pincode:  "560025",
	}

	s.Run("success: returns the updated profile", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), testUserID, req.ToInput()).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), testUserID).
			Return(&queries.UserView{ID: testUserID, Username: "ravi.k", Email: req.Email, Phone: req.Phone, Role: "user", IsActive: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(req.Email, response.Email)
		s.Equal(req.Phone, response.Phone)
	})

	s.Run("error: 400 without a full name", func() {
		body := req
		body.FullName = ""

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 when the email belongs to someone else", func() {
		dup := errs.Mark(errs.New("email already registered"), commands.ErrDuplicateAccount, errs.ErrConstraintViolation)
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any()).Return(dup).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already registered")
	})

	s.Run("error: 422 on a malformed phone", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any()).
			Return(errs.Mark(user.ErrInvalidPhone, errs.ErrInvalidInput, errs.ErrConstraintViolation)).Times(1)

		body := req
		body.Phone = "12345"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *UserHandlerTestSuite) TestList() {
	s.Run("success: passes search and sort through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.UserFilter{
			Search: "ravi",
			Sort:   queries.UserSortTotalParking,
			Desc:   true,
		}, (*queries.Cursor)(nil), 20).
			Return([]*queries.UserView{{ID: testUserID, Username: "ravi.k", Role: "user"}}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/users?q=ravi&sort=total_parking&order=desc", nil, "")

		var response resdto.UserListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Users, 1)
		s.Empty(response.NextCursor)
	})

	s.Run("success: no sort leaves the default to the query layer", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.UserFilter{}, (*queries.Cursor)(nil), 20).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/users", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 422 on an unknown sort key", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidUserSort).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/users?sort=phone", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "sort must be one of")
	})
}

func (s *UserHandlerTestSuite) TestGet() {
	s.Run("success: deactivated accounts are visible", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testUserID).
			Return(&queries.UserView{ID: testUserID, Username: "ravi.k", Role: "user", IsActive: false, TotalParking: 4}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/users/7", nil, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsActive)
		s.Equal(4, response.TotalParking)
	})

	s.Run("error: 404 on an unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/users/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/users/abc", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *UserHandlerTestSuite) TestToggle() {
	s.Run("success: returns the new state", func() {
		s.mockCommands.EXPECT().ToggleUser(gomock.Any(), testUserID).Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/users/7/toggle", nil, "")

		var response resdto.ToggleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsActive)
	})

	s.Run("error: 409 for admin accounts", func() {
		s.mockCommands.EXPECT().ToggleUser(gomock.Any(), testAdminID).Return(false, commands.ErrAdminToggle).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/users/1/toggle", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "admin accounts cannot be toggled")
	})
}

func (s *UserHandlerTestSuite) TestConsistency() {
	s.mockConsistency.EXPECT().Check(gomock.Any()).Return(&queries.DriftReport{
		Lots: []queries.LotDrift{{
			LotID:           3,
			AvailableSpots:  4,
			FreeSpots:       5,
			MaxSpots:        10,
			SpotCount:       10,
			TotalRevenue:    decimal.NewFromInt(100),
			ClosedCostTotal: decimal.NewFromInt(100),
		}},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/consistency", nil, "")

	var response struct {
		Consistent bool               `json:"consistent"`
		Lots       []queries.LotDrift `json:"lots"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.False(response.Consistent)
	s.Require().Len(response.Lots, 1)
	s.Equal(5, response.Lots[0].FreeSpots)
}
