//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parking-reservation/internal/domain/lot"
	"parking-reservation/internal/domain/reservation"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockParkingCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockParkingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/api", asUser(testUserID, user.RoleUser))
	g.POST("/lots/:id/reservations", s.handler.Book)
	g.GET("/reservations", s.handler.List)
	g.GET("/reservations/:id", s.handler.Get)
	g.POST("/reservations/:id/release", s.handler.Release)
	s.router.GET("/api/admin/reservations/:id", asUser(testAdminID, user.RoleAdmin), s.handler.AdminGet)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

var bookedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func closedView(id int64) *queries.ReservationView {
	cost := decimal.NewFromInt(120)
	end := bookedAt.Add(2*time.Hour + time.Minute)
	return &queries.ReservationView{
		ID:            id,
		UserID:        testUserID,
		LotID:         3,
		SpotNumber:    1,
		VehicleNumber: "KA01AB1234",
		Status:        string(reservation.StatusClosed),
		CostPerHour:   decimal.NewFromInt(40),
		TotalCost:     &cost,
		CurrentCost:   cost,
		StartTime:     bookedAt,
		EndTime:       &end,
		CreatedAt:     bookedAt,
	}
}

func (s *ReservationHandlerTestSuite) TestBook() {
	url := "/api/lots/3/reservations"
	req := reqdto.BookRequest{VehicleNumber: "ka01ab1234"}
	in := commands.BookInput{LotID: 3, VehicleNumber: "ka01ab1234"}

	s.Run("success: returns 201 with the allocated spot", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), testUserID, in).Return(&commands.BookResult{
			ReservationID: 11,
			LotID:         3,
			SpotNumber:    1,
			CostPerHour:   decimal.NewFromInt(40),
			StartTime:     bookedAt,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var response resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(resdto.BookResponse{
			ReservationID: 11,
			LotID:         3,
			SpotNumber:    1,
			CostPerHour:   "40.00",
			StartTime:     bookedAt,
		}, response)
	})

	s.Run("error: 400 without a vehicle number", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"lot full", errs.Mark(lot.ErrLotFull, errs.ErrNoAvailableSpot), http.StatusConflict, "No available spot"},
			{"lot inactive", errs.Mark(lot.ErrLotInactive, errs.ErrNoAvailableSpot), http.StatusConflict, "No available spot"},
			{"unknown lot", commands.ErrLotNotFound, http.StatusNotFound, "lot not found"},
			{"bad vehicle", errs.Mark(reservation.ErrInvalidVehicleNumber, errs.ErrInvalidInput, errs.ErrConstraintViolation), http.StatusUnprocessableEntity, "vehicle number"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), testUserID, in).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestRelease() {
	url := "/api/reservations/11/release"

	s.Run("success: returns the billed amount", func() {
		end := bookedAt.Add(90 * time.Minute)
		s.mockCommands.EXPECT().Release(gomock.Any(), testUserID, int64(11)).Return(&commands.ReleaseResult{
			ReservationID: 11,
			LotID:         3,
			SpotNumber:    1,
			TotalCost:     decimal.NewFromInt(20),
			EndTime:       end,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.ReleaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("20.00", response.TotalCost)
		s.Equal(end, response.EndTime)
	})

	s.Run("second release answers 200 with the stored outcome", func() {
		gomock.InOrder(
			s.mockCommands.EXPECT().Release(gomock.Any(), testUserID, int64(11)).
				Return(nil, errs.Mark(reservation.ErrAlreadyCompleted, errs.ErrAlreadyCompleted)),
			s.mockQueries.EXPECT().GetOwned(gomock.Any(), testUserID, int64(11)).Return(closedView(11), nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.AlreadyReleasedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Reservation already completed", response.Message)
		s.Require().NotNil(response.Reservation.FinalCost)
		s.Equal("120.00", *response.Reservation.FinalCost)
	})

	s.Run("error: 404 for a reservation of another user", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), testUserID, int64(11)).Return(nil, commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})

	s.Run("error: 503 on storage failure", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), testUserID, int64(11)).
			Return(nil, errs.Mark(errs.New("deadlock detected"), errs.ErrStorageFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	s.mockQueries.EXPECT().GetOwned(gomock.Any(), testUserID, int64(11)).Return(closedView(11), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/11", nil, "")

	var response resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("KA01AB1234", response.VehicleNumber)
	s.Equal("40.00", response.CostPerHour)
}

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("passes paging through and returns the next cursor", func() {
		after := &queries.Cursor{After: queries.EncodeOffsetCursor(2)}
		next := &queries.Cursor{After: queries.EncodeOffsetCursor(4)}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), testUserID, after, 2).
			Return([]*queries.ReservationView{closedView(1), closedView(2)}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?limit=2&after="+after.After, nil, "")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reservations, 2)
		s.Equal(next.After, response.NextCursor)
	})

	s.Run("error: 422 on a tampered cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), testUserID, &queries.Cursor{After: "garbage"}, 20).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "invalid cursor")
	})
}

func (s *ReservationHandlerTestSuite) TestAdminGet() {
	s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(11)).Return(closedView(11), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/reservations/11", nil, "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}
