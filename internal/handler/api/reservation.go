package api

import (
	"errors"
	"net/http"

	reqdto "parking-reservation/internal/handler/dto/request"
	resdto "parking-reservation/internal/handler/dto/response"
	"parking-reservation/internal/handler/httperr"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ParkingCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ParkingCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Book a spot
// @Description Allocate the lowest numbered free spot of the lot and open a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Param request body reqdto.BookRequest true "Vehicle"
// @Success 201 {object} resdto.BookResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /lots/{id}/reservations [post]
func (h *ReservationHandler) Book(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	lotID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Book(c.Request.Context(), userID, commands.BookInput{
		LotID:         lotID,
		VehicleNumber: req.VehicleNumber,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookResult(result))
}

// @Summary Release a spot
// @Description Close the reservation and bill every started hour. Releasing twice returns the stored outcome.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/release [post]
func (h *ReservationHandler) Release(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.cmds.Release(c.Request.Context(), userID, id)
	if errors.Is(err, errs.ErrAlreadyCompleted) {
		view, qerr := h.q.GetOwned(c.Request.Context(), userID, id)
		if qerr != nil {
			httperr.Abort(c, qerr)
			return
		}
		c.JSON(http.StatusOK, resdto.AlreadyReleasedResponse{
			Message:     "Reservation already completed",
			Reservation: resdto.FromReservationView(view),
		})
		return
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReleaseResult(result))
}

// @Summary Get reservation
// @Description Own reservation with the current cost estimate while open
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetOwned(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description Open reservations first, then newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 422 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.ListByUser(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReservationListResponse{
		Reservations: resdto.FromReservationViews(items),
		NextCursor:   nextCursor(next),
	})
}

// @Summary Get any reservation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id} [get]
func (h *ReservationHandler) AdminGet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
