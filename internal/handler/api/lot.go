package api

import (
	"net/http"
	"strconv"
	"strings"

	"parking-reservation/internal/domain/user"
	reqdto "parking-reservation/internal/handler/dto/request"
	resdto "parking-reservation/internal/handler/dto/response"
	"parking-reservation/internal/handler/httperr"
	"parking-reservation/internal/handler/middleware"
	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LotHandler struct {
	cmds commands.LotCommands
	q    queries.LotQueries
}

func NewLotHandler(cmds commands.LotCommands, q queries.LotQueries) *LotHandler {
	return &LotHandler{cmds: cmds, q: q}
}

// @Summary List lots
// @Description List parking lots. Users only see active lots.
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search in name, address or pincode"
// @Param sort query string false "name, pincode, spots, price or revenue"
// @Param order query string false "asc or desc"
// @Success 200 {array} resdto.LotResponse
// @Failure 422 {object} httperr.Response
// @Router /lots [get]
func (h *LotHandler) List(c *gin.Context) {
	role, _ := middleware.GetUserRole(c)
	filter := queries.LotFilter{
		Search:     strings.TrimSpace(c.Query("q")),
		Sort:       queries.LotSort(c.Query("sort")),
		Desc:       strings.EqualFold(c.Query("order"), "desc"),
		ActiveOnly: role != user.RoleAdmin,
	}

	lots, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLotViews(lots))
}

// @Summary Get lot
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Success 200 {object} resdto.LotResponse
// @Failure 404 {object} httperr.Response
// @Router /lots/{id} [get]
func (h *LotHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLotView(view))
}

// @Summary Create lot
// @Description Create a lot with spots numbered 1..max_spots
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.LotRequest true "Lot"
// @Success 201 {object} resdto.LotResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/lots [post]
func (h *LotHandler) Create(c *gin.Context) {
	var req reqdto.LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.CreateLot(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondLot(c, http.StatusCreated, id)
}

// @Summary Update lot
// @Description Edit lot fields and resize. Shrinking removes the highest numbered free spots.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Param request body reqdto.LotRequest true "Lot"
// @Success 200 {object} resdto.LotResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "detail carries requested, reclaimable and occupied counts"
// @Failure 422 {object} httperr.Response
// @Router /admin/lots/{id} [put]
func (h *LotHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateLot(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondLot(c, http.StatusOK, id)
}

func (h *LotHandler) respondLot(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromLotView(view))
}

// @Summary Toggle lot
// @Description Activate or deactivate a lot. Inactive lots reject bookings.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Success 200 {object} resdto.ToggleResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/lots/{id}/toggle [post]
func (h *LotHandler) Toggle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	active, err := h.cmds.ToggleLot(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ToggleResponse{ID: id, IsActive: active})
}

// @Summary List spots
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Param sort query string false "id, spot_number, status or total_parking"
// @Param order query string false "asc or desc"
// @Success 200 {array} resdto.SpotResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/lots/{id}/spots [get]
func (h *LotHandler) ListSpots(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	filter := queries.SpotFilter{
		Sort: queries.SpotSort(c.Query("sort")),
		Desc: strings.EqualFold(c.Query("order"), "desc"),
	}
	spots, err := h.q.ListSpots(c.Request.Context(), id, filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotViews(spots))
}

// @Summary Delete spot
// @Description Delete one available spot. Occupied spots cannot be deleted.
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Param number path int true "Spot number"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/lots/{id}/spots/{number} [delete]
func (h *LotHandler) DeleteSpot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot number", nil)
		return
	}

	if err := h.cmds.DeleteSpot(c.Request.Context(), id, number); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
