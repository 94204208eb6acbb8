package api

import (
	"net/http"
	"strings"

	reqdto "parking-reservation/internal/handler/dto/request"
	resdto "parking-reservation/internal/handler/dto/response"
	"parking-reservation/internal/handler/httperr"
	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Update own profile
// @Description Replace email, phone, name, gender, address and pincode. Email and phone must stay unique.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProfileRequest true "Profile"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateProfile(c.Request.Context(), userID, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Deactivate own account
// @Description Only possible while no reservation is open
// @Tags users
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /users/me [delete]
func (h *UserHandler) DeactivateSelf(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeactivateSelf(c.Request.Context(), userID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search in username, email, phone or name"
// @Param sort query string false "id, username, email or total_parking"
// @Param order query string false "asc or desc"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor"
// @Success 200 {object} resdto.UserListResponse
// @Failure 422 {object} httperr.Response
// @Router /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	filter := queries.UserFilter{
		Search: strings.TrimSpace(c.Query("q")),
		Sort:   queries.UserSort(c.Query("sort")),
		Desc:   strings.EqualFold(c.Query("order"), "desc"),
	}
	items, next, err := h.q.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UserListResponse{
		Users:      resdto.FromUserViews(items),
		NextCursor: nextCursor(next),
	})
}

// @Summary Get user
// @Description Includes deactivated accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Toggle user
// @Description Deactivation requires no open reservation. Admin accounts cannot be toggled.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} resdto.ToggleResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/users/{id}/toggle [post]
func (h *UserHandler) Toggle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	active, err := h.cmds.ToggleUser(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ToggleResponse{ID: id, IsActive: active})
}
