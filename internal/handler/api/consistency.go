package api

import (
	"net/http"

	"parking-reservation/internal/handler/httperr"
	"parking-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConsistencyHandler struct {
	q queries.ConsistencyQueries
}

func NewConsistencyHandler(q queries.ConsistencyQueries) *ConsistencyHandler {
	return &ConsistencyHandler{q: q}
}

// @Summary Counter drift report
// @Description Lots and users whose stored counters disagree with the rows they summarize
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DriftReport
// @Router /admin/consistency [get]
func (h *ConsistencyHandler) Check(c *gin.Context) {
	report, err := h.q.Check(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"consistent": report.Consistent(),
		"lots":       report.Lots,
		"users":      report.Users,
	})
}
