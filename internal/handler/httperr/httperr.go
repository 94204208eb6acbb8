package httperr

import (
	"errors"
	"net/http"

	"parking-reservation/internal/domain/lot"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type ShrinkDetail struct {
	Requested   int `json:"requested"`
	Reclaimable int `json:"reclaimable"`
	Occupied    int `json:"occupied"`
}

// Abort maps a usecase error to its HTTP status by category. Invalid input
// is checked before the constraint category it is always paired with.
func Abort(c *gin.Context, err error) {
	var shrink *lot.ShrinkError
	switch {
	case errs.As(err, &shrink):
		AbortWithError(c, http.StatusConflict, err, err.Error(), ShrinkDetail{
			Requested:   shrink.Requested,
			Reclaimable: shrink.Reclaimable,
			Occupied:    shrink.Occupied(),
		})
	case errors.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errors.Is(err, errs.ErrNoAvailableSpot):
		AbortWithError(c, http.StatusConflict, err, "No available spot", err.Error())
	case errors.Is(err, errs.ErrSpotsOccupied):
		AbortWithError(c, http.StatusConflict, err, "Spots occupied", err.Error())
	case errors.Is(err, errs.ErrInvalidInput):
		AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	case errors.Is(err, errs.ErrConstraintViolation):
		AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errors.Is(err, commands.ErrInvalidCredentials):
		AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials", nil)
	case errors.Is(err, commands.ErrUserInactive):
		AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
	case errors.Is(err, errs.ErrStorageFailure):
		AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
