//go:build unit

package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"parking-reservation/internal/domain/lot"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abortRecorder(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Abort(c, err)
	return rec
}

func TestAbort_StatusByCategory(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", commands.ErrLotNotFound, http.StatusNotFound},
		{"lot full", errs.Mark(lot.ErrLotFull, errs.ErrNoAvailableSpot), http.StatusConflict},
		{"duplicate", commands.ErrDuplicateLot, http.StatusConflict},
		{"invalid input", errs.Mark(lot.ErrInvalidName, errs.ErrInvalidInput, errs.ErrConstraintViolation), http.StatusUnprocessableEntity},
		{"credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive", commands.ErrUserInactive, http.StatusForbidden},
		{"storage", errs.Mark(errors.New("conn reset"), errs.ErrStorageFailure), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := abortRecorder(tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAbort_ShrinkDetail(t *testing.T) {
	err := errs.Mark(&lot.ShrinkError{Requested: 5, Reclaimable: 2}, errs.ErrSpotsOccupied)

	rec := abortRecorder(err)

	require.Equal(t, http.StatusConflict, rec.Code)
	var body struct {
		Detail ShrinkDetail `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ShrinkDetail{Requested: 5, Reclaimable: 2, Occupied: 3}, body.Detail)
}
