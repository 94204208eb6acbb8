//go:build unit

package queries

import (
	"context"
	"testing"
	"time"

	"parking-reservation/internal/infra"
	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReservationReadStore struct {
	mock.Mock
}

func (m *mockReservationReadStore) FindByID(ctx context.Context, id int64) (*ReservationView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*ReservationView)
	return v, args.Error(1)
}

func (m *mockReservationReadStore) ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]*ReservationView, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]*ReservationView), args.Error(1)
}

var start = time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)

func openView(id, userID int64) *ReservationView {
	return &ReservationView{ID: id, UserID: userID, Status: "O", CostPerHour: decimal.NewFromInt(10), StartTime: start}
}

func TestReservationQueries_GetOwned(t *testing.T) {
	clk := clock.NewMockClock(start.Add(90 * time.Minute))

	t.Run("open reservation carries an estimate", func(t *testing.T) {
		store := new(mockReservationReadStore)
		store.On("FindByID", mock.Anything, int64(1)).Return(openView(1, 7), nil)

		view, err := NewReservationQueries(store, clk).GetOwned(context.Background(), 7, 1)
		require.NoError(t, err)
		assert.Equal(t, "20.00", view.CurrentCost.StringFixed(2))
		assert.Nil(t, view.TotalCost)
	})

	t.Run("closed reservation reports the stored total", func(t *testing.T) {
		total := decimal.RequireFromString("30.00")
		closed := openView(1, 7)
		closed.Status = "C"
		closed.TotalCost = &total

		store := new(mockReservationReadStore)
		store.On("FindByID", mock.Anything, int64(1)).Return(closed, nil)

		view, err := NewReservationQueries(store, clk).GetOwned(context.Background(), 7, 1)
		require.NoError(t, err)
		assert.True(t, total.Equal(view.CurrentCost))
	})

	t.Run("someone else's reservation is not found", func(t *testing.T) {
		store := new(mockReservationReadStore)
		store.On("FindByID", mock.Anything, int64(1)).Return(openView(1, 8), nil)

		_, err := NewReservationQueries(store, clk).GetOwned(context.Background(), 7, 1)
		assert.ErrorIs(t, err, ErrReservationNotFound)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("missing row", func(t *testing.T) {
		store := new(mockReservationReadStore)
		store.On("FindByID", mock.Anything, int64(1)).Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := NewReservationQueries(store, clk).GetOwned(context.Background(), 7, 1)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("storage failure is categorized", func(t *testing.T) {
		store := new(mockReservationReadStore)
		store.On("FindByID", mock.Anything, int64(1)).Return(nil, infra.WrapRepoErr("boom", assert.AnError))

		_, err := NewReservationQueries(store, clk).GetOwned(context.Background(), 7, 1)
		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})
}

func TestReservationQueries_ListByUser(t *testing.T) {
	clk := clock.NewMockClock(start.Add(time.Hour))

	t.Run("extra row yields a next cursor", func(t *testing.T) {
		store := new(mockReservationReadStore)
		store.On("ListByUser", mock.Anything, int64(7), int32(3), int32(0)).
			Return([]*ReservationView{openView(3, 7), openView(2, 7), openView(1, 7)}, nil)

		rows, next, err := NewReservationQueries(store, clk).ListByUser(context.Background(), 7, nil, 2)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
		require.NotNil(t, next)

		offset, err := DecodeOffsetCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, 2, offset)
		assert.Equal(t, "10.00", rows[0].CurrentCost.StringFixed(2))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		store := new(mockReservationReadStore)
		store.On("ListByUser", mock.Anything, int64(7), int32(3), int32(2)).
			Return([]*ReservationView{openView(1, 7)}, nil)

		rows, next, err := NewReservationQueries(store, clk).ListByUser(context.Background(), 7, &Cursor{After: EncodeOffsetCursor(2)}, 2)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Nil(t, next)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		store := new(mockReservationReadStore)
		_, _, err := NewReservationQueries(store, clk).ListByUser(context.Background(), 7, &Cursor{After: "%%%"}, 2)
		assert.ErrorIs(t, err, ErrInvalidCursor)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		store.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
