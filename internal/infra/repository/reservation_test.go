//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/query"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var resStart = time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)

func openRow() query.Reservation {
	ts := pgtype.Timestamptz{Time: resStart, Valid: true}
	return query.Reservation{
		ID:            100,
		UserID:        7,
		LotID:         3,
		SpotNumber:    2,
		VehicleNumber: "KA05MN1234",
		Status:        "O",
		CostPerHr:     "10.00",
		StartTime:     ts,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
}

func TestReservationRepository_Create(t *testing.T) {
	vehicle, err := reservation.NewVehicleNumber("ka-05-mn-1234")
	require.NoError(t, err)
	res, err := reservation.Open(7, 3, 2, vehicle, decimal.RequireFromString("10"), resStart)
	require.NoError(t, err)

	mockQueries := new(MockQueries)
	mockQueries.On("CreateReservation", mock.Anything, mock.Anything, query.CreateReservationParams{
		UserID:        7,
		LotID:         3,
		SpotNumber:    2,
		VehicleNumber: "KA05MN1234",
		CostPerHr:     "10.00",
		StartTime:     pgtype.Timestamptz{Time: resStart, Valid: true},
	}).Return(int64(100), nil)

	id, err := NewReservationRepository(mockQueries, mockQueries).Create(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, int64(100), id)
	mockQueries.AssertExpectations(t)
}

func TestReservationRepository_FindForUpdate(t *testing.T) {
	t.Run("owner sees the row", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("FindReservationForUpdate", mock.Anything, mock.Anything, int64(100), int64(7)).Return(openRow(), nil)

		res, err := NewReservationRepository(mockQueries, mockQueries).FindForUpdate(context.Background(), 100, 7)
		require.NoError(t, err)
		assert.True(t, res.IsOpen())
		assert.Nil(t, res.TotalCost())
	})

	t.Run("other users get not found", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("FindReservationForUpdate", mock.Anything, mock.Anything, int64(100), int64(8)).Return(query.Reservation{}, pgx.ErrNoRows)

		_, err := NewReservationRepository(mockQueries, mockQueries).FindForUpdate(context.Background(), 100, 8)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationRepository_Close(t *testing.T) {
	load := func(t *testing.T) *reservation.Reservation {
		mockQueries := new(MockQueries)
		mockQueries.On("FindReservationForUpdate", mock.Anything, mock.Anything, int64(100), int64(7)).Return(openRow(), nil)
		res, err := NewReservationRepository(mockQueries, mockQueries).FindForUpdate(context.Background(), 100, 7)
		require.NoError(t, err)
		return res
	}

	t.Run("persists end time and cost", func(t *testing.T) {
		res := load(t)
		end := resStart.Add(90 * time.Minute)
		_, err := res.Close(end)
		require.NoError(t, err)

		mockQueries := new(MockQueries)
		mockQueries.On("CloseReservation", mock.Anything, mock.Anything, query.CloseReservationParams{
			ID:        100,
			EndTime:   pgtype.Timestamptz{Time: end, Valid: true},
			TotalCost: "20.00",
		}).Return(int64(1), nil)

		assert.NoError(t, NewReservationRepository(mockQueries, mockQueries).Close(context.Background(), res))
		mockQueries.AssertExpectations(t)
	})

	t.Run("lost race reads as already completed", func(t *testing.T) {
		res := load(t)
		_, err := res.Close(resStart.Add(time.Hour))
		require.NoError(t, err)

		mockQueries := new(MockQueries)
		mockQueries.On("CloseReservation", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err = NewReservationRepository(mockQueries, mockQueries).Close(context.Background(), res)
		assert.ErrorIs(t, err, reservation.ErrAlreadyCompleted)
	})

	t.Run("refuses an unclosed aggregate", func(t *testing.T) {
		mockQueries := new(MockQueries)
		err := NewReservationRepository(mockQueries, mockQueries).Close(context.Background(), load(t))
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
		mockQueries.AssertNotCalled(t, "CloseReservation", mock.Anything, mock.Anything, mock.Anything)
	})
}
