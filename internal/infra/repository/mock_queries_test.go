//go:build unit

package repository

import (
	"context"

	"parking-reservation/internal/infra/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
)

// MockQueries stands in for both the query set and the DBTX it runs on.
type MockQueries struct {
	mock.Mock
}

// query.DBTX implementation
func (m *MockQueries) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockQueries) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockQueries) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Row)
}

// users
func (m *MockQueries) CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) FindUserByIDForUpdate(ctx context.Context, db query.DBTX, id int64) (query.User, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.User), args.Error(1)
}

func (m *MockQueries) FindUserByIdentifier(ctx context.Context, db query.DBTX, identifier string) (query.User, error) {
	args := m.Called(ctx, db, identifier)
	return args.Get(0).(query.User), args.Error(1)
}

func (m *MockQueries) FindUserByUsernameForUpdate(ctx context.Context, db query.DBTX, username string) (query.User, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(query.User), args.Error(1)
}

func (m *MockQueries) UpdateUserProfile(ctx context.Context, db query.DBTX, arg query.UpdateUserProfileParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) UpdateUserPassword(ctx context.Context, db query.DBTX, id int64, hash string) (int64, error) {
	args := m.Called(ctx, db, id, hash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) UpdateUserLastLogin(ctx context.Context, db query.DBTX, id int64, at pgtype.Timestamptz) error {
	args := m.Called(ctx, db, id, at)
	return args.Error(0)
}

func (m *MockQueries) SetUserActive(ctx context.Context, db query.DBTX, id int64, active bool) (int64, error) {
	args := m.Called(ctx, db, id, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) StartUserParking(ctx context.Context, db query.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) EndUserParking(ctx context.Context, db query.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// lots
func (m *MockQueries) CreateLot(ctx context.Context, db query.DBTX, arg query.CreateLotParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) FindLotByID(ctx context.Context, db query.DBTX, id int64) (query.ParkingLot, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.ParkingLot), args.Error(1)
}

func (m *MockQueries) FindLotByIDForUpdate(ctx context.Context, db query.DBTX, id int64) (query.ParkingLot, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.ParkingLot), args.Error(1)
}

func (m *MockQueries) UpdateLotDetails(ctx context.Context, db query.DBTX, arg query.UpdateLotDetailsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) UpdateLotCapacity(ctx context.Context, db query.DBTX, id int64, maxSpots, availableSpots int32) (int64, error) {
	args := m.Called(ctx, db, id, maxSpots, availableSpots)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) SetLotActive(ctx context.Context, db query.DBTX, id int64, active bool) (int64, error) {
	args := m.Called(ctx, db, id, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) TakeLotSpot(ctx context.Context, db query.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) ReturnLotSpot(ctx context.Context, db query.DBTX, id int64, revenue string) (int64, error) {
	args := m.Called(ctx, db, id, revenue)
	return args.Get(0).(int64), args.Error(1)
}

// spots
func (m *MockQueries) InsertSpots(ctx context.Context, db query.DBTX, lotID int64, numbers []int32) (int64, error) {
	args := m.Called(ctx, db, lotID, numbers)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) ListSpotNumbers(ctx context.Context, db query.DBTX, lotID int64) ([]int32, error) {
	args := m.Called(ctx, db, lotID)
	return args.Get(0).([]int32), args.Error(1)
}

func (m *MockQueries) ClaimAvailableSpot(ctx context.Context, db query.DBTX, lotID int64) (int64, int32, error) {
	args := m.Called(ctx, db, lotID)
	return args.Get(0).(int64), args.Get(1).(int32), args.Error(2)
}

func (m *MockQueries) OccupySpot(ctx context.Context, db query.DBTX, id, reservationID int64) (int64, error) {
	args := m.Called(ctx, db, id, reservationID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) FindSpotForUpdate(ctx context.Context, db query.DBTX, lotID int64, number int32) (query.ParkingSpot, error) {
	args := m.Called(ctx, db, lotID, number)
	return args.Get(0).(query.ParkingSpot), args.Error(1)
}

func (m *MockQueries) FreeSpot(ctx context.Context, db query.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) SelectReclaimableSpots(ctx context.Context, db query.DBTX, lotID int64, limit int32) ([]int64, error) {
	args := m.Called(ctx, db, lotID, limit)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockQueries) DeleteAvailableSpots(ctx context.Context, db query.DBTX, ids []int64) (int64, error) {
	args := m.Called(ctx, db, ids)
	return args.Get(0).(int64), args.Error(1)
}

// reservations
func (m *MockQueries) CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) FindReservationForUpdate(ctx context.Context, db query.DBTX, id, userID int64) (query.Reservation, error) {
	args := m.Called(ctx, db, id, userID)
	return args.Get(0).(query.Reservation), args.Error(1)
}

func (m *MockQueries) CloseReservation(ctx context.Context, db query.DBTX, arg query.CloseReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// events
func (m *MockQueries) InsertEvent(ctx context.Context, db query.DBTX, arg query.InsertEventParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockQueries) FetchPendingEvents(ctx context.Context, db query.DBTX, limit, maxAttempts int32) ([]query.ReservationEvent, error) {
	args := m.Called(ctx, db, limit, maxAttempts)
	return args.Get(0).([]query.ReservationEvent), args.Error(1)
}

func (m *MockQueries) MarkEventPublished(ctx context.Context, db query.DBTX, id uuid.UUID, at pgtype.Timestamptz) error {
	args := m.Called(ctx, db, id, at)
	return args.Error(0)
}

func (m *MockQueries) MarkEventFailed(ctx context.Context, db query.DBTX, id uuid.UUID, lastError string) error {
	args := m.Called(ctx, db, id, lastError)
	return args.Error(0)
}

func (m *MockQueries) CountPendingEvents(ctx context.Context, db query.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}
