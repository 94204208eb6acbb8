package shared

import (
	"context"
	"time"

	"parking-reservation/internal/domain/lot"
	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/domain/spot"
	"parking-reservation/internal/domain/user"
	"parking-reservation/internal/infra/query"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

// Tx hands out repositories bound to one open transaction.
type Tx interface {
	Lots() LotRepository
	Spots() SpotRepository
	Reservations() ReservationRepository
	Users() UserRepository
	Events() EventRepository
}

type LotRepository interface {
	Create(ctx context.Context, l *lot.Lot) (int64, error)
	FindByID(ctx context.Context, id int64) (*lot.Lot, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*lot.Lot, error)
	UpdateDetails(ctx context.Context, l *lot.Lot) error
	UpdateCapacity(ctx context.Context, l *lot.Lot) error
	SetActive(ctx context.Context, id int64, active bool) error
	// TakeSpot fails with lot.ErrLotFull when no spot is left.
	TakeSpot(ctx context.Context, id int64) error
	ReturnSpot(ctx context.Context, id int64, revenue decimal.Decimal) error
}

type SpotRepository interface {
	CreateBatch(ctx context.Context, lotID int64, numbers []int) error
	Numbers(ctx context.Context, lotID int64) ([]int, error)
	// ClaimAvailable locks the lowest numbered free spot, skipping rows held by
	// concurrent claims. It fails with lot.ErrLotFull when none is left.
	ClaimAvailable(ctx context.Context, lotID int64) (spot.Handle, error)
	Occupy(ctx context.Context, h spot.Handle, reservationID int64) error
	FindForUpdate(ctx context.Context, lotID int64, number int) (*spot.Spot, error)
	Free(ctx context.Context, spotID int64) error
	LockReclaimable(ctx context.Context, lotID int64, limit int) ([]int64, error)
	// DeleteAvailable removes only spots that are still Available and reports
	// how many went.
	DeleteAvailable(ctx context.Context, ids []int64) (int, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) (int64, error)
	FindForUpdate(ctx context.Context, id, userID int64) (*reservation.Reservation, error)
	Close(ctx context.Context, r *reservation.Reservation) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*user.User, error)
	FindByIdentifier(ctx context.Context, identifier user.Identifier) (*user.User, error)
	FindByUsernameForUpdate(ctx context.Context, username user.Username) (*user.User, error)
	// UpdateProfile writes the contact and profile fields of u.
	UpdateProfile(ctx context.Context, u *user.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	SetActive(ctx context.Context, id int64, active bool) error
	// StartParking fails with user.ErrUserInactive for inactive accounts.
	StartParking(ctx context.Context, id int64) error
	EndParking(ctx context.Context, id int64) error
}

type EventRepository interface {
	Append(ctx context.Context, e Event) error
	FetchPending(ctx context.Context, limit, maxAttempts int) ([]Event, error)
	MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	CountPending(ctx context.Context) (int64, error)
}
