package commands

import (
	"time"

	"parking-reservation/internal/domain/user"

	"github.com/shopspring/decimal"
)

// Write-side inputs and results keep commands independent of the HTTP DTOs
// and of the read-side views.

type BookInput struct {
	LotID         int64
	VehicleNumber string
}

type BookResult struct {
	ReservationID int64
	LotID         int64
	SpotNumber    int
	CostPerHour   decimal.Decimal
	StartTime     time.Time
}

type ReleaseResult struct {
	ReservationID int64
	LotID         int64
	SpotNumber    int
	TotalCost     decimal.Decimal
	EndTime       time.Time
}

type LotInput struct {
	Name        string
	Address     string
	Pincode     string
	CostPerHour decimal.Decimal
	MaxSpots    int
}

type RegisterInput struct {
	Username string
	Email    string
	Phone    string
	Password string
	FullName string
	Gender   string
	Address  string
	Pincode  string
}

type ResetPasswordInput struct {
	Username    string
	Email       string
	NewPassword string
}

type ProfileInput struct {
	Email    string
	Phone    string
	FullName string
	Gender   string
	Address  string
	Pincode  string
}

type LoginInput struct {
	Identifier string
	Password   string
}

type LoginResult struct {
	UserID      int64
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type TokenIssuer interface {
	GenerateToken(userID int64, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

// ParkingMetrics receives lifecycle outcomes after commit.
type ParkingMetrics interface {
	ReservationOpened(lotID int64)
	ReservationClosed(lotID int64, cost decimal.Decimal)
	BookingRejected(reason string)
}

type nopMetrics struct{}

func (nopMetrics) ReservationOpened(int64)                  {}
func (nopMetrics) ReservationClosed(int64, decimal.Decimal) {}
func (nopMetrics) BookingRejected(string)                   {}

// NopMetrics discards every observation.
func NopMetrics() ParkingMetrics { return nopMetrics{} }
