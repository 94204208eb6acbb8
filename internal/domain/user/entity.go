package user

import (
	"errors"
	"strings"
	"time"

	"parking-reservation/internal/domain/address"
)

var (
	ErrUserInactive   = errors.New("user is inactive")
	ErrActiveParkings = errors.New("user still has active parkings")
	ErrResetMismatch  = errors.New("username and email do not match")
)

// User is the account aggregate. The parking counters are owned by the
// reservation lifecycle and only read here.
type User struct {
	id            int64
	username      Username
	email         Email
	phone         Phone
	fullName      string
	passwordHash  string
	role          Role
	gender        *Gender
	address       string
	pincode       *address.Pincode
	isActive      bool
	totalParking  int
	activeParking int
	lastLogin     *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

type Profile struct {
	FullName string
	Gender   *Gender
	Address  string
	Pincode  *address.Pincode
}

func NewUser(username Username, email Email, phone Phone, passwordHash string, role Role, profile Profile) (*User, error) {
	name := strings.TrimSpace(profile.FullName)
	if name == "" || len(name) > 64 {
		return nil, ErrInvalidName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		username:     username,
		email:        email,
		phone:        phone,
		fullName:     name,
		passwordHash: passwordHash,
		role:         role,
		gender:       profile.Gender,
		address:      strings.TrimSpace(profile.Address),
		pincode:      profile.Pincode,
		isActive:     true,
	}, nil
}

func ReconstructUser(
	id int64,
	username Username,
	email Email,
	phone Phone,
	passwordHash string,
	role Role,
	profile Profile,
	isActive bool,
	totalParking, activeParking int,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		username:      username,
		email:         email,
		phone:         phone,
		fullName:      profile.FullName,
		passwordHash:  passwordHash,
		role:          role,
		gender:        profile.Gender,
		address:       profile.Address,
		pincode:       profile.Pincode,
		isActive:      isActive,
		totalParking:  totalParking,
		activeParking: activeParking,
		lastLogin:     lastLogin,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// UpdateProfile replaces the contact and profile fields. Username, role and
// the parking counters never change here.
func (u *User) UpdateProfile(email Email, phone Phone, profile Profile) error {
	name := strings.TrimSpace(profile.FullName)
	if name == "" || len(name) > 64 {
		return ErrInvalidName
	}
	u.email = email
	u.phone = phone
	u.fullName = name
	u.gender = profile.Gender
	u.address = strings.TrimSpace(profile.Address)
	u.pincode = profile.Pincode
	return nil
}

// ResetPassword requires both the username and the email on record to match.
// Inactive accounts are refused.
func (u *User) ResetPassword(username Username, email Email, newHash string) error {
	if u.username != username || u.email != email {
		return ErrResetMismatch
	}
	if !u.isActive {
		return ErrUserInactive
	}
	u.passwordHash = newHash
	return nil
}

// CanBook rejects inactive accounts.
func (u *User) CanBook() error {
	if !u.isActive {
		return ErrUserInactive
	}
	return nil
}

// CanDeactivate: accounts are only soft-deactivated, and never while a spot is held.
func (u *User) CanDeactivate() error {
	if u.activeParking > 0 {
		return ErrActiveParkings
	}
	return nil
}

func (u *User) ID() int64                 { return u.id }
func (u *User) Username() Username        { return u.username }
func (u *User) Email() Email              { return u.email }
func (u *User) Phone() Phone              { return u.phone }
func (u *User) FullName() string          { return u.fullName }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) Role() Role                { return u.role }
func (u *User) Gender() *Gender           { return u.gender }
func (u *User) Address() string           { return u.address }
func (u *User) Pincode() *address.Pincode { return u.pincode }
func (u *User) IsActive() bool            { return u.isActive }
func (u *User) TotalParking() int         { return u.totalParking }
func (u *User) ActiveParking() int        { return u.activeParking }
func (u *User) LastLogin() *time.Time     { return u.lastLogin }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }
