//go:build unit || e2e

package builder

import (
	"time"

	"parking-reservation/internal/domain/address"
	"parking-reservation/internal/domain/user"
	"parking-reservation/internal/infra/query"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Username     string
	Email        string
	Phone        string
	FullName     string
	PasswordHash string
	Role         string
	Gender       string
	Address      string
	Pincode      string

	// persisted state, used by BuildInfra
	ID            int64
	IsActive      bool
	TotalParking  int
	ActiveParking int
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "ravi.k",
		Email:        "ravi@example.com",
		Phone:        "9876543210",
		FullName:     "Ravi Kumar",
		PasswordHash: "hashed_password",
		Role:         "user",
		Gender:       "m",
		Address:      "12 MG Road",
		Pincode:      "560001",
		ID:           1,
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithUsername(s string) *UserBuilder { u.Username = s; return u }
func (u *UserBuilder) WithEmail(s string) *UserBuilder    { u.Email = s; return u }
func (u *UserBuilder) WithPhone(s string) *UserBuilder    { u.Phone = s; return u }
func (u *UserBuilder) WithRole(s string) *UserBuilder     { u.Role = s; return u }
func (u *UserBuilder) WithFullName(s string) *UserBuilder { u.FullName = s; return u }
func (u *UserBuilder) WithID(id int64) *UserBuilder       { u.ID = id; return u }
func (u *UserBuilder) AsInactive() *UserBuilder           { u.IsActive = false; return u }

func (u *UserBuilder) WithParking(total, active int) *UserBuilder {
	u.TotalParking = total
	u.ActiveParking = active
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	profile := user.Profile{FullName: u.FullName, Address: u.Address}
	if u.Gender != "" {
		g, err := user.NewGender(u.Gender)
		if err != nil {
			return nil, err
		}
		profile.Gender = &g
	}
	if u.Pincode != "" {
		p, err := address.NewPincode(u.Pincode)
		if err != nil {
			return nil, err
		}
		profile.Pincode = &p
	}

	return user.NewUser(username, email, phone, u.PasswordHash, role, profile)
}

// BuildInfra returns the row as the query layer would scan it.
func (u *UserBuilder) BuildInfra() query.User {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	row := query.User{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Phone:         u.Phone,
		PasswordHash:  u.PasswordHash,
		FullName:      u.FullName,
		Role:          u.Role,
		Address:       u.Address,
		IsActive:      u.IsActive,
		TotalParking:  int32(u.TotalParking),  // #nosec G115
		ActiveParking: int32(u.ActiveParking), // #nosec G115
		CreatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
	}
	if u.Gender != "" {
		row.Gender = pgtype.Text{String: u.Gender, Valid: true}
	}
	if u.Pincode != "" {
		row.Pincode = pgtype.Text{String: u.Pincode, Valid: true}
	}
	return row
}
