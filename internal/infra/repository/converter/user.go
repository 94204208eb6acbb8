package converter

import (
	"fmt"

	"parking-reservation/internal/domain/address"
	"parking-reservation/internal/domain/user"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func UserToCreateParams(u *user.User) query.CreateUserParams {
	params := query.CreateUserParams{
		Username:     u.Username().Value(),
		Email:        u.Email().Value(),
		Phone:        u.Phone().Value(),
		PasswordHash: u.PasswordHash(),
		FullName:     u.FullName(),
		Role:         u.Role().String(),
		Address:      u.Address(),
	}
	if g := u.Gender(); g != nil {
		params.Gender = pgtype.Text{String: string(*g), Valid: true}
	}
	if p := u.Pincode(); p != nil {
		params.Pincode = pgtype.Text{String: p.String(), Valid: true}
	}
	return params
}

func UserToProfileParams(u *user.User) query.UpdateUserProfileParams {
	params := query.UpdateUserProfileParams{
		ID:       u.ID(),
		Email:    u.Email().Value(),
		Phone:    u.Phone().Value(),
		FullName: u.FullName(),
		Address:  u.Address(),
	}
	if g := u.Gender(); g != nil {
		params.Gender = pgtype.Text{String: string(*g), Valid: true}
	}
	if p := u.Pincode(); p != nil {
		params.Pincode = pgtype.Text{String: p.String(), Valid: true}
	}
	return params
}

func UserFromInfra(row query.User) (*user.User, error) {
	username, err := user.NewUsername(row.Username)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", row.ID, err)
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", row.ID, err)
	}
	phone, err := user.NewPhone(row.Phone)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", row.ID, err)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", row.ID, err)
	}

	profile := user.Profile{
		FullName: row.FullName,
		Address:  row.Address,
	}
	if row.Gender.Valid {
		g, err := user.NewGender(row.Gender.String)
		if err != nil {
			return nil, fmt.Errorf("user %d: %w", row.ID, err)
		}
		profile.Gender = &g
	}
	if row.Pincode.Valid {
		p, err := address.NewPincode(row.Pincode.String)
		if err != nil {
			return nil, fmt.Errorf("user %d: %w", row.ID, err)
		}
		profile.Pincode = &p
	}

	return user.ReconstructUser(
		row.ID,
		username,
		email,
		phone,
		row.PasswordHash,
		role,
		profile,
		row.IsActive,
		int(row.TotalParking),
		int(row.ActiveParking),
		pgconv.TimePtrFromPgtype(row.LastLogin),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
