package query

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, username, email, phone, password_hash, full_name, role, gender, address, pincode,
	is_active, total_parking, active_parking, last_login, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.FullName,
		&u.Role,
		&u.Gender,
		&u.Address,
		&u.Pincode,
		&u.IsActive,
		&u.TotalParking,
		&u.ActiveParking,
		&u.LastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

const createUser = `
INSERT INTO users (username, email, phone, password_hash, full_name, role, gender, address, pincode)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

type CreateUserParams struct {
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	FullName     string
	Role         string
	Gender       pgtype.Text
	Address      string
	Pincode      pgtype.Text
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (int64, error) {
	row := db.QueryRow(ctx, createUser,
		arg.Username,
		arg.Email,
		arg.Phone,
		arg.PasswordHash,
		arg.FullName,
		arg.Role,
		arg.Gender,
		arg.Address,
		arg.Pincode,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id int64) (User, error) {
	return scanUser(db.QueryRow(ctx, findUserByID, id))
}

const findUserByIDForUpdate = `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

func (q *Queries) FindUserByIDForUpdate(ctx context.Context, db DBTX, id int64) (User, error) {
	return scanUser(db.QueryRow(ctx, findUserByIDForUpdate, id))
}

// Login accepts username, email or phone. Identifiers are stored lower case.
const findUserByIdentifier = `SELECT ` + userColumns + ` FROM users
WHERE username = $1 OR email = $1 OR phone = $1
LIMIT 1`

func (q *Queries) FindUserByIdentifier(ctx context.Context, db DBTX, identifier string) (User, error) {
	return scanUser(db.QueryRow(ctx, findUserByIdentifier, identifier))
}

const findUserByUsernameForUpdate = `SELECT ` + userColumns + ` FROM users WHERE username = $1 FOR UPDATE`

func (q *Queries) FindUserByUsernameForUpdate(ctx context.Context, db DBTX, username string) (User, error) {
	return scanUser(db.QueryRow(ctx, findUserByUsernameForUpdate, username))
}

const updateUserProfile = `
UPDATE users
SET email = $2, phone = $3, full_name = $4, gender = $5, address = $6, pincode = $7, updated_at = NOW()
WHERE id = $1`

type UpdateUserProfileParams struct {
	ID       int64
	Email    string
	Phone    string
	FullName string
	Gender   pgtype.Text
	Address  string
	Pincode  pgtype.Text
}

func (q *Queries) UpdateUserProfile(ctx context.Context, db DBTX, arg UpdateUserProfileParams) (int64, error) {
	tag, err := db.Exec(ctx, updateUserProfile,
		arg.ID,
		arg.Email,
		arg.Phone,
		arg.FullName,
		arg.Gender,
		arg.Address,
		arg.Pincode,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updateUserPassword = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

func (q *Queries) UpdateUserPassword(ctx context.Context, db DBTX, id int64, hash string) (int64, error) {
	tag, err := db.Exec(ctx, updateUserPassword, id, hash)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updateUserLastLogin = `UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id int64, at pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, updateUserLastLogin, id, at)
	return err
}

const setUserActive = `UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1`

func (q *Queries) SetUserActive(ctx context.Context, db DBTX, id int64, active bool) (int64, error) {
	tag, err := db.Exec(ctx, setUserActive, id, active)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const startUserParking = `
UPDATE users
SET total_parking = total_parking + 1,
    active_parking = active_parking + 1,
    updated_at = NOW()
WHERE id = $1 AND is_active`

// StartUserParking returns 0 affected rows for an inactive or unknown user.
func (q *Queries) StartUserParking(ctx context.Context, db DBTX, id int64) (int64, error) {
	tag, err := db.Exec(ctx, startUserParking, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const endUserParking = `
UPDATE users
SET active_parking = active_parking - 1,
    updated_at = NOW()
WHERE id = $1 AND active_parking > 0`

func (q *Queries) EndUserParking(ctx context.Context, db DBTX, id int64) (int64, error) {
	tag, err := db.Exec(ctx, endUserParking, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// UserSortColumns maps the public sort keys to columns.
var UserSortColumns = map[string]string{
	"id":            "id",
	"username":      "username",
	"email":         "email",
	"total_parking": "total_parking",
}

type ListUsersParams struct {
	Search  string
	SortKey string
	Desc    bool
	Limit   int32
	Offset  int32
}

func (q *Queries) ListUsers(ctx context.Context, db DBTX, arg ListUsersParams) ([]User, error) {
	column, ok := UserSortColumns[arg.SortKey]
	if !ok {
		column = "id"
	}
	direction := "ASC"
	if arg.Desc {
		direction = "DESC"
	}

	sql := fmt.Sprintf(`SELECT %s FROM users
WHERE ($1 = '' OR username ILIKE '%%' || $1 || '%%' OR email ILIKE '%%' || $1 || '%%' OR phone ILIKE '%%' || $1 || '%%' OR full_name ILIKE '%%' || $1 || '%%')
ORDER BY %s %s, id
LIMIT $2 OFFSET $3`, userColumns, column, direction)

	rows, err := db.Query(ctx, sql, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}
