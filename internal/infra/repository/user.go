package repository

import (
	"context"
	"time"

	"parking-reservation/internal/domain/user"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/infra/repository/converter"
	"parking-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (int64, error)
	FindUserByIDForUpdate(ctx context.Context, db query.DBTX, id int64) (query.User, error)
	FindUserByIdentifier(ctx context.Context, db query.DBTX, identifier string) (query.User, error)
	FindUserByUsernameForUpdate(ctx context.Context, db query.DBTX, username string) (query.User, error)
	UpdateUserProfile(ctx context.Context, db query.DBTX, arg query.UpdateUserProfileParams) (int64, error)
	UpdateUserPassword(ctx context.Context, db query.DBTX, id int64, hash string) (int64, error)
	UpdateUserLastLogin(ctx context.Context, db query.DBTX, id int64, at pgtype.Timestamptz) error
	SetUserActive(ctx context.Context, db query.DBTX, id int64, active bool) (int64, error)
	StartUserParking(ctx context.Context, db query.DBTX, id int64) (int64, error)
	EndUserParking(ctx context.Context, db query.DBTX, id int64) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      query.DBTX
}

func NewUserRepository(queries UserWriteQueries, db query.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	id, err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByIDForUpdate(ctx context.Context, id int64) (*user.User, error) {
	row, err := r.queries.FindUserByIDForUpdate(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier user.Identifier) (*user.User, error) {
	row, err := r.queries.FindUserByIdentifier(ctx, r.db, identifier.Value())
	return r.toDomain(row, err)
}

func (r *UserRepository) FindByUsernameForUpdate(ctx context.Context, username user.Username) (*user.User, error) {
	row, err := r.queries.FindUserByUsernameForUpdate(ctx, r.db, username.Value())
	return r.toDomain(row, err)
}

func (r *UserRepository) toDomain(row query.User, err error) (*user.User, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	u, err := converter.UserFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, id, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u *user.User) error {
	n, err := r.queries.UpdateUserProfile(ctx, r.db, converter.UserToProfileParams(u))
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	n, err := r.queries.UpdateUserPassword(ctx, r.db, id, passwordHash)
	if err != nil {
		return infra.WrapRepoErr("failed to update user password", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	n, err := r.queries.SetUserActive(ctx, r.db, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to toggle user", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) StartParking(ctx context.Context, id int64) error {
	n, err := r.queries.StartUserParking(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment user parking", err)
	}
	if n == 0 {
		return user.ErrUserInactive
	}
	return nil
}

func (r *UserRepository) EndParking(ctx context.Context, id int64) error {
	n, err := r.queries.EndUserParking(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement user parking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user has no active parking", nil, infra.KindCheckViolation)
	}
	return nil
}
