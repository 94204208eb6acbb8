package queries

import (
	"context"

	"parking-reservation/internal/infra"
	"parking-reservation/internal/usecase/shared"
)

//go:generate mockgen -destination=../../testutil/mock/queries/user_mock.go -package=queriesmock parking-reservation/internal/usecase/queries UserQueries

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID int64) (*UserView, error)
	// GetByID is the admin lookup and returns deactivated accounts too.
	GetByID(ctx context.Context, userID int64) (*UserView, error)
	List(ctx context.Context, filter UserFilter, after *Cursor, limit int) ([]*UserView, *Cursor, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	List(ctx context.Context, filter UserFilter, limit, offset int32) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

// Deactivated accounts keep a valid token until it expires, so the profile
// lookup reports them as missing.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID int64) (*UserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, shared.Categorize(err)
	}

	if !user.IsActive {
		return nil, ErrUserNotFound
	}

	return user, nil
}

func (q *userQueriesImpl) GetByID(ctx context.Context, userID int64) (*UserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, shared.Categorize(err)
	}
	return user, nil
}

func (q *userQueriesImpl) List(ctx context.Context, filter UserFilter, after *Cursor, limit int) ([]*UserView, *Cursor, error) {
	if filter.Sort == "" {
		filter.Sort = UserSortID
	}
	if !filter.Sort.IsValid() {
		return nil, nil, ErrInvalidUserSort
	}
	limit = ValidateLimit(limit)
	offset, err := after.offset()
	if err != nil {
		return nil, nil, err
	}

	// #nosec G115 -- limit is capped by ValidateLimit, offset comes from our own cursor
	rows, err := q.readStore.List(ctx, filter, int32(limit+1), int32(offset))
	if err != nil {
		return nil, nil, shared.Categorize(err)
	}
	rows, next := nextCursor(rows, offset, limit)
	return rows, next, nil
}
