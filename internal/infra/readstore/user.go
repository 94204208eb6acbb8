package readstore

import (
	"context"

	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/pkg/pgconv"
	"parking-reservation/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db query.DBTX, id int64) (query.User, error)
	ListUsers(ctx context.Context, db query.DBTX, arg query.ListUsersParams) ([]query.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserView(row), nil
}

func (r *UserReadStore) List(ctx context.Context, filter queries.UserFilter, limit, offset int32) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db, query.ListUsersParams{
		Search:  filter.Search,
		SortKey: string(filter.Sort),
		Desc:    filter.Desc,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, nil
}

func toUserView(row query.User) *queries.UserView {
	return &queries.UserView{
		ID:            row.ID,
		Username:      row.Username,
		Email:         row.Email,
		Phone:         row.Phone,
		FullName:      row.FullName,
		Role:          row.Role,
		Gender:        pgconv.StringPtrFromPgtype(row.Gender),
		Address:       row.Address,
		Pincode:       pgconv.StringPtrFromPgtype(row.Pincode),
		IsActive:      row.IsActive,
		TotalParking:  int(row.TotalParking),
		ActiveParking: int(row.ActiveParking),
		LastLogin:     pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
