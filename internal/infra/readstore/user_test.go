//go:build unit

package readstore

import (
	"context"
	"testing"

	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/testutil/builder"
	"parking-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db query.DBTX, id int64) (query.User, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.User), args.Error(1)
}

func (m *MockUserReadQueries) ListUsers(ctx context.Context, db query.DBTX, arg query.ListUsersParams) ([]query.User, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.User), args.Error(1)
}

func TestUserReadStore_FindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().WithID(7).WithParking(4, 1).BuildInfra()
	inactiveUser := builder.NewUserBuilder().WithID(8).AsInactive().BuildInfra()

	tests := []struct {
		name       string
		userID     int64
		mockReturn query.User
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			userID:     7,
			mockReturn: testUser,
		},
		{
			name:       "success - inactive user (for validation)",
			userID:     8,
			mockReturn: inactiveUser,
		},
		{
			name:      "user not found",
			userID:    99,
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			userID:    7,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn.ID, view.ID)
				assert.Equal(t, tt.mockReturn.Username, view.Username)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Equal(t, int(tt.mockReturn.ActiveParking), view.ActiveParking)
				require.NotNil(t, view.Pincode)
				assert.Equal(t, "560001", *view.Pincode)
				assert.Nil(t, view.LastLogin)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserReadStore_List(t *testing.T) {
	rows := []query.User{
		builder.NewUserBuilder().WithID(1).BuildInfra(),
		builder.NewUserBuilder().WithID(2).WithUsername("asha").With(func(b *builder.UserBuilder) { b.Gender = "" }).BuildInfra(),
	}

	mockQueries := new(MockUserReadQueries)
	mockQueries.On("ListUsers", mock.Anything, mock.Anything, query.ListUsersParams{
		Search:  "a",
		SortKey: "email",
		Desc:    true,
		Limit:   21,
		Offset:  20,
	}).Return(rows, nil)

	views, err := NewUserReadStore(mockQueries, nil).List(context.Background(),
		queries.UserFilter{Search: "a", Sort: queries.UserSortEmail, Desc: true}, 21, 20)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "asha", views[1].Username)
	assert.Nil(t, views[1].Gender)
	mockQueries.AssertExpectations(t)
}
