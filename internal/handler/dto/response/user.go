package response

import (
	"time"

	"parking-reservation/internal/usecase/queries"
)

type UserResponse struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	FullName      string     `json:"full_name"`
	Role          string     `json:"role"`
	Gender        *string    `json:"gender,omitempty"`
	Address       string     `json:"address"`
	Pincode       *string    `json:"pincode,omitempty"`
	IsActive      bool       `json:"is_active"`
	TotalParking  int        `json:"total_parking"`
	ActiveParking int        `json:"active_parking"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return copyView[UserResponse](v)
}

type UserListResponse struct {
	Users      []*UserResponse `json:"users"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	return copyViews[UserResponse](vs)
}
