//go:build unit

package api_test

import (
	"parking-reservation/internal/domain/user"
	"parking-reservation/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

const (
	testUserID  int64 = 7
	testAdminID int64 = 1
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

// asUser stands in for RequireAuth.
func asUser(id int64, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Set("user_role", role)
	}
}
