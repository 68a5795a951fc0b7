package middleware

import (
	"backoffice/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const currentUserKey = "current_user"

// CurrentUser пользователь, от имени которого выполняется запрос
type CurrentUser struct {
	PID  uuid.UUID
	Role role.Role
}

func setCurrentUser(c *gin.Context, user CurrentUser) {
	c.Set(currentUserKey, user)
}

// GetUserFromContext извлекает пользователя, сохранённого WithAuthCheck
func GetUserFromContext(c *gin.Context) (CurrentUser, bool) {
	if user, exists := c.Get(currentUserKey); exists {
		if u, ok := user.(CurrentUser); ok {
			return u, true
		}
	}
	return CurrentUser{}, false
}
