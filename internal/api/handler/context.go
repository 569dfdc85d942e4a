package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/webshop/storefront-api/internal/core/domain"
)

const targetUserKey = "target_user"

// SetTargetUser stores the user addressed by a /users/{id} request. The
// dispatcher resolves it before authentication so unknown ids answer 404.
func SetTargetUser(c echo.Context, user *domain.User) {
	c.Set(targetUserKey, user)
}

func targetUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(targetUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
