package ports

import (
	"context"

	"github.com/webshop/storefront-api/internal/core/domain"
)

// UserCache is a best-effort read-through cache for users looked up by id.
// Cached entries never carry the password hash.
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.User, bool, error)
	Set(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
