package ports

import (
	"context"

	"github.com/webshop/storefront-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Implementations must enforce email uniqueness and report a conflicting
// insert as domain.ErrUserExists; missing records are domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateRole sets the role and returns the updated record.
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	// Delete removes the user and returns the record as it was before deletion.
	Delete(ctx context.Context, id string) (*domain.User, error)
}
