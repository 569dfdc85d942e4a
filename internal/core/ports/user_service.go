package ports

import (
	"context"

	"github.com/webshop/storefront-api/internal/core/domain"
)

// RegisterInput carries the fields accepted on self-registration. The role is
// always assigned by the service.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UserService defines use-case operations on user accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}

// AuthService resolves Basic credentials to a principal.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// ProductService exposes the read-only product catalog.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
}
