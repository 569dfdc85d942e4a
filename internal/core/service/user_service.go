package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/webshop/storefront-api/internal/core/domain"
	"github.com/webshop/storefront-api/internal/core/ports"
)

// UserService implements registration and admin management of user accounts.
type UserService struct {
	repo     ports.UserRepository
	cache    ports.UserCache
	hashCost int
	log      zerolog.Logger
}

// UserServiceOption customises a UserService.
type UserServiceOption func(*UserService)

// WithHashCost overrides the bcrypt cost used for new passwords.
func WithHashCost(cost int) UserServiceOption {
	return func(s *UserService) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.hashCost = cost
		}
	}
}

// NewUserService wires a UserService. cache may be nil.
func NewUserService(repo ports.UserRepository, cache ports.UserCache, log zerolog.Logger, opts ...UserServiceOption) *UserService {
	s := &UserService{
		repo:     repo,
		cache:    cache,
		hashCost: bcrypt.DefaultCost,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a customer account. Any role supplied by the caller is
// ignored; the server is the only authority for the initial role.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	user, err := s.create(ctx, in, domain.RoleCustomer)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// SeedAdmin creates an admin account unless the email is already registered.
// It reports whether a new account was created.
func (s *UserService) SeedAdmin(ctx context.Context, in ports.RegisterInput) (bool, error) {
	user, err := s.create(ctx, in, domain.RoleAdmin)
	if errors.Is(err, domain.ErrUserExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.log.Info().Str("user_id", user.ID).Msg("admin account seeded")
	return true, nil
}

func (s *UserService) create(ctx context.Context, in ports.RegisterInput, role domain.Role) (*domain.User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.ErrInvalidUser
	}

	// Fast path only; the unique index on email is what guarantees a single
	// winner between concurrent registrations.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, domain.ErrPasswordTooLong
	}
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}
	return created, nil
}

// List returns every registered user.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get looks a user up by id, consulting the cache first.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("user cache read failed, falling back to store")
		} else if ok {
			return cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("user cache write failed")
		}
	}
	return user, nil
}

// UpdateRole changes the role of the user identified by id. Invalid roles are
// rejected before the store is touched.
func (s *UserService) UpdateRole(ctx context.Context, id, role string) (*domain.User, error) {
	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateRole(ctx, id, r)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update role: %w", err)
	}

	s.evict(ctx, id)
	s.log.Info().Str("user_id", id).Str("role", string(r)).Msg("user role updated")
	return updated, nil
}

// Delete removes the user and returns its last stored representation.
func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}

	s.evict(ctx, id)
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return deleted, nil
}

func (s *UserService) evict(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("user cache eviction failed")
	}
}
