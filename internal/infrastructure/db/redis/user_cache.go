package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/webshop/storefront-api/internal/core/domain"
)

const defaultUserTTL = 5 * time.Minute

// UserCache stores JSON snapshots of users keyed by id.
// Key format: user:<id>
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUserCache creates a UserCache. A non-positive ttl falls back to defaultUserTTL.
func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	if ttl <= 0 {
		ttl = defaultUserTTL
	}
	return &UserCache{client: client, ttl: ttl}
}

// cachedUser is the stored shape. It has no password hash field.
type cachedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Get returns the cached user and whether it was present.
func (c *UserCache) Get(ctx context.Context, id string) (*domain.User, bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("user cache get: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, false, fmt.Errorf("user cache decode: %w", err)
	}
	return &domain.User{
		ID:    cu.ID,
		Name:  cu.Name,
		Email: cu.Email,
		Role:  domain.Role(cu.Role),
	}, true, nil
}

// Set stores the user for the configured TTL.
func (c *UserCache) Set(ctx context.Context, user *domain.User) error {
	b, err := json.Marshal(cachedUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	})
	if err != nil {
		return fmt.Errorf("user cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), b, c.ttl).Err()
}

// Delete evicts the user from the cache.
func (c *UserCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *UserCache) key(id string) string {
	return "user:" + id
}
