package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/webshop/storefront-api/internal/core/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*UserCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewUserCache(client, ttl), mr
}

func TestUserCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	u, ok, err := cache.Get(context.Background(), "000000000000000000000001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || u != nil {
		t.Fatalf("expected miss, got %+v", u)
	}
}

func TestUserCache_RoundTripWithoutHash(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	user := &domain.User{
		ID:           "000000000000000000000001",
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: "$2a$10$secret-hash",
		Role:         domain.RoleCustomer,
	}

	if err := cache.Set(ctx, user); err != nil {
		t.Fatalf("Set: %v", err)
	}

	raw, err := mr.Get("user:" + user.ID)
	if err != nil {
		t.Fatalf("key not stored: %v", err)
	}
	if strings.Contains(raw, "secret-hash") {
		t.Fatalf("password hash written to cache: %s", raw)
	}

	got, ok, err := cache.Get(ctx, user.ID)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.ID != user.ID || got.Email != user.Email || got.Role != domain.RoleCustomer || got.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserCache_TTLAndDelete(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	ctx := context.Background()
	user := &domain.User{ID: "000000000000000000000002", Name: "Bob", Email: "bob@example.com", Role: domain.RoleAdmin}

	if err := cache.Set(ctx, user); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ttl := mr.TTL("user:" + user.ID); ttl != defaultUserTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultUserTTL, ttl)
	}

	if err := cache.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, user.ID); ok {
		t.Fatalf("expected entry to be evicted")
	}
}

func TestUserCache_Expiry(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	user := &domain.User{ID: "000000000000000000000003", Name: "Cy", Email: "cy@example.com", Role: domain.RoleCustomer}

	if err := cache.Set(ctx, user); err != nil {
		t.Fatalf("Set: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, ok, err := cache.Get(ctx, user.ID); err != nil || ok {
		t.Fatalf("expected expired entry to miss, ok=%v err=%v", ok, err)
	}
}

func TestUserCache_CorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)

	if err := mr.Set("user:bad", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := cache.Get(context.Background(), "bad"); err == nil {
		t.Fatalf("expected decode error")
	}
}
