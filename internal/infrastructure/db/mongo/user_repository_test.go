package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/webshop/storefront-api/internal/core/domain"
)

func TestInsertError_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Index: 0, Code: 11000, Message: "E11000 duplicate key error collection: webshop.users index: users_email_unique"},
		},
	}

	if err := insertError(dup); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestInsertError_OtherFailure(t *testing.T) {
	boom := errors.New("connection reset")

	err := insertError(boom)
	if errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("unexpected ErrUserExists for %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestUserRepository_InvalidIDIsNotFound(t *testing.T) {
	// Malformed ids are rejected before the collection is touched.
	r := &UserRepository{}
	ctx := context.Background()

	if _, err := r.FindByID(ctx, "not-an-object-id"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("FindByID: expected ErrUserNotFound, got %v", err)
	}
	if _, err := r.UpdateRole(ctx, "zzzzzzzz", domain.RoleAdmin); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("UpdateRole: expected ErrUserNotFound, got %v", err)
	}
	if _, err := r.Delete(ctx, "abcdefgh"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("Delete: expected ErrUserNotFound, got %v", err)
	}
}

func TestMongoUser_ToDomain(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	u := (&mongoUser{
		ID:           oid,
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         "customer",
		CreatedAt:    created,
		UpdatedAt:    created,
	}).toDomain()

	if u.ID != oid.Hex() || len(u.ID) != 24 {
		t.Fatalf("unexpected id %q", u.ID)
	}
	if u.Role != domain.RoleCustomer || u.PasswordHash != "$2a$10$hash" || !u.CreatedAt.Equal(created) {
		t.Fatalf("unexpected user: %+v", u)
	}
}
