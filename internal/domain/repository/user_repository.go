// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"grocery/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the email is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrProfileNotFound is returned when the user has no profile.
	ErrProfileNotFound = errors.New("user profile not found")
	// ErrProfileAlreadyExists is returned when the user already has a profile.
	ErrProfileAlreadyExists = errors.New("user profile already exists")
)

// UserRepository defines the standard operations for user persistence.
// Users are returned with their profile preloaded when one exists.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns every user ordered by creation time.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the password hash and role of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and its profile.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateProfile persists a profile for an existing user.
	CreateProfile(ctx context.Context, profile *entity.UserProfile) error

	// UpdateProfile modifies an existing profile.
	UpdateProfile(ctx context.Context, profile *entity.UserProfile) error
}
