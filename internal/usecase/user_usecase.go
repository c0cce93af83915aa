// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"grocery/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Password string
}

// ProfileInput carries profile fields. Nil fields are left untouched on update.
type ProfileInput struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	Addresses   []entity.ProfileAddress // Nil keeps the stored addresses.
	DateOfBirth *time.Time
}

// UserUsecase defines the interface for account and profile operations.
// Mutations are allowed for the account owner or an ADMIN.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdatePassword(ctx context.Context, actor *entity.Principal, email, password string) (*entity.User, error)
	Delete(ctx context.Context, actor *entity.Principal, email string) (*entity.User, error)
	CreateProfile(ctx context.Context, actor *entity.Principal, email string, input ProfileInput) (*entity.User, error)
	UpdateProfile(ctx context.Context, actor *entity.Principal, email string, input ProfileInput) (*entity.User, error)
}
