package usecase

import (
	"context"

	"grocery/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SessionOutput returns the generated tokens and the authenticated user.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// SessionUsecase manages the single refresh-token session of each user.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error)
	Logout(ctx context.Context, principal *entity.Principal) error
}
