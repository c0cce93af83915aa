package service

import (
	"context"

	"grocery/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID   `json:"userId"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	Type   string      `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair is an access token and the refresh token that can renew it.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues and verifies signed tokens.
// Only one refresh token per user is live at a time; issuing a new pair supersedes the previous one.
type TokenService interface {
	// IssueTokenPair signs a new pair for principal and stores the refresh token.
	IssueTokenPair(ctx context.Context, principal *entity.Principal) (*TokenPair, error)

	// VerifyAccess returns the principal of a valid access token or ErrInvalidToken.
	VerifyAccess(token string) (*entity.Principal, error)

	// VerifyRefresh returns the principal of a valid refresh token that matches the stored one.
	// It fails with ErrInvalidToken or ErrRefreshMismatch.
	VerifyRefresh(ctx context.Context, token string) (*entity.Principal, error)

	// RevokeRefresh removes the stored refresh token of a user.
	RevokeRefresh(ctx context.Context, userID uuid.UUID) error
}
