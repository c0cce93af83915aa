// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"time"

	"grocery/config"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/service"
	"grocery/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// refreshTokenKeyPrefix namespaces stored refresh tokens in the cache.
const refreshTokenKeyPrefix = "refreshToken:"

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// The current refresh token of each user lives in the cache under refreshToken:<userId>.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	cache         service.Cache
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, cache service.Cache) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return newJWTService(cfg.SecretKey, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL, cache), nil
}

func newJWTService(secrets config.SecretKeyConfig, accessTTL, refreshTTL time.Duration, cache service.Cache) *jwtService {
	return &jwtService{
		accessSecret:  []byte(secrets.Access),
		refreshSecret: []byte(secrets.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		cache:         cache,
		now:           time.Now,
	}
}

// RefreshTokenKey returns the cache key holding the refresh token of userID.
func RefreshTokenKey(userID uuid.UUID) string {
	return refreshTokenKeyPrefix + userID.String()
}

// IssueTokenPair signs an access and a refresh token and stores the refresh token, replacing any previous one.
func (s *jwtService) IssueTokenPair(ctx context.Context, principal *entity.Principal) (*service.TokenPair, error) {
	if principal == nil || principal.UserID == uuid.Nil {
		return nil, errors.New("principal is required to issue tokens")
	}

	accessToken, err := s.sign(principal, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}

	refreshToken, err := s.sign(principal, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, errors.Wrap(err, "sign refresh token")
	}

	if err := s.cache.SetWithExpiration(ctx, RefreshTokenKey(principal.UserID), refreshToken, s.refreshTTL); err != nil {
		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccess checks signature, algorithm, expiry and token type of an access token.
func (s *jwtService) VerifyAccess(token string) (*entity.Principal, error) {
	claims, err := s.parse(token, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims.principal(), nil
}

// VerifyRefresh checks a refresh token and requires it to equal the stored token of its user.
func (s *jwtService) VerifyRefresh(ctx context.Context, token string) (*entity.Principal, error) {
	claims, err := s.parse(token, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	stored, err := s.cache.Get(ctx, RefreshTokenKey(claims.UserID))
	if err != nil {
		if errors.Is(err, service.ErrCacheMiss) {
			return nil, domainerrors.ErrRefreshMismatch
		}

		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	if stored != token {
		return nil, domainerrors.ErrRefreshMismatch
	}

	return claims.principal(), nil
}

// RevokeRefresh deletes the stored refresh token of userID.
func (s *jwtService) RevokeRefresh(ctx context.Context, userID uuid.UUID) error {
	if err := s.cache.Delete(ctx, RefreshTokenKey(userID)); err != nil {
		return errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return nil
}

func (s *jwtService) sign(principal *entity.Principal, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID: principal.UserID,
		Email:  principal.Email,
		Role:   principal.Role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   principal.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *jwtService) parse(token string, secret []byte, tokenType string) (*tokenClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := &service.Claims{}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}); err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	if claims.Type != tokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if claims.UserID == uuid.Nil || !claims.Role.IsValid() {
		return nil, errors.New("token is missing identity claims")
	}

	return &tokenClaims{claims}, nil
}

type tokenClaims struct {
	*service.Claims
}

func (c *tokenClaims) principal() *entity.Principal {
	return &entity.Principal{
		UserID: c.UserID,
		Email:  c.Email,
		Role:   c.Role,
	}
}
