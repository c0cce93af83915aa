package auth

import (
	"context"
	"testing"
	"time"

	"grocery/config"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/infra/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecrets = config.SecretKeyConfig{
	Access:  "access-secret-for-tests",
	Refresh: "refresh-secret-for-tests",
}

func newTestJWTService(t *testing.T) (*jwtService, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return newJWTService(testSecrets, 2*time.Hour, 7*24*time.Hour, cache.NewRedisCache(client)), server
}

func testPrincipal() *entity.Principal {
	return &entity.Principal{
		UserID: uuid.New(),
		Email:  "shopper@example.com",
		Role:   entity.RoleVerified,
	}
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}}, nil)
	assert.Error(t, err)
}

func TestJWTService_AccessRoundTrip(t *testing.T) {
	svc, _ := newTestJWTService(t)
	principal := testPrincipal()

	pair, err := svc.IssueTokenPair(context.Background(), principal)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	got, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, principal, got)
}

func TestJWTService_StoresRefreshToken(t *testing.T) {
	svc, server := newTestJWTService(t)
	principal := testPrincipal()

	pair, err := svc.IssueTokenPair(context.Background(), principal)
	require.NoError(t, err)

	key := "refreshToken:" + principal.UserID.String()
	stored, err := server.Get(key)
	require.NoError(t, err)
	assert.Equal(t, pair.RefreshToken, stored)
	assert.Equal(t, 7*24*time.Hour, server.TTL(key))
}

func TestJWTService_RefreshRoundTrip(t *testing.T) {
	svc, _ := newTestJWTService(t)
	principal := testPrincipal()
	ctx := context.Background()

	pair, err := svc.IssueTokenPair(ctx, principal)
	require.NoError(t, err)

	got, err := svc.VerifyRefresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, principal, got)
}

func TestJWTService_SecondIssueSupersedesFirstRefresh(t *testing.T) {
	svc, _ := newTestJWTService(t)
	principal := testPrincipal()
	ctx := context.Background()

	first, err := svc.IssueTokenPair(ctx, principal)
	require.NoError(t, err)
	second, err := svc.IssueTokenPair(ctx, principal)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = svc.VerifyRefresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshMismatch)

	_, err = svc.VerifyRefresh(ctx, second.RefreshToken)
	assert.NoError(t, err)
}

func TestJWTService_RefreshAfterRevoke(t *testing.T) {
	svc, _ := newTestJWTService(t)
	principal := testPrincipal()
	ctx := context.Background()

	pair, err := svc.IssueTokenPair(ctx, principal)
	require.NoError(t, err)
	require.NoError(t, svc.RevokeRefresh(ctx, principal.UserID))

	_, err = svc.VerifyRefresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshMismatch)
}

func TestJWTService_RefreshStoreExpired(t *testing.T) {
	svc, server := newTestJWTService(t)
	ctx := context.Background()

	pair, err := svc.IssueTokenPair(ctx, testPrincipal())
	require.NoError(t, err)
	server.FastForward(8 * 24 * time.Hour)

	_, err = svc.VerifyRefresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshMismatch)
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	svc, _ := newTestJWTService(t)
	ctx := context.Background()

	pair, err := svc.IssueTokenPair(ctx, testPrincipal())
	require.NoError(t, err)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = svc.VerifyRefresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ExpiredAccessToken(t *testing.T) {
	svc, _ := newTestJWTService(t)
	issuedAt := time.Now().Add(-3 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	pair, err := svc.IssueTokenPair(context.Background(), testPrincipal())
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc, _ := newTestJWTService(t)
	principal := testPrincipal()

	claims := jwt.MapClaims{
		"userId": principal.UserID.String(),
		"email":  principal.Email,
		"role":   principal.Role.String(),
		"type":   "access",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name: "wrong secret",
			token: func() string {
				s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
				return s
			},
		},
		{
			name: "other hmac algorithm",
			token: func() string {
				s, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecrets.Access))
				return s
			},
		},
		{
			name: "missing expiry",
			token: func() string {
				noExp := jwt.MapClaims{"userId": claims["userId"], "email": claims["email"], "role": claims["role"], "type": "access"}
				s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, noExp).SignedString([]byte(testSecrets.Access))
				return s
			},
		},
		{
			name: "unknown role",
			token: func() string {
				bad := jwt.MapClaims{"userId": claims["userId"], "role": "ROOT", "type": "access", "exp": claims["exp"]}
				s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, bad).SignedString([]byte(testSecrets.Access))
				return s
			},
		},
		{
			name:  "malformed",
			token: func() string { return "not-a-jwt" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyAccess(tt.token())
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestJWTService_StoreUnavailable(t *testing.T) {
	svc, server := newTestJWTService(t)
	server.Close()

	_, err := svc.IssueTokenPair(context.Background(), testPrincipal())
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}
