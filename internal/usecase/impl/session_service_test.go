package impl

import (
	"context"
	"testing"

	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/repository"
	"grocery/internal/domain/service"
	mockRepo "grocery/internal/mocks/repository"
	mockSvc "grocery/internal/mocks/service"
	"grocery/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) (usecase.SessionUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewSessionService(SessionServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return srv, userRepo, hasher, tokenService
}

func TestSessionService_Login_Success(t *testing.T) {
	srv, userRepo, hasher, tokenService := newSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "shopper@example.com", PasswordHash: "hash", Role: entity.RoleBasic}

	userRepo.EXPECT().FindByEmail(ctx, "shopper@example.com").Return(user, nil)
	hasher.EXPECT().Check("pw", "hash").Return(true)
	tokenService.EXPECT().IssueTokenPair(ctx, user.Principal()).Return(&service.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

	out, err := srv.Login(ctx, usecase.LoginInput{Email: "Shopper@Example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "a", out.AccessToken)
	assert.Equal(t, "r", out.RefreshToken)
	assert.Equal(t, user, out.User)
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		srv, userRepo, _, _ := newSessionService(t)
		ctx := context.Background()

		userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := srv.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		srv, userRepo, hasher, _ := newSessionService(t)
		ctx := context.Background()

		userRepo.EXPECT().FindByEmail(ctx, "shopper@example.com").Return(&entity.User{PasswordHash: "hash"}, nil)
		hasher.EXPECT().Check("bad", "hash").Return(false)

		_, err := srv.Login(ctx, usecase.LoginInput{Email: "shopper@example.com", Password: "bad"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestSessionService_Refresh_UsesCurrentRole(t *testing.T) {
	srv, userRepo, _, tokenService := newSessionService(t)
	ctx := context.Background()
	userID := uuid.New()
	stale := &entity.Principal{UserID: userID, Email: "shopper@example.com", Role: entity.RoleBasic}
	current := &entity.User{ID: userID, Email: "shopper@example.com", Role: entity.RoleVerified}

	tokenService.EXPECT().VerifyRefresh(ctx, "refresh").Return(stale, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(current, nil)
	tokenService.EXPECT().IssueTokenPair(ctx, current.Principal()).Return(&service.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

	out, err := srv.Refresh(ctx, "refresh")

	require.NoError(t, err)
	assert.Equal(t, "r2", out.RefreshToken)
	assert.Equal(t, entity.RoleVerified, out.User.Role)
}

func TestSessionService_Refresh_Rejected(t *testing.T) {
	srv, _, _, tokenService := newSessionService(t)
	ctx := context.Background()

	tokenService.EXPECT().VerifyRefresh(ctx, "old").Return(nil, domainerrors.ErrRefreshMismatch)

	_, err := srv.Refresh(ctx, "old")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshMismatch)
}

func TestSessionService_Refresh_DeletedUser(t *testing.T) {
	srv, userRepo, _, tokenService := newSessionService(t)
	ctx := context.Background()
	principal := &entity.Principal{UserID: uuid.New(), Role: entity.RoleBasic}

	tokenService.EXPECT().VerifyRefresh(ctx, "refresh").Return(principal, nil)
	userRepo.EXPECT().FindByID(ctx, principal.UserID).Return(nil, repository.ErrUserNotFound)

	_, err := srv.Refresh(ctx, "refresh")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestSessionService_Logout(t *testing.T) {
	srv, _, _, tokenService := newSessionService(t)
	ctx := context.Background()
	principal := &entity.Principal{UserID: uuid.New(), Role: entity.RoleBasic}

	tokenService.EXPECT().RevokeRefresh(ctx, principal.UserID).Return(nil)

	require.NoError(t, srv.Logout(ctx, principal))
	assert.ErrorIs(t, srv.Logout(ctx, nil), domainerrors.ErrUnauthorized)
}
