package impl

import (
	"context"
	"log/slog"

	deliverycontext "grocery/internal/delivery/context"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/repository"
	"grocery/internal/domain/service"
	"grocery/internal/usecase"
	"grocery/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the credentials and issues a token pair, replacing any earlier session.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	email := util.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return srv.issue(ctx, user)
}

// Refresh exchanges the current refresh token for a new pair.
// The user is reloaded so a role change since login is reflected in the new tokens.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*usecase.SessionOutput, error) {
	principal, err := srv.tokenService.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to reload user for refresh")
	}

	return srv.issue(ctx, user)
}

// Logout revokes the refresh token of principal. Outstanding access tokens stay valid until they expire.
func (srv *sessionService) Logout(ctx context.Context, principal *entity.Principal) error {
	if principal == nil {
		return errors.Wrap(domainerrors.ErrUnauthorized, "principal is required")
	}

	if err := srv.tokenService.RevokeRefresh(ctx, principal.UserID); err != nil {
		return err
	}

	srv.log(ctx).Info("User logged out", slog.Any("userID", principal.UserID))

	return nil
}

func (srv *sessionService) issue(ctx context.Context, user *entity.User) (*usecase.SessionOutput, error) {
	pair, err := srv.tokenService.IssueTokenPair(ctx, user.Principal())
	if err != nil {
		srv.log(ctx).Error("Failed to issue tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, err
	}

	return &usecase.SessionOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}
