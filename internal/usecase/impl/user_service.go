package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "grocery/internal/delivery/context"
	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/policy"
	"grocery/internal/domain/repository"
	"grocery/internal/domain/service"
	"grocery/internal/usecase"
	"grocery/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a BASIC account with a hashed password.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	email := util.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email and password are required")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleBasic,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, email)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

// List returns every registered user.
func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetByEmail returns one user with its profile.
func (srv *userService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return srv.findByEmail(ctx, srv.userRepo, email)
}

func (srv *userService) findByEmail(ctx context.Context, userRepo repository.UserRepository, email string) (*entity.User, error) {
	user, err := userRepo.FindByEmail(ctx, util.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, email)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) authorize(ctx context.Context, actor *entity.Principal, email string) error {
	if actor == nil {
		return errors.Wrap(domainerrors.ErrUnauthorized, "principal is required")
	}
	if !policy.AuthorizeSelfOrRoles(actor, util.NormalizeEmail(email), policy.UserAdmin) {
		srv.log(ctx).Warn("Account access denied", slog.Any("actor", actor.UserID), slog.String("email", email))

		return errors.Wrap(domainerrors.ErrForbidden, "only the account owner or an admin may modify this account")
	}

	return nil
}

// UpdatePassword replaces the password hash. The stored refresh token is revoked first,
// so a session opened with the old password cannot be refreshed.
func (srv *userService) UpdatePassword(ctx context.Context, actor *entity.Principal, email, password string) (*entity.User, error) {
	if err := srv.authorize(ctx, actor, email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password is required")
	}

	user, err := srv.findByEmail(ctx, srv.userRepo, email)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.tokenService.RevokeRefresh(ctx, user.ID); err != nil {
		return nil, errors.Wrap(err, "failed to revoke refresh token")
	}

	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password updated", slog.Any("userID", user.ID))

	return user, nil
}

// Delete removes the account and its profile and ends its session.
func (srv *userService) Delete(ctx context.Context, actor *entity.Principal, email string) (*entity.User, error) {
	if err := srv.authorize(ctx, actor, email); err != nil {
		return nil, err
	}

	user, err := srv.findByEmail(ctx, srv.userRepo, email)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, email)
		}

		return nil, errors.Wrap(err, "failed to delete user")
	}

	if err := srv.tokenService.RevokeRefresh(ctx, user.ID); err != nil {
		srv.log(ctx).Warn("Failed to revoke refresh token of deleted user", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", user.ID))

	return user, nil
}

// CreateProfile attaches a profile and promotes a BASIC user to VERIFIED in one transaction.
func (srv *userService) CreateProfile(ctx context.Context, actor *entity.Principal, email string, input usecase.ProfileInput) (*entity.User, error) {
	if err := srv.authorize(ctx, actor, email); err != nil {
		return nil, err
	}
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.findByEmail(ctx, userRepo, email)
		if err != nil {
			return err
		}
		if user.Profile != nil {
			return errors.Wrap(domainerrors.ErrProfileAlreadyExists, email)
		}

		profile := &entity.UserProfile{UserID: user.ID}
		srv.applyProfileInput(profile, input)

		if err := userRepo.CreateProfile(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrProfileAlreadyExists) {
				return errors.Wrap(domainerrors.ErrProfileAlreadyExists, email)
			}

			return errors.Wrap(err, "failed to create profile")
		}

		user.Profile = profile
		if user.Role == entity.RoleBasic {
			user.Role = entity.RoleVerified
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to promote user")
			}
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create profile", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Profile created", slog.Any("userID", updated.ID), slog.Any("role", updated.Role))

	return updated, nil
}

// UpdateProfile applies the non-nil fields of input to an existing profile.
func (srv *userService) UpdateProfile(ctx context.Context, actor *entity.Principal, email string, input usecase.ProfileInput) (*entity.User, error) {
	if err := srv.authorize(ctx, actor, email); err != nil {
		return nil, err
	}
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.findByEmail(ctx, userRepo, email)
		if err != nil {
			return err
		}
		if user.Profile == nil {
			return errors.Wrap(domainerrors.ErrProfileNotFound, email)
		}

		srv.applyProfileInput(user.Profile, input)

		if err := userRepo.UpdateProfile(ctx, user.Profile); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, email)
			}

			return errors.Wrap(err, "failed to update profile")
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func validateProfileInput(input usecase.ProfileInput) error {
	if len(input.Addresses) > entity.MaxProfileAddresses {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "at most %d addresses are allowed", entity.MaxProfileAddresses)
	}
	for _, address := range input.Addresses {
		if strings.TrimSpace(address.Address) == "" || strings.TrimSpace(address.City) == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "address and city are required for every address")
		}
	}

	return nil
}

func (srv *userService) applyProfileInput(profile *entity.UserProfile, input usecase.ProfileInput) {
	if input.FirstName != nil {
		profile.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		profile.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Phone != nil {
		profile.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Addresses != nil {
		profile.Addresses = input.Addresses
	}
	if input.DateOfBirth != nil {
		dob := *input.DateOfBirth
		age := util.CalculateAge(dob, srv.now())
		profile.DateOfBirth = &dob
		profile.Age = &age
	}
}
