package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/repository"
	mockRepo "grocery/internal/mocks/repository"
	mockSvc "grocery/internal/mocks/service"
	"grocery/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userMocks struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newUserService(t *testing.T) (*userService, *userMocks) {
	t.Helper()

	m := &userMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	srv := NewUserService(UserServiceParams{
		TxManager:    m.txManager,
		UserRepo:     m.userRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		Logger:       newDiscardLogger(),
	}).(*userService)
	srv.now = func() time.Time { return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC) }

	return srv, m
}

// expectUserTx runs the transaction body against the plain user repository mock.
func expectUserTx(t *testing.T, m *userMocks) {
	t.Helper()

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(m.userRepo)

			return fn(factory)
		})
}

func TestUserService_Register(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	m.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "new@example.com" && u.Role == entity.RoleBasic && u.PasswordHash == "hashed"
	})).Return(nil)

	user, err := srv.Register(ctx, usecase.RegisterInput{Email: " New@Example.com ", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleBasic, user.Role)
}

func TestUserService_Register_Duplicate(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	m.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserAlreadyExists)

	_, err := srv.Register(ctx, usecase.RegisterInput{Email: "dup@example.com", Password: "s3cret-pass"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_GetByEmail_NotFound(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := srv.GetByEmail(ctx, "Ghost@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdatePassword_RevokesRefreshBeforeUpdate(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: "old", Role: entity.RoleBasic}
	actor := user.Principal()

	var order []string
	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	m.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	m.tokenService.EXPECT().RevokeRefresh(ctx, user.ID).
		Run(func(context.Context, uuid.UUID) { order = append(order, "revoke") }).
		Return(nil)
	m.userRepo.EXPECT().Update(ctx, user).
		Run(func(context.Context, *entity.User) { order = append(order, "update") }).
		Return(nil)

	updated, err := srv.UpdatePassword(ctx, actor, user.Email, "new-password")

	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)
	assert.Equal(t, []string{"revoke", "update"}, order)
}

func TestUserService_Mutations_RequireOwnerOrAdmin(t *testing.T) {
	srv, _ := newUserService(t)
	ctx := context.Background()
	stranger := &entity.Principal{UserID: uuid.New(), Email: "stranger@example.com", Role: entity.RoleVerified}

	_, err := srv.UpdatePassword(ctx, stranger, "owner@example.com", "pw")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = srv.Delete(ctx, stranger, "owner@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = srv.CreateProfile(ctx, stranger, "owner@example.com", usecase.ProfileInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Delete_ByAdmin(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleBasic}
	admin := &entity.Principal{UserID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdmin}

	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	m.userRepo.EXPECT().Delete(ctx, user.ID).Return(nil)
	m.tokenService.EXPECT().RevokeRefresh(ctx, user.ID).Return(errors.New("redis down"))

	deleted, err := srv.Delete(ctx, admin, user.Email)

	require.NoError(t, err)
	assert.Equal(t, user.ID, deleted.ID)
}

func TestUserService_CreateProfile_PromotesBasic(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleBasic}
	dob := time.Date(1990, 8, 1, 0, 0, 0, 0, time.UTC)
	first := "Ada"

	expectUserTx(t, m)
	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	m.userRepo.EXPECT().CreateProfile(ctx, mock.AnythingOfType("*entity.UserProfile")).Return(nil)
	m.userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleVerified
	})).Return(nil)

	updated, err := srv.CreateProfile(ctx, user.Principal(), user.Email, usecase.ProfileInput{
		FirstName:   &first,
		Addresses:   []entity.ProfileAddress{{Address: "742 Evergreen Terrace", City: "Springfield"}},
		DateOfBirth: &dob,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleVerified, updated.Role)
	require.NotNil(t, updated.Profile)
	assert.Equal(t, "Ada", updated.Profile.FirstName)
	require.NotNil(t, updated.Profile.Age)
	assert.Equal(t, 35, *updated.Profile.Age)
}

func TestUserService_CreateProfile_KeepsAdminRole(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdmin}

	expectUserTx(t, m)
	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	m.userRepo.EXPECT().CreateProfile(ctx, mock.Anything).Return(nil)

	updated, err := srv.CreateProfile(ctx, user.Principal(), user.Email, usecase.ProfileInput{})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
}

func TestUserService_CreateProfile_AlreadyExists(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleVerified, Profile: &entity.UserProfile{}}

	expectUserTx(t, m)
	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	_, err := srv.CreateProfile(ctx, user.Principal(), user.Email, usecase.ProfileInput{})

	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
}

func TestUserService_CreateProfile_TooManyAddresses(t *testing.T) {
	srv, _ := newUserService(t)
	actor := &entity.Principal{UserID: uuid.New(), Email: "owner@example.com", Role: entity.RoleBasic}
	addresses := make([]entity.ProfileAddress, entity.MaxProfileAddresses+1)
	for i := range addresses {
		addresses[i] = entity.ProfileAddress{Address: "street", City: "Springfield"}
	}

	_, err := srv.CreateProfile(context.Background(), actor, actor.Email, usecase.ProfileInput{Addresses: addresses})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_UpdateProfile_Partial(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()
	profile := &entity.UserProfile{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Phone: "555"}
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleVerified, Profile: profile}
	phone := "556"

	expectUserTx(t, m)
	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	m.userRepo.EXPECT().UpdateProfile(ctx, profile).Return(nil)

	updated, err := srv.UpdateProfile(ctx, user.Principal(), user.Email, usecase.ProfileInput{Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.Profile.FirstName)
	assert.Equal(t, "Lovelace", updated.Profile.LastName)
	assert.Equal(t, "556", updated.Profile.Phone)
}

func TestUserService_UpdateProfile_Missing(t *testing.T) {
	srv, m := newUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleBasic}

	expectUserTx(t, m)
	m.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	_, err := srv.UpdateProfile(ctx, user.Principal(), user.Email, usecase.ProfileInput{})

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
