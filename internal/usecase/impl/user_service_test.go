package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	oauthService *mockSvc.MockOAuthAuthService
}

func newUserFixture(t *testing.T) *userFixture {
	f := &userFixture{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		oauthService: mockSvc.NewMockOAuthAuthService(t),
	}
	f.service = NewUserService(UserServiceParams{
		UserRepo:          f.userRepo,
		Hasher:            f.hasher,
		TokenService:      f.tokenService,
		GoogleAuthService: f.oauthService,
		Logger:            newDiscardLogger(),
	})

	return f
}

func TestUserService_SignInWithGoogle_ProvisionsOnFirstSignIn(t *testing.T) {
	f := newUserFixture(t)

	ctx := context.Background()

	f.oauthService.EXPECT().
		VerifyIDToken(ctx, "valid-token").
		Return(&service.OAuthUser{Email: "new@example.com", Name: "New Shopper"}, nil)

	f.userRepo.EXPECT().
		FindByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)

	var created *entity.User
	f.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			created = user
		}).
		Return(nil)

	f.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("service.SessionClaims")).
		Return("access", "refresh", nil)

	output, err := f.service.SignInWithGoogle(ctx, &usecase.GoogleSignInInput{IDToken: "valid-token"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleUser, created.Role)
	assert.True(t, created.Active)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestUserService_SignInWithGoogle_ExistingUser(t *testing.T) {
	f := newUserFixture(t)

	ctx := context.Background()
	user := newTestUser()

	f.oauthService.EXPECT().
		VerifyIDToken(ctx, "valid-token").
		Return(&service.OAuthUser{Email: user.Email, Name: user.Name}, nil)

	f.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	f.tokenService.EXPECT().
		GenerateTokens(service.SessionClaims{UserID: user.ID, Role: "user", Active: true}).
		Return("access", "refresh", nil)

	output, err := f.service.SignInWithGoogle(ctx, &usecase.GoogleSignInInput{IDToken: "valid-token"})
	require.NoError(t, err)
	assert.Equal(t, user, output.User)
}

func TestUserService_SignInWithGoogle_InvalidToken(t *testing.T) {
	f := newUserFixture(t)

	ctx := context.Background()

	f.oauthService.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, errors.New("token expired"))

	output, err := f.service.SignInWithGoogle(ctx, &usecase.GoogleSignInInput{IDToken: "bad-token"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestUserService_SignInWithGoogle_InactiveAccount(t *testing.T) {
	f := newUserFixture(t)

	ctx := context.Background()
	user := newTestUser()
	user.Active = false

	f.oauthService.EXPECT().
		VerifyIDToken(ctx, "valid-token").
		Return(&service.OAuthUser{Email: user.Email, Name: user.Name}, nil)

	f.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	output, err := f.service.SignInWithGoogle(ctx, &usecase.GoogleSignInInput{IDToken: "valid-token"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
}

func TestUserService_LoginWithPassword_WrongPassword(t *testing.T) {
	f := newUserFixture(t)

	ctx := context.Background()
	user := newTestUser()
	user.PasswordHash = "$2a$12$hash"

	f.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	f.hasher.EXPECT().
		Check("wrong", user.PasswordHash).
		Return(false)

	output, err := f.service.LoginWithPassword(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_LoginWithPassword_ProviderOnlyAccount(t *testing.T) {
	f := newUserFixture(t)

	ctx := context.Background()
	user := newTestUser() // No password hash set.

	f.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	output, err := f.service.LoginWithPassword(ctx, &usecase.LoginInput{Email: user.Email, Password: "anything"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_LoginWithPassword_UnknownEmail(t *testing.T) {
	f := newUserFixture(t)

	ctx := context.Background()

	f.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := f.service.LoginWithPassword(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "pw"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshSession(t *testing.T) {
	f := newUserFixture(t)

	ctx := context.Background()
	user := newTestUser()

	f.tokenService.EXPECT().
		ValidateRefreshToken("valid-refresh").
		Return(user.ID, nil)

	f.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	// The fresh pair carries the account's current role and state.
	f.tokenService.EXPECT().
		GenerateTokens(service.SessionClaims{UserID: user.ID, Role: "user", Active: true}).
		Return("new-access", "new-refresh", nil)

	output, err := f.service.RefreshSession(ctx, &usecase.RefreshTokenInput{RefreshToken: "valid-refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_RefreshSession_InvalidToken(t *testing.T) {
	f := newUserFixture(t)

	ctx := context.Background()

	f.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(uuid.Nil, errors.New("token is malformed"))

	output, err := f.service.RefreshSession(ctx, &usecase.RefreshTokenInput{RefreshToken: "garbage"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshSession_DeletedAccount(t *testing.T) {
	f := newUserFixture(t)

	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.EXPECT().
		ValidateRefreshToken("valid-refresh").
		Return(userID, nil)

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	output, err := f.service.RefreshSession(ctx, &usecase.RefreshTokenInput{RefreshToken: "valid-refresh"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshSession_InactiveAccount(t *testing.T) {
	f := newUserFixture(t)

	ctx := context.Background()
	user := newTestUser()
	user.Active = false

	f.tokenService.EXPECT().
		ValidateRefreshToken("valid-refresh").
		Return(user.ID, nil)

	f.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	output, err := f.service.RefreshSession(ctx, &usecase.RefreshTokenInput{RefreshToken: "valid-refresh"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserInactive)
}

func TestUserService_UpdateProfile(t *testing.T) {
	f := newUserFixture(t)

	ctx := context.Background()
	user := newTestUser()

	f.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	f.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil)

	updated, err := f.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}
