package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface: identity-provider
// sign-in with first-sign-in provisioning, password login for bootstrapped
// admins, and the self-service account operations.
type userService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo          repository.UserRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignInWithGoogle verifies the ID token and provisions the account on first sign-in.
func (srv *userService) SignInWithGoogle(ctx context.Context, input *usecase.GoogleSignInInput) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("ID token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid
	}

	user, err := srv.userRepo.FindByEmail(ctx, oauthUser.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		user = &entity.User{
			ID:     uuid.New(),
			Email:  oauthUser.Email,
			Name:   oauthUser.Name,
			Role:   entity.RoleUser,
			Active: true,
		}
		if createErr := srv.userRepo.Create(ctx, user); createErr != nil {
			return nil, errors.Wrap(createErr, "failed to provision user on first sign-in")
		}
		srv.log(ctx).Info("Provisioned new account", slog.Any("userID", user.ID))
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return srv.issueSession(user)
}

// LoginWithPassword authenticates a locally bootstrapped account.
func (srv *userService) LoginWithPassword(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueSession(user)
}

// RefreshSession exchanges a valid refresh token for a fresh token pair.
// The refresh token only identifies the session; role and active state
// come from the account as it is now, not as it was at sign-in.
func (srv *userService) RefreshSession(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.AuthOutput, error) {
	userID, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token validation failed", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return srv.issueSession(user)
}

// GetProfile returns the caller's account.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateProfile applies the self-service profile mutation.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// DeleteAccount removes the caller's own account.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

	return nil
}

// issueSession rejects inactive accounts and mints a token pair.
func (srv *userService) issueSession(user *entity.User) (*usecase.AuthOutput, error) {
	if !user.Active {
		return nil, domainerrors.ErrUserInactive
	}

	access, refresh, err := srv.tokenService.GenerateTokens(service.SessionClaims{
		UserID: user.ID,
		Role:   user.Role.String(),
		Active: user.Active,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}
