package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminUserService implements the cross-user account operations.
type adminUserService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AdminUserServiceParams holds dependencies for AdminUserService, injected by Fx.
type AdminUserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewAdminUserService is the constructor for adminUserService.
func NewAdminUserService(params AdminUserServiceParams) usecase.AdminUserUsecase {
	return &adminUserService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *adminUserService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns a page of all accounts.
func (srv *adminUserService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.User, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	users, err := srv.userRepo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// SetUserRole changes the authorization tier of an account.
func (srv *adminUserService) SetUserRole(ctx context.Context, userID uuid.UUID, input *usecase.SetUserRoleInput) (*entity.User, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user role")
	}

	srv.log(ctx).Info("User role changed",
		slog.Any("userID", userID),
		slog.String("role", role.String()),
	)

	return user, nil
}

// SetUserStatus activates or deactivates an account. Deactivated accounts
// fail authentication on their next request.
func (srv *adminUserService) SetUserStatus(ctx context.Context, userID uuid.UUID, input *usecase.SetUserStatusInput) (*entity.User, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Active = *input.Active
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user status")
	}

	srv.log(ctx).Info("User status changed",
		slog.Any("userID", userID),
		slog.Bool("active", user.Active),
	)

	return user, nil
}

// DeleteUser removes an account.
func (srv *adminUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", userID))

	return nil
}

func (srv *adminUserService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
