package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ListUsersInput pages the admin user listing.
type ListUsersInput struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// SetUserRoleInput toggles the authorization tier of an account.
type SetUserRoleInput struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// SetUserStatusInput toggles the active flag of an account.
type SetUserStatusInput struct {
	Active *bool `json:"active" validate:"required"`
}

// AdminUserUsecase defines the cross-user account operations.
type AdminUserUsecase interface {
	// ListUsers returns a page of all accounts.
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)

	// SetUserRole changes the authorization tier of an account.
	SetUserRole(ctx context.Context, userID uuid.UUID, input *SetUserRoleInput) (*entity.User, error)

	// SetUserStatus activates or deactivates an account.
	SetUserStatus(ctx context.Context, userID uuid.UUID, input *SetUserStatusInput) (*entity.User, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
