package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminUserService(t *testing.T) (usecase.AdminUserUsecase, *mockRepo.MockUserRepository) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewAdminUserService(AdminUserServiceParams{
		UserRepo: mockUserRepo,
		Logger:   newDiscardLogger(),
	})

	return service, mockUserRepo
}

func TestAdminUserService_SetUserRole_Promotes(t *testing.T) {
	service, mockUserRepo := newAdminUserService(t)

	ctx := context.Background()
	user := newTestUser()

	mockUserRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	mockUserRepo.EXPECT().
		Update(ctx, user).
		Return(nil)

	updated, err := service.SetUserRole(ctx, user.ID, &usecase.SetUserRoleInput{Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
	assert.True(t, updated.IsAdmin())
}

func TestAdminUserService_SetUserStatus_Deactivates(t *testing.T) {
	service, mockUserRepo := newAdminUserService(t)

	ctx := context.Background()
	user := newTestUser()
	inactive := false

	mockUserRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	mockUserRepo.EXPECT().
		Update(ctx, user).
		Return(nil)

	updated, err := service.SetUserStatus(ctx, user.ID, &usecase.SetUserStatusInput{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestAdminUserService_SetUserRole_UnknownUser(t *testing.T) {
	service, mockUserRepo := newAdminUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	updated, err := service.SetUserRole(ctx, userID, &usecase.SetUserRoleInput{Role: "user"})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAdminUserService_ListUsers_Pagination(t *testing.T) {
	service, mockUserRepo := newAdminUserService(t)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		List(ctx, 50, 50).
		Return([]*entity.User{newTestUser()}, nil)

	users, err := service.ListUsers(ctx, &usecase.ListUsersInput{Page: 2, PageSize: 50})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAdminUserService_DeleteUser(t *testing.T) {
	service, mockUserRepo := newAdminUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		Delete(ctx, userID).
		Return(nil)

	err := service.DeleteUser(ctx, userID)
	require.NoError(t, err)
}
