package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/repository"
)

func TestStoreUserService_Create(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	ctx := context.Background()

	a := env.createStore(t, "acme")
	b := env.createStore(t, "other")

	u, err := svc.Create(ctx, a.Store.StoreID, &dto.CreateUserRequest{Username: "clerk", Password: "password123", Role: "viewer"})
	require.NoError(t, err)
	assert.Equal(t, a.Store.StoreID, u.StoreID)
	assert.True(t, u.IsActive)

	_, err = svc.Create(ctx, a.Store.StoreID, &dto.CreateUserRequest{Username: "clerk", Password: "password123", Role: "viewer"})
	assert.ErrorIs(t, err, ErrUsernameExists)

	// 用户名只在店铺内唯一
	_, err = svc.Create(ctx, b.Store.StoreID, &dto.CreateUserRequest{Username: "clerk", Password: "password123", Role: "viewer"})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, a.Store.StoreID, &dto.CreateUserRequest{Username: "boss", Password: "password123", Role: "owner"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	// 其他店铺读不到
	_, err = svc.Get(ctx, b.Store.StoreID, u.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStoreUserService_AdminGuards(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	ctx := context.Background()

	store := env.createStore(t, "acme")
	storeID := store.Store.StoreID
	ownerID := store.Admin.ID

	// 不能降级、停用、删除自己
	_, err := svc.Update(ctx, storeID, ownerID, ownerID, &dto.UpdateUserRequest{Role: "viewer"})
	assert.ErrorIs(t, err, ErrCannotModifySelf)
	off := false
	_, err = svc.Update(ctx, storeID, ownerID, ownerID, &dto.UpdateUserRequest{IsActive: &off})
	assert.ErrorIs(t, err, ErrCannotModifySelf)
	assert.ErrorIs(t, svc.Delete(ctx, storeID, ownerID, ownerID), ErrCannotModifySelf)

	// 平台管理员操作时也要保留最后一个管理员
	_, err = svc.Update(ctx, storeID, 0, ownerID, &dto.UpdateUserRequest{Role: "viewer"})
	assert.ErrorIs(t, err, ErrLastAdmin)
	assert.ErrorIs(t, svc.Delete(ctx, storeID, 0, ownerID), ErrLastAdmin)

	second, err := svc.Create(ctx, storeID, &dto.CreateUserRequest{Username: "second", Password: "password123", Role: "admin"})
	require.NoError(t, err)

	// 有第二个管理员后可以降级
	updated, err := svc.Update(ctx, storeID, second.ID, ownerID, &dto.UpdateUserRequest{Role: "data_entry"})
	require.NoError(t, err)
	assert.Equal(t, "data_entry", updated.Role)

	// 改名不受限制
	name := "Second Admin"
	updated, err = svc.Update(ctx, storeID, second.ID, second.ID, &dto.UpdateUserRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Second Admin", updated.FullName)

	require.NoError(t, svc.Delete(ctx, storeID, second.ID, ownerID))
	_, err = svc.Get(ctx, storeID, ownerID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStoreUserService_Passwords(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	auth := env.authService()
	ctx := context.Background()

	store := env.createStore(t, "acme")
	storeID := store.Store.StoreID
	ownerID := store.Admin.ID

	err := svc.ChangePassword(ctx, storeID, ownerID, &dto.ChangePasswordRequest{OldPassword: "wrong", NewPassword: "newpassword1"})
	assert.ErrorIs(t, err, ErrInvalidOldPassword)

	require.NoError(t, svc.ChangePassword(ctx, storeID, ownerID, &dto.ChangePasswordRequest{OldPassword: "password123", NewPassword: "newpassword1"}))
	_, err = auth.Login(ctx, &dto.LoginRequest{Store: "acme", Username: "owner", Password: "newpassword1"})
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, storeID, ownerID, "resetpass99"))
	_, err = auth.Login(ctx, &dto.LoginRequest{Store: "acme", Username: "owner", Password: "resetpass99"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ResetPassword(ctx, storeID, 9999, "resetpass99"), repository.ErrNotFound)
}
