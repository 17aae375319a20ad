package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/middleware"
	"order_dash_v1/internal/tenant"
)

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	auth := env.authService()
	ctx := context.Background()

	store := env.createStore(t, "acme")
	storeID := store.Store.StoreID

	resp, err := auth.Login(ctx, &dto.LoginRequest{Store: "acme", Username: "owner", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, storeID, resp.StoreID)
	assert.Equal(t, "acme", resp.StoreSlug)
	assert.False(t, resp.NeedsRedirect)
	assert.Equal(t, "admin", resp.User.Role)
	assert.NotNil(t, resp.User)

	claims, err := env.jwt.Verify(ctx, resp.AccessToken, "access")
	require.NoError(t, err)
	assert.Equal(t, middleware.KindTenant, claims.Kind)
	assert.Equal(t, storeID, claims.StoreID)
	assert.Equal(t, "admin", claims.Role)

	// 8 位店铺 ID 同样可以登录
	resp, err = auth.Login(ctx, &dto.LoginRequest{Store: storeID, Username: "owner", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "acme", resp.StoreSlug)

	// 最后登录时间已更新
	me, err := auth.Me(ctx, storeID, resp.User.ID)
	require.NoError(t, err)
	assert.NotNil(t, me.User.LastLoginAt)
	assert.Equal(t, "Store acme", me.StoreName)
}

func TestAuthService_Login_HistoricalSlug(t *testing.T) {
	env := newTestEnv(t)
	auth := env.authService()
	ctx := context.Background()

	store := env.createStore(t, "acme")
	_, err := env.storeService().Rename(ctx, store.Store.StoreID, "acme-shop")
	require.NoError(t, err)

	resp, err := auth.Login(ctx, &dto.LoginRequest{Store: "acme", Username: "owner", Password: "password123"})
	require.NoError(t, err)
	assert.True(t, resp.NeedsRedirect)
	assert.Equal(t, "acme-shop", resp.StoreSlug)
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	env := newTestEnv(t)
	auth := env.authService()
	users := env.userService()
	ctx := context.Background()

	a := env.createStore(t, "acme")
	b := env.createStore(t, "other")

	_, err := users.Create(ctx, a.Store.StoreID, &dto.CreateUserRequest{
		Username: "clerk", Password: "password123", Role: "data_entry",
	})
	require.NoError(t, err)
	clerk, err := users.List(ctx, a.Store.StoreID, &dto.UserListRequest{Keyword: "clerk"})
	require.NoError(t, err)
	require.Len(t, clerk.List, 1)
	inactive := false
	_, err = users.Update(ctx, a.Store.StoreID, 0, clerk.List[0].ID, &dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, err = env.storeService().SetActive(ctx, b.Store.StoreID, false)
	require.NoError(t, err)

	cases := map[string]dto.LoginRequest{
		"wrong password": {Store: "acme", Username: "owner", Password: "wrong"},
		"unknown user":   {Store: "acme", Username: "ghost", Password: "password123"},
		"unknown store":  {Store: "nowhere", Username: "owner", Password: "password123"},
		"unknown id":     {Store: "99999999", Username: "owner", Password: "password123"},
		"inactive store": {Store: "other", Username: "owner", Password: "password123"},
		"inactive user":  {Store: "acme", Username: "clerk", Password: "password123"},
	}
	for name, req := range cases {
		req := req
		_, err := auth.Login(ctx, &req)
		assert.ErrorIs(t, err, tenant.ErrAuthenticationFailed, name)
	}
}

func TestAuthService_RefreshRotation(t *testing.T) {
	env := newTestEnv(t)
	auth := env.authService()
	ctx := context.Background()

	store := env.createStore(t, "acme")
	login, err := auth.Login(ctx, &dto.LoginRequest{Store: "acme", Username: "owner", Password: "password123"})
	require.NoError(t, err)

	// 改名后刷新拿到新 slug
	_, err = env.storeService().Rename(ctx, store.Store.StoreID, "acme-2")
	require.NoError(t, err)

	refreshed, err := auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.Equal(t, "acme-2", refreshed.StoreSlug)

	// 旧 refresh token 只能用一次
	_, err = auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	// access token 不能当 refresh token 用
	_, err = auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: refreshed.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	// 店铺停用后无法刷新
	_, err = env.storeService().SetActive(ctx, store.Store.StoreID, false)
	require.NoError(t, err)
	_, err = auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: refreshed.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_Logout(t *testing.T) {
	env := newTestEnv(t)
	auth := env.authService()
	ctx := context.Background()

	env.createStore(t, "acme")
	login, err := auth.Login(ctx, &dto.LoginRequest{Store: "acme", Username: "owner", Password: "password123"})
	require.NoError(t, err)

	claims, err := env.jwt.Verify(ctx, login.AccessToken, "access")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, claims, login.RefreshToken))

	_, err = env.jwt.Verify(ctx, login.AccessToken, "access")
	assert.ErrorIs(t, err, middleware.ErrTokenRevoked)
	_, err = auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_PlatformAdmin(t *testing.T) {
	env := newTestEnv(t)
	auth := env.authService()
	ctx := context.Background()

	created, err := auth.EnsurePlatformAdmin(ctx, "root", "rootpassword")
	require.NoError(t, err)
	assert.True(t, created)

	// 已有管理员时不再创建
	created, err = auth.EnsurePlatformAdmin(ctx, "root2", "rootpassword")
	require.NoError(t, err)
	assert.False(t, created)

	resp, err := auth.AdminLogin(ctx, &dto.AdminLoginRequest{Username: "root", Password: "rootpassword"})
	require.NoError(t, err)
	assert.Equal(t, "root", resp.Admin.Username)

	claims, err := env.jwt.Verify(ctx, resp.AccessToken, "access")
	require.NoError(t, err)
	assert.Equal(t, middleware.KindPlatform, claims.Kind)
	assert.Empty(t, claims.StoreID)

	_, err = auth.AdminLogin(ctx, &dto.AdminLoginRequest{Username: "root", Password: "nope"})
	assert.ErrorIs(t, err, tenant.ErrAuthenticationFailed)
	_, err = auth.AdminLogin(ctx, &dto.AdminLoginRequest{Username: "root2", Password: "rootpassword"})
	assert.ErrorIs(t, err, tenant.ErrAuthenticationFailed)

	refreshed, err := auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.Empty(t, refreshed.StoreSlug)
}
