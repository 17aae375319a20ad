package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/middleware"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
	"order_dash_v1/internal/tenant"
)

// ==================== AuthService 认证服务 ====================

// AuthService 店铺成员和平台管理员的登录、刷新、注销
type AuthService struct {
	resolver *SlugResolver
	stores   repository.StoreRepository
	users    repository.StoreUserRepository
	admins   repository.PlatformAdminRepository
	jwt      *middleware.JWTManager
	log      *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(
	resolver *SlugResolver,
	stores repository.StoreRepository,
	users repository.StoreUserRepository,
	admins repository.PlatformAdminRepository,
	jwt *middleware.JWTManager,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		resolver: resolver,
		stores:   stores,
		users:    users,
		admins:   admins,
		jwt:      jwt,
		log:      log.Named("auth"),
	}
}

// ==================== 店铺成员 ====================

// Login 店铺成员登录
// 店铺不存在/已停用、用户不存在/已停用、密码错误统一返回 tenant.ErrAuthenticationFailed
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	res, err := s.resolver.ResolveIdentifier(ctx, req.Store)
	if err != nil {
		if errors.Is(err, tenant.ErrStoreNotFound) {
			burnPasswordCheck(req.Password)
			return nil, tenant.ErrAuthenticationFailed
		}
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, res.StoreID, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			burnPasswordCheck(req.Password)
			return nil, tenant.ErrAuthenticationFailed
		}
		return nil, err
	}

	// 先比较密码再看状态，停用账号和错误密码耗时一致
	if !CheckPassword(user.Password, req.Password) || !user.IsActive {
		return nil, tenant.ErrAuthenticationFailed
	}

	pair, err := s.jwt.GenerateTokenPair(tenantIdentity(user, res.CurrentSlug))
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, res.StoreID, user.ID); err != nil {
		s.log.Warn("更新最后登录时间失败", zap.String("store_id", res.StoreID), zap.Int64("user_id", user.ID), zap.Error(err))
	}
	s.log.Info("店铺成员登录", zap.String("store_id", res.StoreID), zap.String("username", user.Username))

	return &dto.LoginResponse{
		AccessToken:   pair.AccessToken,
		RefreshToken:  pair.RefreshToken,
		ExpiresAt:     pair.ExpiresAt,
		StoreID:       res.StoreID,
		StoreSlug:     res.CurrentSlug,
		NeedsRedirect: res.NeedsRedirect,
		User:          toUserInfo(user),
	}, nil
}

func tenantIdentity(user *model.StoreUser, slug string) middleware.Identity {
	return middleware.Identity{
		UserID:    user.ID,
		Username:  user.Username,
		Kind:      middleware.KindTenant,
		Role:      string(user.Role),
		StoreID:   user.StoreID,
		StoreSlug: slug,
	}
}

// Me 当前登录的店铺成员
func (s *AuthService) Me(ctx context.Context, storeID string, userID int64) (*dto.MeResponse, error) {
	user, err := s.users.GetByID(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &dto.MeResponse{
		User:      toUserInfo(user),
		StoreID:   store.StoreID,
		StoreSlug: store.Slug,
		StoreName: store.Name,
	}, nil
}

// ==================== 平台管理员 ====================

// AdminLogin 平台管理员登录
func (s *AuthService) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	admin, err := s.admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			burnPasswordCheck(req.Password)
			return nil, tenant.ErrAuthenticationFailed
		}
		return nil, err
	}
	if !CheckPassword(admin.Password, req.Password) || !admin.IsActive {
		return nil, tenant.ErrAuthenticationFailed
	}

	pair, err := s.jwt.GenerateTokenPair(middleware.Identity{
		UserID:   admin.ID,
		Username: admin.Username,
		Kind:     middleware.KindPlatform,
	})
	if err != nil {
		return nil, err
	}
	if err := s.admins.UpdateLastLogin(ctx, admin.ID); err != nil {
		s.log.Warn("更新管理员登录时间失败", zap.Int64("admin_id", admin.ID), zap.Error(err))
	}

	return &dto.AdminLoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		Admin: &dto.AdminInfo{
			ID:          admin.ID,
			Username:    admin.Username,
			Email:       admin.Email,
			LastLoginAt: admin.LastLoginAt,
		},
	}, nil
}

// EnsurePlatformAdmin 没有任何管理员时创建初始账号
func (s *AuthService) EnsurePlatformAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	n, err := s.admins.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	hashed, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	if err := s.admins.Create(ctx, &model.PlatformAdmin{Username: username, Password: hashed, IsActive: true}); err != nil {
		return false, err
	}
	s.log.Info("已创建初始平台管理员", zap.String("username", username))
	return true, nil
}

// ==================== Token ====================

// RefreshToken 刷新 Token，旧的 Refresh Token 同时注销
// 店铺停用、账号停用后无法刷新；角色和 slug 取最新值
func (s *AuthService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	claims, err := s.jwt.VerifyRefresh(ctx, req.RefreshToken)
	if err != nil {
		if isTokenError(err) {
			return nil, ErrInvalidToken
		}
		return nil, tenant.Backend("verify refresh token", err)
	}

	var id middleware.Identity
	switch claims.Kind {
	case middleware.KindTenant:
		store, err := s.stores.GetByID(ctx, claims.StoreID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrInvalidToken
			}
			return nil, err
		}
		if !store.IsActive {
			return nil, ErrInvalidToken
		}
		user, err := s.users.GetByID(ctx, claims.StoreID, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrInvalidToken
			}
			return nil, err
		}
		if !user.IsActive {
			return nil, ErrInvalidToken
		}
		id = tenantIdentity(user, store.Slug)
	case middleware.KindPlatform:
		admin, err := s.admins.GetByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrInvalidToken
			}
			return nil, err
		}
		if !admin.IsActive {
			return nil, ErrInvalidToken
		}
		id = middleware.Identity{UserID: admin.ID, Username: admin.Username, Kind: middleware.KindPlatform}
	default:
		return nil, ErrInvalidToken
	}

	if err := s.jwt.Revoke(ctx, claims); err != nil {
		return nil, tenant.Backend("revoke refresh token", err)
	}
	pair, err := s.jwt.GenerateTokenPair(id)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		StoreSlug:    id.StoreSlug,
	}, nil
}

// Logout 注销当前 Access Token；refreshToken 属于同一用户时一并注销
func (s *AuthService) Logout(ctx context.Context, access *middleware.UserClaims, refreshToken string) error {
	if err := s.jwt.Revoke(ctx, access); err != nil {
		return tenant.Backend("revoke access token", err)
	}
	if refreshToken == "" {
		return nil
	}
	refresh, err := s.jwt.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		// 已失效的 refresh token 不影响注销结果
		return nil
	}
	if refresh.UserID != access.UserID || refresh.Kind != access.Kind || refresh.StoreID != access.StoreID {
		return nil
	}
	if err := s.jwt.Revoke(ctx, refresh); err != nil {
		return tenant.Backend("revoke refresh token", err)
	}
	return nil
}

func isTokenError(err error) bool {
	return errors.Is(err, middleware.ErrTokenInvalid) ||
		errors.Is(err, middleware.ErrTokenRevoked) ||
		errors.Is(err, middleware.ErrTokenType)
}

// ==================== 辅助函数 ====================

func toUserInfo(u *model.StoreUser) *dto.UserInfo {
	return &dto.UserInfo{
		ID:          u.ID,
		StoreID:     u.StoreID,
		Username:    u.Username,
		FullName:    u.FullName,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
