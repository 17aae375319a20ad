package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/middleware"
	"order_dash_v1/internal/service"
	"order_dash_v1/internal/tenant"
)

// AuthController 登录、刷新、注销
type AuthController struct {
	authService *service.AuthService
	resolver    *service.SlugResolver
	throttle    *middleware.LoginThrottle
}

func NewAuthController(s *service.AuthService, resolver *service.SlugResolver, throttle *middleware.LoginThrottle) *AuthController {
	return &AuthController{authService: s, resolver: resolver, throttle: throttle}
}

// Login 店铺成员登录
// @Summary 店铺成员登录
// @Description store 可以是当前 slug、历史 slug 或 8 位店铺 ID；使用历史 slug 时 needs_redirect 为 true
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "登录信息"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} Response "店铺、用户名或密码错误"
// @Failure 429 {object} Response "尝试次数过多"
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	key := middleware.LoginKey(c.ClientIP(), ctrl.throttleSubject(c.Request.Context(), req.Store))
	if ctrl.throttle != nil {
		if res := ctrl.throttle.Check(key); !res.Allowed {
			failWithStatus(c, http.StatusTooManyRequests, middleware.FormatRetryMessage(res.RetryAfter))
			return
		}
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if ctrl.throttle != nil && errors.Is(err, tenant.ErrAuthenticationFailed) {
			ctrl.throttle.Fail(key)
		}
		fail(c, err)
		return
	}
	if ctrl.throttle != nil {
		ctrl.throttle.Reset(key)
	}
	success(c, "登录成功", resp)
}

// throttleSubject 同一店铺的 slug、历史 slug、店铺 ID 共用一个失败计数
func (ctrl *AuthController) throttleSubject(ctx context.Context, store string) string {
	if ctrl.throttle != nil && ctrl.resolver != nil {
		if res, err := ctrl.resolver.ResolveIdentifier(ctx, store); err == nil {
			return res.StoreID
		}
	}
	return store
}

// AdminLogin 平台管理员登录
// @Summary 平台管理员登录
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param body body dto.AdminLoginRequest true "登录信息"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 401 {object} Response
// @Router /api/admin/login [post]
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	key := middleware.LoginKey(c.ClientIP(), "platform")
	if ctrl.throttle != nil {
		if res := ctrl.throttle.Check(key); !res.Allowed {
			failWithStatus(c, http.StatusTooManyRequests, middleware.FormatRetryMessage(res.RetryAfter))
			return
		}
	}

	resp, err := ctrl.authService.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		if ctrl.throttle != nil && errors.Is(err, tenant.ErrAuthenticationFailed) {
			ctrl.throttle.Fail(key)
		}
		fail(c, err)
		return
	}
	if ctrl.throttle != nil {
		ctrl.throttle.Reset(key)
	}
	success(c, "登录成功", resp)
}

// Refresh 刷新 Token
// @Summary 刷新 Token
// @Description 旧的 refresh token 使用后立即失效
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param body body dto.RefreshTokenRequest true "refresh token"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} Response
// @Router /api/auth/refresh [post]
func (ctrl *AuthController) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.authService.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "刷新成功", resp)
}

// Logout 注销
// @Summary 注销
// @Description 注销当前 access token，body 中带 refresh_token 时一并注销
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.LogoutRequest false "refresh token"
// @Success 200 {object} Response
// @Router /api/auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	// body 可以为空
	_ = c.ShouldBindJSON(&req)

	claims := middleware.GetUserClaims(c)
	if claims == nil {
		failWithStatus(c, http.StatusUnauthorized, "未提供认证信息")
		return
	}
	if err := ctrl.authService.Logout(c.Request.Context(), claims, req.RefreshToken); err != nil {
		fail(c, err)
		return
	}
	success(c, "已注销", nil)
}

// Me 当前登录信息
// @Summary 当前登录用户
// @Tags Auth (认证模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MeResponse
// @Router /api/auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	resp, err := ctrl.authService.Me(c.Request.Context(), middleware.GetStoreID(c), middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// ResolveSlug 解析店铺 slug
// @Summary 解析店铺 slug
// @Description 历史 slug 返回 needs_redirect=true 和当前 slug，前端据此跳转
// @Tags Auth (认证模块)
// @Produce json
// @Param slug path string true "店铺 slug"
// @Success 200 {object} model.SlugResolution
// @Failure 404 {object} Response
// @Router /api/stores/resolve/{slug} [get]
func (ctrl *AuthController) ResolveSlug(c *gin.Context) {
	res, err := ctrl.resolver.Resolve(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", res)
}
