package dto

import "time"

// ==================== 店铺成员登录 ====================

// LoginRequest 登录请求，store 可以是 slug（含历史 slug）或 8 位店铺 ID
type LoginRequest struct {
	Store    string `json:"store" binding:"required,max=64"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=1,max=100"`
}

// LoginResponse 登录响应
// needs_redirect 为 true 时客户端应跳转到 store_slug 对应的地址
type LoginResponse struct {
	AccessToken   string    `json:"access_token"`
	RefreshToken  string    `json:"refresh_token"`
	ExpiresAt     time.Time `json:"expires_at"`
	StoreID       string    `json:"store_id"`
	StoreSlug     string    `json:"store_slug"`
	NeedsRedirect bool      `json:"needs_redirect"`
	User          *UserInfo `json:"user"`
}

// ==================== 平台管理员登录 ====================

// AdminLoginRequest 管理员登录请求
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=1,max=100"`
}

// AdminLoginResponse 管理员登录响应
type AdminLoginResponse struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresAt    time.Time  `json:"expires_at"`
	Admin        *AdminInfo `json:"admin"`
}

// AdminInfo 管理员信息
type AdminInfo struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// ==================== Token 刷新 / 注销 ====================

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse 刷新 Token 响应
type RefreshTokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	StoreSlug    string    `json:"store_slug,omitempty"`
}

// LogoutRequest 注销请求，refresh_token 可选，带上时一并注销
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// MeResponse 当前登录信息
type MeResponse struct {
	User      *UserInfo `json:"user"`
	StoreID   string    `json:"store_id"`
	StoreSlug string    `json:"store_slug"`
	StoreName string    `json:"store_name"`
}
