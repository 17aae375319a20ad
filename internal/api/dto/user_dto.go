package dto

import "time"

// ==================== 用户信息 ====================

// UserInfo 店铺成员信息（不含密码）
type UserInfo struct {
	ID          int64      `json:"id"`
	StoreID     string     `json:"store_id"`
	Username    string     `json:"username"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ==================== 密码 ====================

// ChangePasswordRequest 修改自己的密码
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=100"`
}

// ResetPasswordRequest 重置密码请求（管理员）
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=100"`
}

// ==================== 用户管理（店铺管理员） ====================

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=100"`
	FullName string `json:"full_name" binding:"max=100"`
	Role     string `json:"role" binding:"required,oneof=viewer data_entry admin"`
}

// UpdateUserRequest 更新用户请求，店铺归属不可修改
type UpdateUserRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,max=100"`
	Role     string  `json:"role" binding:"omitempty,oneof=viewer data_entry admin"`
	IsActive *bool   `json:"is_active"`
}

// ==================== 用户列表 ====================

// UserListRequest 用户列表请求
type UserListRequest struct {
	Keyword  string `form:"keyword"`
	Role     string `form:"role"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

// UserListResponse 用户列表响应
type UserListResponse struct {
	Total int64       `json:"total"`
	List  []*UserInfo `json:"list"`
}
