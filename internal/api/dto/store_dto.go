package dto

import "time"

// ==================== 店铺管理（平台管理员） ====================

// CreateStoreRequest 创建店铺，同时创建第一个店铺管理员
type CreateStoreRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Slug     string `json:"slug" binding:"required,max=64"`
	Phone    string `json:"phone" binding:"max=32"`
	Email    string `json:"email" binding:"omitempty,email"`
	Address  string `json:"address"`
	Currency string `json:"currency" binding:"omitempty,len=3"`

	AdminUsername string `json:"admin_username" binding:"required,min=3,max=50"`
	AdminPassword string `json:"admin_password" binding:"required,min=8,max=100"`
	AdminFullName string `json:"admin_full_name" binding:"max=100"`
}

// CreateStoreResponse 创建店铺响应
type CreateStoreResponse struct {
	Store *StoreInfo `json:"store"`
	Admin *UserInfo  `json:"admin"`
}

// StoreInfo 店铺信息
type StoreInfo struct {
	StoreID     string    `json:"store_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	IsActive    bool      `json:"is_active"`
	SlugHistory []string  `json:"slug_history"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpdateStoreRequest 更新店铺基本信息（slug 通过 rename 修改）
type UpdateStoreRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone" binding:"omitempty,max=32"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

// RenameStoreRequest 修改 slug
type RenameStoreRequest struct {
	Slug string `json:"slug" binding:"required,max=64"`
}

// SetStoreActiveRequest 启用/停用
type SetStoreActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// StoreListRequest 店铺列表请求
type StoreListRequest struct {
	Keyword  string `form:"keyword"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

// StoreListResponse 店铺列表响应
type StoreListResponse struct {
	Total int64        `json:"total"`
	List  []*StoreInfo `json:"list"`
}
