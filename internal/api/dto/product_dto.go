package dto

import "order_dash_v1/internal/model"

// CreateProductRequest 创建商品，price 单位为分
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	SKU         string   `json:"sku" binding:"max=64"`
	Description string   `json:"description"`
	Price       int64    `json:"price" binding:"min=0,max=1000000000000"`
	Stock       int      `json:"stock" binding:"min=0"`
	Tags        []string `json:"tags" binding:"max=20,dive,max=40"`
	IsActive    *bool    `json:"is_active"`
}

// UpdateProductRequest 更新商品
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=200"`
	SKU         *string  `json:"sku" binding:"omitempty,max=64"`
	Description *string  `json:"description"`
	Price       *int64   `json:"price" binding:"omitempty,min=0,max=1000000000000"`
	Stock       *int     `json:"stock" binding:"omitempty,min=0"`
	Tags        []string `json:"tags" binding:"omitempty,max=20,dive,max=40"`
	IsActive    *bool    `json:"is_active"`
}

// ProductListRequest 商品列表请求
type ProductListRequest struct {
	Keyword  string `form:"keyword"` // 名称、SKU
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

// ProductListResponse 商品列表响应
type ProductListResponse struct {
	Total int64           `json:"total"`
	List  []model.Product `json:"list"`
}
