package dto

import "order_dash_v1/internal/model"

// CreateCustomerRequest 创建客户
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Phone   string `json:"phone" binding:"max=32"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// UpdateCustomerRequest 更新客户，只修改非空字段
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone" binding:"omitempty,max=32"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// CustomerListRequest 客户列表请求
type CustomerListRequest struct {
	Keyword  string `form:"keyword"` // 姓名、电话、邮箱
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

// CustomerListResponse 客户列表响应
type CustomerListResponse struct {
	Total int64            `json:"total"`
	List  []model.Customer `json:"list"`
}
