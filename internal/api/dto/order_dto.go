package dto

import (
	"time"

	"order_dash_v1/internal/model"
)

// ==================== 订单写入 ====================

// OrderItemInput 订单明细，单价默认取商品当前价格
type OrderItemInput struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1,max=100000"`
	UnitPrice *int64 `json:"unit_price" binding:"omitempty,min=0,max=1000000000000"`
}

// CreateOrderRequest 创建订单，金额由服务端根据明细计算
type CreateOrderRequest struct {
	CustomerID      int64                  `json:"customer_id" binding:"required"`
	Items           []OrderItemInput       `json:"items" binding:"required,min=1,dive"`
	ShippingAddress map[string]interface{} `json:"shipping_address"`
	Discount        int64                  `json:"discount" binding:"min=0,max=1000000000000"`
	Shipping        int64                  `json:"shipping" binding:"min=0,max=1000000000000"`
	Status          string                 `json:"status" binding:"max=32"` // 为空使用店铺默认状态
	Currency        string                 `json:"currency" binding:"omitempty,len=3"`
	Notes           string                 `json:"notes"`
	OrderedAt       *time.Time             `json:"ordered_at"`
}

// UpdateOrderRequest 更新订单，items 不为空时整体替换明细
type UpdateOrderRequest struct {
	CustomerID      *int64                 `json:"customer_id"`
	Items           []OrderItemInput       `json:"items" binding:"omitempty,dive"`
	ShippingAddress map[string]interface{} `json:"shipping_address"`
	Discount        *int64                 `json:"discount" binding:"omitempty,min=0,max=1000000000000"`
	Shipping        *int64                 `json:"shipping" binding:"omitempty,min=0,max=1000000000000"`
	Notes           *string                `json:"notes"`
}

// UpdateOrderStatusRequest 修改订单状态
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,max=32"`
}

// ==================== 订单查询 ====================

// ListOrdersRequest 订单列表请求
type ListOrdersRequest struct {
	Keyword    string `form:"keyword"` // 订单号
	Status     string `form:"status"`
	CustomerID int64  `form:"customer_id"`
	StartDate  string `form:"start_date"` // 2024-01-01
	EndDate    string `form:"end_date"`   // 含当天
	Page       int    `form:"page,default=1"`
	PageSize   int    `form:"page_size,default=20"`
}

// ListOrdersResponse 订单列表响应
type ListOrdersResponse struct {
	Total int64         `json:"total"`
	List  []model.Order `json:"list"`
}

// ExportOrdersRequest 导出请求，日期格式 2024-01-01，to 含当天
type ExportOrdersRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// ==================== 发票 / 消息 ====================

// ArchiveInvoiceResponse 发票归档结果
type ArchiveInvoiceResponse struct {
	URL string `json:"url"`
}

// WhatsAppMessageResponse WhatsApp 消息
type WhatsAppMessageResponse struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Link    string `json:"link"`
}
