package dto

// ==================== 订单状态 ====================

// CreateStatusRequest 新增订单状态
type CreateStatusRequest struct {
	Code      string `json:"code" binding:"required,max=32"`
	Label     string `json:"label" binding:"required,max=64"`
	Color     string `json:"color" binding:"max=16"`
	SortOrder int    `json:"sort_order"`
	IsDefault bool   `json:"is_default"`
}

// UpdateStatusRequest 修改订单状态（code 不可修改，订单按 code 引用）
type UpdateStatusRequest struct {
	Label     *string `json:"label" binding:"omitempty,min=1,max=64"`
	Color     *string `json:"color" binding:"omitempty,max=16"`
	SortOrder *int    `json:"sort_order"`
	IsDefault *bool   `json:"is_default"`
}

// ==================== 店铺设置 ====================

// UpdateSettingsRequest 更新店铺设置，只修改非空字段
type UpdateSettingsRequest struct {
	Currency         *string                `json:"currency" binding:"omitempty,len=3"`
	BusinessName     *string                `json:"business_name" binding:"omitempty,max=100"`
	Phone            *string                `json:"phone" binding:"omitempty,max=32"`
	Address          *string                `json:"address"`
	InvoiceNotes     *string                `json:"invoice_notes"`
	InvoiceTemplate  *string                `json:"invoice_template"`
	WhatsAppTemplate *string                `json:"whatsapp_template"`
	Extra            map[string]interface{} `json:"extra"`
}

// ==================== 仪表盘 ====================

// DashboardResponse 仪表盘统计，金额单位为分
type DashboardResponse struct {
	Customers     int64  `json:"customers"`
	Products      int64  `json:"products"`
	Orders        int64  `json:"orders"`
	PendingOrders int64  `json:"pending_orders"`
	TotalSales    int64  `json:"total_sales"`
	Currency      string `json:"currency"`
}
