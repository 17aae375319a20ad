package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ==================== Order 订单主表 ====================

// Order 订单
type Order struct {
	BaseModel
	AuditMixin
	StoreOwned
	OrderNo    string `gorm:"size:32;uniqueIndex;not null" json:"order_no"`
	CustomerID int64  `gorm:"index;not null" json:"customer_id"`

	// 状态码，对应 order_statuses.code
	Status string `gorm:"size:32;index;not null" json:"status"`

	// 收货地址（PostgreSQL JSONB）
	ShippingAddress datatypes.JSONMap `gorm:"type:jsonb" json:"shipping_address"`

	// 金额（分为单位存储）
	SubtotalAmount   int64  `json:"subtotal_amount"`
	DiscountAmount   int64  `json:"discount_amount"`
	ShippingAmount   int64  `json:"shipping_amount"`
	GrandTotalAmount int64  `json:"grand_total_amount"`
	Currency         string `gorm:"size:10" json:"currency"`

	Notes     string    `gorm:"type:text" json:"notes"`
	OrderedAt time.Time `gorm:"index" json:"ordered_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// BeforeCreate 明细继承订单的店铺 ID
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	for i := range o.Items {
		o.Items[i].StoreID = o.StoreID
	}
	return nil
}

// GetSubtotal 获取小计金额（元）
func (o *Order) GetSubtotal() float64 {
	return float64(o.SubtotalAmount) / 100
}

// GetGrandTotal 获取总金额（元）
func (o *Order) GetGrandTotal() float64 {
	return float64(o.GrandTotalAmount) / 100
}

// Recalculate 根据明细重新计算金额；总额不小于 0
// 任一金额超出 [0, MaxAmount] 时返回 ErrAmountOutOfRange，订单不变
func (o *Order) Recalculate() error {
	if !inRange(o.DiscountAmount) || !inRange(o.ShippingAmount) {
		return ErrAmountOutOfRange
	}
	var subtotal int64
	lines := make([]int64, len(o.Items))
	for i, it := range o.Items {
		if !inRange(it.UnitPriceAmount) || it.Quantity < 0 || it.Quantity > MaxQuantity {
			return ErrAmountOutOfRange
		}
		lines[i] = it.UnitPriceAmount * int64(it.Quantity)
		subtotal += lines[i]
		if subtotal > MaxAmount {
			return ErrAmountOutOfRange
		}
	}
	for i := range o.Items {
		o.Items[i].LineTotalAmount = lines[i]
	}
	o.SubtotalAmount = subtotal
	total := subtotal - o.DiscountAmount + o.ShippingAmount
	if total < 0 {
		total = 0
	}
	o.GrandTotalAmount = total
	return nil
}

func inRange(v int64) bool { return v >= 0 && v <= MaxAmount }

// GetShippingAddressField 获取收货地址字段
func (o *Order) GetShippingAddressField(key string) string {
	if o.ShippingAddress == nil {
		return ""
	}
	if v, ok := o.ShippingAddress[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ==================== OrderItem 订单项 ====================

// OrderItem 订单项，商品名称和单价在下单时快照
type OrderItem struct {
	BaseModel
	StoreOwned
	OrderID         int64  `gorm:"index;not null" json:"order_id"`
	ProductID       int64  `gorm:"index" json:"product_id"`
	ProductName     string `gorm:"size:200" json:"product_name"`
	SKU             string `gorm:"size:64" json:"sku"`
	UnitPriceAmount int64  `json:"unit_price_amount"`
	Quantity        int    `gorm:"not null" json:"quantity"`
	LineTotalAmount int64  `json:"line_total_amount"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
