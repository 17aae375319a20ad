package model

import (
	"time"

	"gorm.io/datatypes"
)

// 新店铺默认订单状态
var DefaultOrderStatuses = []OrderStatus{
	{Code: "pending", Label: "Pending", SortOrder: 10, IsDefault: true},
	{Code: "confirmed", Label: "Confirmed", SortOrder: 20},
	{Code: "shipped", Label: "Shipped", SortOrder: 30},
	{Code: "delivered", Label: "Delivered", SortOrder: 40},
	{Code: "cancelled", Label: "Cancelled", SortOrder: 50},
}

// OrderStatus 店铺自定义订单状态
type OrderStatus struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID   string `gorm:"size:8;not null;uniqueIndex:idx_store_status_code" json:"store_id"`
	Code      string `gorm:"size:32;not null;uniqueIndex:idx_store_status_code" json:"code"`
	Label     string `gorm:"size:64;not null" json:"label"`
	Color     string `gorm:"size:16" json:"color"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	IsDefault bool   `gorm:"default:false" json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrderStatus) TableName() string {
	return "order_statuses"
}

func (s *OrderStatus) SetStoreID(id string) { s.StoreID = id }
func (s *OrderStatus) GetStoreID() string   { return s.StoreID }

// 默认 WhatsApp 模板
const DefaultWhatsAppTemplate = "Hi {customer_name}, your order {order_no} at {store_name} is now {status}.\n{items}\nTotal: {total}"

// StoreSetting 店铺设置，每店一行
type StoreSetting struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID      string `gorm:"size:8;not null;uniqueIndex" json:"store_id"`
	Currency     string `gorm:"size:10;default:'USD'" json:"currency"`
	BusinessName string `gorm:"size:100" json:"business_name"`
	Phone        string `gorm:"size:32" json:"phone"`
	Address      string `gorm:"type:text" json:"address"`

	// 发票备注（Markdown）和自定义模板（html/template，空则使用内置模板）
	InvoiceNotes    string `gorm:"type:text" json:"invoice_notes"`
	InvoiceTemplate string `gorm:"type:text" json:"invoice_template"`

	WhatsAppTemplate string `gorm:"column:whatsapp_template;type:text" json:"whatsapp_template"`

	Extra datatypes.JSONMap `gorm:"type:jsonb" json:"extra"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StoreSetting) TableName() string {
	return "store_settings"
}

func (s *StoreSetting) SetStoreID(id string) { s.StoreID = id }
func (s *StoreSetting) GetStoreID() string   { return s.StoreID }
