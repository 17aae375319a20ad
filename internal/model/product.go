package model

import "github.com/lib/pq"

// Product 商品
type Product struct {
	BaseModel
	AuditMixin
	StoreOwned
	Name        string `gorm:"size:200;not null" json:"name"`
	SKU         string `gorm:"size:64;index" json:"sku"` // 店铺内唯一（非空时），由 service 校验
	Description string `gorm:"type:text" json:"description"`

	// 金额以分为单位
	PriceAmount int64 `gorm:"not null;default:0" json:"price_amount"`
	Stock       int   `gorm:"default:0" json:"stock"`

	Tags     pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsActive bool           `gorm:"default:true" json:"is_active"`
}

func (Product) TableName() string {
	return "products"
}

// GetPrice 获取单价（元）
func (p *Product) GetPrice() float64 {
	return float64(p.PriceAmount) / 100
}
