package model

// Customer 客户
type Customer struct {
	BaseModel
	AuditMixin
	StoreOwned
	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:32;index" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"type:text" json:"address"`
	Notes   string `gorm:"type:text" json:"notes"`
}

func (Customer) TableName() string {
	return "customers"
}
