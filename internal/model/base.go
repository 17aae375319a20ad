package model

import (
	"time"

	"gorm.io/gorm"
)

type BaseModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AuditMixin 审计字段 (由 GORM 回调填充，不参与查询权限)
type AuditMixin struct {
	CreatedBy int64 `gorm:"index;comment:创建人ID" json:"created_by"`
	UpdatedBy int64 `gorm:"comment:更新人ID" json:"updated_by"`
}

// StoreOwned 店铺归属字段，所有业务数据行都必须携带
type StoreOwned struct {
	StoreID string `gorm:"size:8;index;not null;comment:店铺ID" json:"store_id"`
}

// SetStoreID 写入店铺 ID（只允许由 ScopedQuery 调用）
func (s *StoreOwned) SetStoreID(id string) { s.StoreID = id }

// GetStoreID 读取店铺 ID
func (s *StoreOwned) GetStoreID() string { return s.StoreID }

// Scoped 带店铺归属的模型
type Scoped interface {
	SetStoreID(id string)
	GetStoreID() string
}
