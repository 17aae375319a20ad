package model

import "time"

// Store 店铺（租户）
type Store struct {
	// 8 位数字 ID，创建后不可变
	StoreID string `gorm:"primaryKey;size:8" json:"store_id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	// 当前 slug，历史 slug 存在 store_slug_histories
	Slug    string `gorm:"size:64;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:32" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"type:text" json:"address"`

	// 软停用，不做物理删除
	IsActive bool `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SlugHistory []StoreSlugHistory `gorm:"foreignKey:StoreID;references:StoreID" json:"slug_history,omitempty"`
}

func (Store) TableName() string {
	return "stores"
}

// StoreSlugHistory 改名前的旧 slug，保留用于重定向
type StoreSlugHistory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID   string    `gorm:"size:8;index;not null" json:"store_id"`
	Slug      string    `gorm:"size:64;uniqueIndex;not null" json:"slug"`
	RenamedAt time.Time `json:"renamed_at"`
}

func (StoreSlugHistory) TableName() string {
	return "store_slug_histories"
}

// SlugResolution slug 解析结果（每次请求生成，不持久化）
type SlugResolution struct {
	StoreID       string `json:"store_id"`
	CurrentSlug   string `json:"current_slug"`
	NeedsRedirect bool   `json:"needs_redirect"`
}
