package model

import "time"

// StoreUser 店铺成员，只属于一个店铺，不可转移
type StoreUser struct {
	BaseModel
	AuditMixin
	StoreID  string `gorm:"size:8;not null;uniqueIndex:idx_store_username;comment:店铺ID" json:"store_id"`
	Username string `gorm:"size:50;not null;uniqueIndex:idx_store_username" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt 哈希
	FullName string `gorm:"size:100" json:"full_name"`
	Role     Role   `gorm:"size:20;not null;default:'viewer'" json:"role"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func (StoreUser) TableName() string {
	return "store_users"
}

func (u *StoreUser) SetStoreID(id string) { u.StoreID = id }
func (u *StoreUser) GetStoreID() string   { return u.StoreID }

// PlatformAdmin 平台管理员（管理后台账号，不属于任何店铺）
type PlatformAdmin struct {
	BaseModel
	Username    string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	Email       string     `gorm:"size:100" json:"email"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func (PlatformAdmin) TableName() string {
	return "platform_admins"
}
