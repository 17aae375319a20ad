package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/tenant"
)

// ==================== StoreUserRepository 店铺成员仓库 ====================

// StoreUserRepository 店铺成员仓库接口，所有方法都按店铺过滤
type StoreUserRepository interface {
	Create(ctx context.Context, storeID string, user *model.StoreUser) error
	GetByID(ctx context.Context, storeID string, id int64) (*model.StoreUser, error)
	GetByUsername(ctx context.Context, storeID, username string) (*model.StoreUser, error)
	ExistsByUsername(ctx context.Context, storeID, username string) (bool, error)
	List(ctx context.Context, storeID string, filter UserFilter) ([]model.StoreUser, int64, error)
	UpdateFields(ctx context.Context, storeID string, id int64, fields map[string]interface{}) error
	UpdateLastLogin(ctx context.Context, storeID string, id int64) error
	Delete(ctx context.Context, storeID string, id int64) error
	CountActiveAdmins(ctx context.Context, storeID string) (int64, error)
}

// UserFilter 用户筛选条件
type UserFilter struct {
	Keyword  string
	Role     string
	Page     int
	PageSize int
}

type storeUserRepository struct {
	q *ScopedQuery
}

// NewStoreUserRepository 创建店铺成员仓库
func NewStoreUserRepository(q *ScopedQuery) StoreUserRepository {
	return &storeUserRepository{q: q}
}

func (r *storeUserRepository) table() string { return model.StoreUser{}.TableName() }

func (r *storeUserRepository) Create(ctx context.Context, storeID string, user *model.StoreUser) error {
	return r.q.Create(ctx, storeID, user)
}

func (r *storeUserRepository) GetByID(ctx context.Context, storeID string, id int64) (*model.StoreUser, error) {
	var user model.StoreUser
	if err := r.q.First(ctx, storeID, &user, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *storeUserRepository) GetByUsername(ctx context.Context, storeID, username string) (*model.StoreUser, error) {
	db, err := r.q.Model(ctx, storeID, &model.StoreUser{})
	if err != nil {
		return nil, err
	}
	var user model.StoreUser
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tenant.Backend("get store user", err)
	}
	return &user, nil
}

func (r *storeUserRepository) ExistsByUsername(ctx context.Context, storeID, username string) (bool, error) {
	db, err := r.q.Model(ctx, storeID, &model.StoreUser{})
	if err != nil {
		return false, err
	}
	var count int64
	// 软删除的账号也占用用户名（唯一索引不区分）
	err = db.Unscoped().Where("username = ?", username).Count(&count).Error
	return count > 0, tenant.Backend("store user exists", err)
}

func (r *storeUserRepository) List(ctx context.Context, storeID string, filter UserFilter) ([]model.StoreUser, int64, error) {
	db, err := r.q.Model(ctx, storeID, &model.StoreUser{})
	if err != nil {
		return nil, 0, err
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		db = db.Where("username LIKE ? OR full_name LIKE ?", like, like)
	}
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, tenant.Backend("count store users", err)
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	var users []model.StoreUser
	if err := db.Order("id ASC").Limit(size).Offset((page - 1) * size).Find(&users).Error; err != nil {
		return nil, 0, tenant.Backend("list store users", err)
	}
	return users, total, nil
}

func (r *storeUserRepository) UpdateFields(ctx context.Context, storeID string, id int64, fields map[string]interface{}) error {
	n, err := r.q.Update(ctx, r.table(), storeID, "id", id, fields)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *storeUserRepository) UpdateLastLogin(ctx context.Context, storeID string, id int64) error {
	return r.UpdateFields(ctx, storeID, id, map[string]interface{}{"last_login_at": time.Now()})
}

func (r *storeUserRepository) Delete(ctx context.Context, storeID string, id int64) error {
	n, err := r.q.Delete(ctx, r.table(), storeID, "id", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *storeUserRepository) CountActiveAdmins(ctx context.Context, storeID string) (int64, error) {
	db, err := r.q.Model(ctx, storeID, &model.StoreUser{})
	if err != nil {
		return 0, err
	}
	var n int64
	err = db.Where("role = ? AND is_active = ?", model.RoleAdmin, true).Count(&n).Error
	return n, tenant.Backend("count admins", err)
}

// ==================== PlatformAdminRepository 平台管理员仓库 ====================

// PlatformAdminRepository 平台管理员仓库接口
type PlatformAdminRepository interface {
	Create(ctx context.Context, admin *model.PlatformAdmin) error
	GetByID(ctx context.Context, id int64) (*model.PlatformAdmin, error)
	GetByUsername(ctx context.Context, username string) (*model.PlatformAdmin, error)
	UpdateLastLogin(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type platformAdminRepository struct {
	db *gorm.DB
}

// NewPlatformAdminRepository 创建平台管理员仓库
func NewPlatformAdminRepository(db *gorm.DB) PlatformAdminRepository {
	return &platformAdminRepository{db: db}
}

func (r *platformAdminRepository) Create(ctx context.Context, admin *model.PlatformAdmin) error {
	return tenant.Backend("create admin", r.db.WithContext(ctx).Create(admin).Error)
}

func (r *platformAdminRepository) GetByID(ctx context.Context, id int64) (*model.PlatformAdmin, error) {
	var admin model.PlatformAdmin
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tenant.Backend("get admin", err)
	}
	return &admin, nil
}

func (r *platformAdminRepository) GetByUsername(ctx context.Context, username string) (*model.PlatformAdmin, error) {
	var admin model.PlatformAdmin
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tenant.Backend("get admin", err)
	}
	return &admin, nil
}

func (r *platformAdminRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	return tenant.Backend("admin last login", r.db.WithContext(ctx).
		Model(&model.PlatformAdmin{}).
		Where("id = ?", id).
		Update("last_login_at", time.Now()).Error)
}

func (r *platformAdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.PlatformAdmin{}).Count(&n).Error
	return n, tenant.Backend("count admins", err)
}
