package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/tenant"
)

// ==================== 接口定义 ====================

// StoreRepository 店铺仓储接口（平台级，不做店铺过滤）
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	GetByID(ctx context.Context, storeID string) (*model.Store, error)
	ExistsID(ctx context.Context, storeID string) (bool, error)
	IsActive(ctx context.Context, storeID string) (bool, error)
	UpdateFields(ctx context.Context, storeID string, fields map[string]interface{}) error
	SetActive(ctx context.Context, storeID string, active bool) error
	List(ctx context.Context, filter StoreFilter) ([]model.Store, int64, error)
	ListActiveIDs(ctx context.Context) ([]string, error)
	ListAllIDs(ctx context.Context) ([]string, error)

	// slug 相关
	ResolveSlug(ctx context.Context, slug string) (*model.SlugResolution, error)
	SlugOwner(ctx context.Context, slug string) (string, error)
	Rename(ctx context.Context, storeID, newSlug string) error
}

// StoreFilter 店铺过滤条件
type StoreFilter struct {
	Keyword  string
	IsActive *bool
	Page     int
	PageSize int
}

// ==================== 仓储实现 ====================

type storeRepo struct {
	db *gorm.DB
}

// NewStoreRepository 创建店铺仓储
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepo{db: db}
}

func (r *storeRepo) Create(ctx context.Context, store *model.Store) error {
	return tenant.Backend("create store", r.db.WithContext(ctx).Create(store).Error)
}

func (r *storeRepo) GetByID(ctx context.Context, storeID string) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).
		Preload("SlugHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("renamed_at DESC")
		}).
		Where("store_id = ?", storeID).
		First(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tenant.Backend("get store", err)
	}
	return &store, nil
}

func (r *storeRepo) ExistsID(ctx context.Context, storeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Store{}).Where("store_id = ?", storeID).Count(&count).Error
	return count > 0, tenant.Backend("store exists", err)
}

// IsActive 店铺不存在返回 ErrNotFound
func (r *storeRepo) IsActive(ctx context.Context, storeID string) (bool, error) {
	var flags []bool
	err := r.db.WithContext(ctx).Model(&model.Store{}).Where("store_id = ?", storeID).Limit(1).Pluck("is_active", &flags).Error
	if err != nil {
		return false, tenant.Backend("store active", err)
	}
	if len(flags) == 0 {
		return false, ErrNotFound
	}
	return flags[0], nil
}

func (r *storeRepo) UpdateFields(ctx context.Context, storeID string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Store{}).Where("store_id = ?", storeID).Updates(fields)
	if res.Error != nil {
		return tenant.Backend("update store", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *storeRepo) SetActive(ctx context.Context, storeID string, active bool) error {
	return r.UpdateFields(ctx, storeID, map[string]interface{}{"is_active": active})
}

func (r *storeRepo) List(ctx context.Context, filter StoreFilter) ([]model.Store, int64, error) {
	var stores []model.Store
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Store{})
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("name LIKE ? OR slug LIKE ? OR store_id LIKE ?", like, like, like)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, tenant.Backend("count stores", err)
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	if err := query.Order("created_at DESC").Limit(size).Offset((page - 1) * size).Find(&stores).Error; err != nil {
		return nil, 0, tenant.Backend("list stores", err)
	}
	return stores, total, nil
}

func (r *storeRepo) ListActiveIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Store{}).
		Where("is_active = ?", true).
		Order("store_id").
		Pluck("store_id", &ids).Error
	return ids, tenant.Backend("list active stores", err)
}

// ListAllIDs 含已停用店铺，供后台清理使用
func (r *storeRepo) ListAllIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Store{}).Order("store_id").Pluck("store_id", &ids).Error
	return ids, tenant.Backend("list stores", err)
}

// ==================== slug ====================

// ResolveSlug 先查当前 slug，再查历史 slug；已停用店铺视为不存在
func (r *storeRepo) ResolveSlug(ctx context.Context, slug string) (*model.SlugResolution, error) {
	var store model.Store
	err := r.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&store).Error
	if err == nil {
		return &model.SlugResolution{StoreID: store.StoreID, CurrentSlug: store.Slug}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tenant.Backend("resolve slug", err)
	}

	var history model.StoreSlugHistory
	err = r.db.WithContext(ctx).Where("slug = ?", slug).First(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tenant.Backend("resolve slug history", err)
	}

	err = r.db.WithContext(ctx).Where("store_id = ? AND is_active = ?", history.StoreID, true).First(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tenant.Backend("resolve renamed store", err)
	}
	return &model.SlugResolution{
		StoreID:       store.StoreID,
		CurrentSlug:   store.Slug,
		NeedsRedirect: true,
	}, nil
}

// SlugOwner 返回占用该 slug（当前或历史）的店铺 ID，未占用返回空串
func (r *storeRepo) SlugOwner(ctx context.Context, slug string) (string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&model.Store{}).Where("slug = ?", slug).Limit(1).Pluck("store_id", &ids).Error; err != nil {
		return "", tenant.Backend("slug owner", err)
	}
	if len(ids) > 0 {
		return ids[0], nil
	}
	if err := r.db.WithContext(ctx).Model(&model.StoreSlugHistory{}).Where("slug = ?", slug).Limit(1).Pluck("store_id", &ids).Error; err != nil {
		return "", tenant.Backend("slug history owner", err)
	}
	if len(ids) > 0 {
		return ids[0], nil
	}
	return "", nil
}

// Rename 修改 slug：旧 slug 进入历史；改回自己的历史 slug 时从历史中移除
// 调用方负责校验 newSlug 未被其他店铺占用
func (r *storeRepo) Rename(ctx context.Context, storeID, newSlug string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var store model.Store
		if err := tx.Where("store_id = ?", storeID).First(&store).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return tenant.Backend("rename: load store", err)
		}
		if store.Slug == newSlug {
			return nil
		}

		if err := tx.Where("store_id = ? AND slug = ?", storeID, newSlug).Delete(&model.StoreSlugHistory{}).Error; err != nil {
			return tenant.Backend("rename: reclaim slug", err)
		}
		if err := tx.Create(&model.StoreSlugHistory{
			StoreID:   storeID,
			Slug:      store.Slug,
			RenamedAt: time.Now(),
		}).Error; err != nil {
			return tenant.Backend("rename: record history", err)
		}
		if err := tx.Model(&model.Store{}).Where("store_id = ?", storeID).Update("slug", newSlug).Error; err != nil {
			return tenant.Backend("rename: update slug", err)
		}
		return nil
	})
}

// ==================== 工具函数 ====================

func normalizePage(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	if size > 200 {
		size = 200
	}
	return page, size
}
