package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/tenant"
)

// OrderStatusRepository 订单状态仓储接口
type OrderStatusRepository interface {
	List(ctx context.Context, storeID string) ([]model.OrderStatus, error)
	GetByID(ctx context.Context, storeID string, id int64) (*model.OrderStatus, error)
	GetByCode(ctx context.Context, storeID, code string) (*model.OrderStatus, error)
	GetDefault(ctx context.Context, storeID string) (*model.OrderStatus, error)
	Create(ctx context.Context, storeID string, s *model.OrderStatus) error
	UpdateFields(ctx context.Context, storeID string, id int64, fields map[string]interface{}) error
	ClearDefault(ctx context.Context, storeID string) error
	Delete(ctx context.Context, storeID string, id int64) error
	SeedDefaults(ctx context.Context, storeID string) error
}

type orderStatusRepo struct {
	q *ScopedQuery
}

// NewOrderStatusRepository 创建订单状态仓储
func NewOrderStatusRepository(q *ScopedQuery) OrderStatusRepository {
	return &orderStatusRepo{q: q}
}

func (r *orderStatusRepo) List(ctx context.Context, storeID string) ([]model.OrderStatus, error) {
	db, err := r.q.Model(ctx, storeID, &model.OrderStatus{})
	if err != nil {
		return nil, err
	}
	var list []model.OrderStatus
	err = db.Order("sort_order ASC, id ASC").Find(&list).Error
	return list, tenant.Backend("list statuses", err)
}

func (r *orderStatusRepo) GetByID(ctx context.Context, storeID string, id int64) (*model.OrderStatus, error) {
	var s model.OrderStatus
	if err := r.q.First(ctx, storeID, &s, id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *orderStatusRepo) first(ctx context.Context, storeID string, query string, args ...interface{}) (*model.OrderStatus, error) {
	db, err := r.q.Model(ctx, storeID, &model.OrderStatus{})
	if err != nil {
		return nil, err
	}
	var s model.OrderStatus
	if err := db.Where(query, args...).Order("sort_order ASC").First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tenant.Backend("get status", err)
	}
	return &s, nil
}

func (r *orderStatusRepo) GetByCode(ctx context.Context, storeID, code string) (*model.OrderStatus, error) {
	return r.first(ctx, storeID, "code = ?", code)
}

func (r *orderStatusRepo) GetDefault(ctx context.Context, storeID string) (*model.OrderStatus, error) {
	s, err := r.first(ctx, storeID, "is_default = ?", true)
	if errors.Is(err, ErrNotFound) {
		// 未设置默认状态时取排序第一个
		return r.first(ctx, storeID, "1 = 1")
	}
	return s, err
}

func (r *orderStatusRepo) Create(ctx context.Context, storeID string, s *model.OrderStatus) error {
	return r.q.Create(ctx, storeID, s)
}

func (r *orderStatusRepo) UpdateFields(ctx context.Context, storeID string, id int64, fields map[string]interface{}) error {
	return affectOne(r.q.Update(ctx, model.OrderStatus{}.TableName(), storeID, "id", id, fields))
}

// ClearDefault 取消本店铺所有状态的默认标记
func (r *orderStatusRepo) ClearDefault(ctx context.Context, storeID string) error {
	db, err := r.q.Model(ctx, storeID, &model.OrderStatus{})
	if err != nil {
		return err
	}
	return tenant.Backend("clear default status", db.Where("is_default = ?", true).Update("is_default", false).Error)
}

func (r *orderStatusRepo) Delete(ctx context.Context, storeID string, id int64) error {
	return affectOne(r.q.Delete(ctx, model.OrderStatus{}.TableName(), storeID, "id", id))
}

// SeedDefaults 写入默认状态集，已有状态的店铺跳过
func (r *orderStatusRepo) SeedDefaults(ctx context.Context, storeID string) error {
	n, err := r.q.Count(ctx, model.OrderStatus{}.TableName(), storeID)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return r.q.Transaction(ctx, func(tx *ScopedQuery) error {
		for _, def := range model.DefaultOrderStatuses {
			s := def
			if err := tx.Create(ctx, storeID, &s); err != nil {
				return err
			}
		}
		return nil
	})
}
