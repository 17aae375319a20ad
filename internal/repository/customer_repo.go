package repository

import (
	"context"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/tenant"
)

// CustomerRepository 客户仓储接口
type CustomerRepository interface {
	Create(ctx context.Context, storeID string, c *model.Customer) error
	GetByID(ctx context.Context, storeID string, id int64) (*model.Customer, error)
	List(ctx context.Context, storeID string, filter CustomerFilter) ([]model.Customer, int64, error)
	UpdateFields(ctx context.Context, storeID string, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, storeID string, id int64) error
}

// CustomerFilter 客户过滤条件
type CustomerFilter struct {
	Keyword  string
	Page     int
	PageSize int
}

type customerRepo struct {
	q *ScopedQuery
}

// NewCustomerRepository 创建客户仓储
func NewCustomerRepository(q *ScopedQuery) CustomerRepository {
	return &customerRepo{q: q}
}

func (r *customerRepo) Create(ctx context.Context, storeID string, c *model.Customer) error {
	return r.q.Create(ctx, storeID, c)
}

func (r *customerRepo) GetByID(ctx context.Context, storeID string, id int64) (*model.Customer, error) {
	var c model.Customer
	if err := r.q.First(ctx, storeID, &c, id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context, storeID string, filter CustomerFilter) ([]model.Customer, int64, error) {
	db, err := r.q.Model(ctx, storeID, &model.Customer{})
	if err != nil {
		return nil, 0, err
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		db = db.Where("name LIKE ? OR phone LIKE ? OR email LIKE ?", like, like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, tenant.Backend("count customers", err)
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	var list []model.Customer
	if err := db.Order("created_at DESC").Limit(size).Offset((page - 1) * size).Find(&list).Error; err != nil {
		return nil, 0, tenant.Backend("list customers", err)
	}
	return list, total, nil
}

func (r *customerRepo) UpdateFields(ctx context.Context, storeID string, id int64, fields map[string]interface{}) error {
	return affectOne(r.q.Update(ctx, model.Customer{}.TableName(), storeID, "id", id, fields))
}

func (r *customerRepo) Delete(ctx context.Context, storeID string, id int64) error {
	return affectOne(r.q.Delete(ctx, model.Customer{}.TableName(), storeID, "id", id))
}

// affectOne 影响 0 行视为记录不存在（包括属于其他店铺）
func affectOne(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
