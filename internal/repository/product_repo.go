package repository

import (
	"context"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/tenant"
)

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Create(ctx context.Context, storeID string, p *model.Product) error
	GetByID(ctx context.Context, storeID string, id int64) (*model.Product, error)
	GetByIDs(ctx context.Context, storeID string, ids []int64) (map[int64]*model.Product, error)
	SKUTaken(ctx context.Context, storeID, sku string, exceptID int64) (bool, error)
	List(ctx context.Context, storeID string, filter ProductFilter) ([]model.Product, int64, error)
	UpdateFields(ctx context.Context, storeID string, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, storeID string, id int64) error
}

// ProductFilter 商品过滤条件
type ProductFilter struct {
	Keyword  string
	IsActive *bool
	Page     int
	PageSize int
}

type productRepo struct {
	q *ScopedQuery
}

// NewProductRepository 创建商品仓储
func NewProductRepository(q *ScopedQuery) ProductRepository {
	return &productRepo{q: q}
}

func (r *productRepo) Create(ctx context.Context, storeID string, p *model.Product) error {
	return r.q.Create(ctx, storeID, p)
}

func (r *productRepo) GetByID(ctx context.Context, storeID string, id int64) (*model.Product, error) {
	var p model.Product
	if err := r.q.First(ctx, storeID, &p, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByIDs 批量读取本店铺商品，不属于本店铺的 ID 不会出现在结果中
func (r *productRepo) GetByIDs(ctx context.Context, storeID string, ids []int64) (map[int64]*model.Product, error) {
	result := make(map[int64]*model.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	db, err := r.q.Model(ctx, storeID, &model.Product{})
	if err != nil {
		return nil, err
	}
	var list []model.Product
	if err := db.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, tenant.Backend("get products", err)
	}
	for i := range list {
		result[list[i].ID] = &list[i]
	}
	return result, nil
}

func (r *productRepo) SKUTaken(ctx context.Context, storeID, sku string, exceptID int64) (bool, error) {
	db, err := r.q.Model(ctx, storeID, &model.Product{})
	if err != nil {
		return false, err
	}
	db = db.Where("sku = ?", sku)
	if exceptID > 0 {
		db = db.Where("id <> ?", exceptID)
	}
	var n int64
	err = db.Count(&n).Error
	return n > 0, tenant.Backend("sku taken", err)
}

func (r *productRepo) List(ctx context.Context, storeID string, filter ProductFilter) ([]model.Product, int64, error) {
	db, err := r.q.Model(ctx, storeID, &model.Product{})
	if err != nil {
		return nil, 0, err
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		db = db.Where("name LIKE ? OR sku LIKE ?", like, like)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, tenant.Backend("count products", err)
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	var list []model.Product
	if err := db.Order("name ASC").Limit(size).Offset((page - 1) * size).Find(&list).Error; err != nil {
		return nil, 0, tenant.Backend("list products", err)
	}
	return list, total, nil
}

func (r *productRepo) UpdateFields(ctx context.Context, storeID string, id int64, fields map[string]interface{}) error {
	return affectOne(r.q.Update(ctx, model.Product{}.TableName(), storeID, "id", id, fields))
}

func (r *productRepo) Delete(ctx context.Context, storeID string, id int64) error {
	return affectOne(r.q.Delete(ctx, model.Product{}.TableName(), storeID, "id", id))
}
