package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/tenant"
)

// ==================== 接口定义 ====================

// OrderRepository 订单仓储接口
type OrderRepository interface {
	Create(ctx context.Context, storeID string, order *model.Order) error
	GetByID(ctx context.Context, storeID string, id int64) (*model.Order, error)
	List(ctx context.Context, storeID string, filter OrderFilter) ([]model.Order, int64, error)
	ListForExport(ctx context.Context, storeID string, from, to time.Time) ([]model.Order, error)
	UpdateFields(ctx context.Context, storeID string, id int64, fields map[string]interface{}) error
	ReplaceItems(ctx context.Context, storeID string, order *model.Order) error
	Delete(ctx context.Context, storeID string, id int64) error
	CountByStatus(ctx context.Context, storeID, status string) (int64, error)
	SumGrandTotal(ctx context.Context, storeID string) (int64, error)
}

// OrderFilter 订单过滤条件
type OrderFilter struct {
	Keyword    string // 订单号
	Status     string
	CustomerID int64
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

// ==================== 仓储实现 ====================

type orderRepo struct {
	q *ScopedQuery
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(q *ScopedQuery) OrderRepository {
	return &orderRepo{q: q}
}

func (r *orderRepo) Create(ctx context.Context, storeID string, order *model.Order) error {
	return r.q.Create(ctx, storeID, order)
}

// itemsPreload 明细同样按店铺过滤
func itemsPreload(storeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(StoreScope(storeID)).Order("id ASC")
	}
}

func (r *orderRepo) GetByID(ctx context.Context, storeID string, id int64) (*model.Order, error) {
	db, err := r.q.Model(ctx, storeID, &model.Order{})
	if err != nil {
		return nil, err
	}
	var order model.Order
	if err := db.Preload("Items", itemsPreload(storeID)).Where("id = ?", id).First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, tenant.Backend("get order", err)
	}
	return &order, nil
}

func (r *orderRepo) List(ctx context.Context, storeID string, filter OrderFilter) ([]model.Order, int64, error) {
	db, err := r.q.Model(ctx, storeID, &model.Order{})
	if err != nil {
		return nil, 0, err
	}
	if filter.Keyword != "" {
		db = db.Where("order_no LIKE ?", "%"+filter.Keyword+"%")
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.CustomerID > 0 {
		db = db.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.From != nil {
		db = db.Where("ordered_at >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("ordered_at < ?", *filter.To)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, tenant.Backend("count orders", err)
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	var list []model.Order
	if err := db.Order("ordered_at DESC, id DESC").Limit(size).Offset((page - 1) * size).Find(&list).Error; err != nil {
		return nil, 0, tenant.Backend("list orders", err)
	}
	return list, total, nil
}

func (r *orderRepo) ListForExport(ctx context.Context, storeID string, from, to time.Time) ([]model.Order, error) {
	db, err := r.q.Model(ctx, storeID, &model.Order{})
	if err != nil {
		return nil, err
	}
	var list []model.Order
	err = db.Preload("Items", itemsPreload(storeID)).
		Where("ordered_at >= ? AND ordered_at < ?", from, to).
		Order("ordered_at ASC, id ASC").
		Find(&list).Error
	return list, tenant.Backend("export orders", err)
}

func (r *orderRepo) UpdateFields(ctx context.Context, storeID string, id int64, fields map[string]interface{}) error {
	return affectOne(r.q.Update(ctx, model.Order{}.TableName(), storeID, "id", id, fields))
}

// ReplaceItems 替换订单明细并写回金额（同一事务）
func (r *orderRepo) ReplaceItems(ctx context.Context, storeID string, order *model.Order) error {
	return r.q.Transaction(ctx, func(tx *ScopedQuery) error {
		if _, err := tx.Delete(ctx, model.OrderItem{}.TableName(), storeID, "order_id", order.ID); err != nil {
			return err
		}
		for i := range order.Items {
			order.Items[i].ID = 0
			order.Items[i].OrderID = order.ID
			if err := tx.Create(ctx, storeID, &order.Items[i]); err != nil {
				return err
			}
		}
		return affectOne(tx.Update(ctx, model.Order{}.TableName(), storeID, "id", order.ID, map[string]interface{}{
			"subtotal_amount":    order.SubtotalAmount,
			"discount_amount":    order.DiscountAmount,
			"shipping_amount":    order.ShippingAmount,
			"grand_total_amount": order.GrandTotalAmount,
		}))
	})
}

// Delete 删除订单及其明细
func (r *orderRepo) Delete(ctx context.Context, storeID string, id int64) error {
	return r.q.Transaction(ctx, func(tx *ScopedQuery) error {
		if err := affectOne(tx.Delete(ctx, model.Order{}.TableName(), storeID, "id", id)); err != nil {
			return err
		}
		_, err := tx.Delete(ctx, model.OrderItem{}.TableName(), storeID, "order_id", id)
		return err
	})
}

func (r *orderRepo) CountByStatus(ctx context.Context, storeID, status string) (int64, error) {
	db, err := r.q.Model(ctx, storeID, &model.Order{})
	if err != nil {
		return 0, err
	}
	var n int64
	err = db.Where("status = ?", status).Count(&n).Error
	return n, tenant.Backend("count orders by status", err)
}

func (r *orderRepo) SumGrandTotal(ctx context.Context, storeID string) (int64, error) {
	db, err := r.q.Model(ctx, storeID, &model.Order{})
	if err != nil {
		return 0, err
	}
	var sum int64
	err = db.Select("COALESCE(SUM(grand_total_amount), 0)").Scan(&sum).Error
	return sum, tenant.Backend("sum orders", err)
}
