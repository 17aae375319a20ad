package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
)

const dateLayout = "2006-01-02"

// ==================== OrderService 订单服务 ====================

// OrderService 订单管理；金额由服务端根据明细计算，单价和商品名在下单时快照
type OrderService struct {
	q         *repository.ScopedQuery
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	statuses  repository.OrderStatusRepository
	settings  repository.StoreSettingRepository
	log       *zap.Logger
}

// NewOrderService 创建订单服务
func NewOrderService(q *repository.ScopedQuery, log *zap.Logger) *OrderService {
	return &OrderService{
		q:         q,
		orders:    repository.NewOrderRepository(q),
		customers: repository.NewCustomerRepository(q),
		products:  repository.NewProductRepository(q),
		statuses:  repository.NewOrderStatusRepository(q),
		settings:  repository.NewStoreSettingRepository(q),
		log:       log.Named("order"),
	}
}

// ==================== 创建 ====================

// Create 创建订单
func (s *OrderService) Create(ctx context.Context, storeID string, req *dto.CreateOrderRequest) (*model.Order, error) {
	if err := s.checkCustomer(ctx, storeID, req.CustomerID); err != nil {
		return nil, err
	}
	items, err := s.buildItems(ctx, storeID, req.Items)
	if err != nil {
		return nil, err
	}
	status, err := s.resolveStatus(ctx, storeID, req.Status)
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		setting, err := s.settings.Get(ctx, storeID)
		if err != nil {
			return nil, err
		}
		currency = setting.Currency
	}

	orderedAt := time.Now()
	if req.OrderedAt != nil {
		orderedAt = *req.OrderedAt
	}

	order := &model.Order{
		OrderNo:         newOrderNo(orderedAt),
		CustomerID:      req.CustomerID,
		Status:          status,
		ShippingAddress: datatypes.JSONMap(req.ShippingAddress),
		DiscountAmount:  req.Discount,
		ShippingAmount:  req.Shipping,
		Currency:        currency,
		Notes:           req.Notes,
		OrderedAt:       orderedAt,
		Items:           items,
	}
	if err := order.Recalculate(); err != nil {
		return nil, err
	}

	if err := s.orders.Create(ctx, storeID, order); err != nil {
		return nil, err
	}
	s.log.Info("创建订单",
		zap.String("store_id", storeID),
		zap.String("order_no", order.OrderNo),
		zap.Int64("grand_total", order.GrandTotalAmount),
	)
	return order, nil
}

// newOrderNo ORD-20240101-1A2B3C4D
func newOrderNo(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", at.Format("20060102"), suffix)
}

func (s *OrderService) checkCustomer(ctx context.Context, storeID string, customerID int64) error {
	if _, err := s.customers.GetByID(ctx, storeID, customerID); err != nil {
		if IsNotFound(err) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}

// buildItems 商品必须属于本店铺且处于上架状态
func (s *OrderService) buildItems(ctx context.Context, storeID string, inputs []dto.OrderItemInput) ([]model.OrderItem, error) {
	ids := make([]int64, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.ProductID)
	}
	products, err := s.products.GetByIDs(ctx, storeID, ids)
	if err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		p, ok := products[in.ProductID]
		if !ok || !p.IsActive {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, in.ProductID)
		}
		price := p.PriceAmount
		if in.UnitPrice != nil {
			price = *in.UnitPrice
		}
		items = append(items, model.OrderItem{
			ProductID:       p.ID,
			ProductName:     p.Name,
			SKU:             p.SKU,
			UnitPriceAmount: price,
			Quantity:        in.Quantity,
		})
	}
	return items, nil
}

// resolveStatus 为空时使用店铺默认状态
func (s *OrderService) resolveStatus(ctx context.Context, storeID, code string) (string, error) {
	var (
		st  *model.OrderStatus
		err error
	)
	if code == "" {
		st, err = s.statuses.GetDefault(ctx, storeID)
	} else {
		st, err = s.statuses.GetByCode(ctx, storeID, code)
	}
	if err != nil {
		if IsNotFound(err) {
			return "", ErrUnknownStatus
		}
		return "", err
	}
	return st.Code, nil
}

// ==================== 查询 ====================

// Get 订单详情（含明细）
func (s *OrderService) Get(ctx context.Context, storeID string, id int64) (*model.Order, error) {
	return s.orders.GetByID(ctx, storeID, id)
}

// List 订单列表，end_date 含当天
func (s *OrderService) List(ctx context.Context, storeID string, req *dto.ListOrdersRequest) (*dto.ListOrdersResponse, error) {
	filter := repository.OrderFilter{
		Keyword:    req.Keyword,
		Status:     req.Status,
		CustomerID: req.CustomerID,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	if req.StartDate != "" {
		from, err := time.ParseInLocation(dateLayout, req.StartDate, time.Local)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		filter.From = &from
	}
	if req.EndDate != "" {
		end, err := time.ParseInLocation(dateLayout, req.EndDate, time.Local)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		to := end.AddDate(0, 0, 1)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, ErrInvalidDateRange
	}

	list, total, err := s.orders.List(ctx, storeID, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ListOrdersResponse{Total: total, List: list}, nil
}

// ParseDateRange 解析 [from, to] 日期（含 to 当天），返回半开区间
func ParseDateRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout, from, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	end, err := time.ParseInLocation(dateLayout, to, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	end = end.AddDate(0, 0, 1)
	if !start.Before(end) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return start, end, nil
}

// ==================== 修改 ====================

// Update 修改订单；items 不为空时整体替换明细，金额重新计算
func (s *OrderService) Update(ctx context.Context, storeID string, id int64, req *dto.UpdateOrderRequest) (*model.Order, error) {
	order, err := s.orders.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.CustomerID != nil && *req.CustomerID != order.CustomerID {
		if err := s.checkCustomer(ctx, storeID, *req.CustomerID); err != nil {
			return nil, err
		}
		fields["customer_id"] = *req.CustomerID
	}
	if req.ShippingAddress != nil {
		fields["shipping_address"] = datatypes.JSONMap(req.ShippingAddress)
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	replace := len(req.Items) > 0
	if replace {
		items, err := s.buildItems(ctx, storeID, req.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	if req.Discount != nil {
		order.DiscountAmount = *req.Discount
	}
	if req.Shipping != nil {
		order.ShippingAmount = *req.Shipping
	}
	if err := order.Recalculate(); err != nil {
		return nil, err
	}

	err = s.q.Transaction(ctx, func(tx *repository.ScopedQuery) error {
		orders := repository.NewOrderRepository(tx)
		if replace {
			if err := orders.ReplaceItems(ctx, storeID, order); err != nil {
				return err
			}
		} else {
			fields["subtotal_amount"] = order.SubtotalAmount
			fields["discount_amount"] = order.DiscountAmount
			fields["shipping_amount"] = order.ShippingAmount
			fields["grand_total_amount"] = order.GrandTotalAmount
		}
		if len(fields) == 0 {
			return nil
		}
		return orders.UpdateFields(ctx, storeID, id, fields)
	})
	if err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, storeID, id)
}

// UpdateStatus 修改订单状态，状态码必须是本店铺已定义的
func (s *OrderService) UpdateStatus(ctx context.Context, storeID string, id int64, code string) (*model.Order, error) {
	if _, err := s.statuses.GetByCode(ctx, storeID, code); err != nil {
		if IsNotFound(err) {
			return nil, ErrUnknownStatus
		}
		return nil, err
	}
	if err := s.orders.UpdateFields(ctx, storeID, id, map[string]interface{}{"status": code}); err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, storeID, id)
}

// Delete 删除订单及明细
func (s *OrderService) Delete(ctx context.Context, storeID string, id int64) error {
	if err := s.orders.Delete(ctx, storeID, id); err != nil {
		return err
	}
	s.log.Info("删除订单", zap.String("store_id", storeID), zap.Int64("order_id", id))
	return nil
}
