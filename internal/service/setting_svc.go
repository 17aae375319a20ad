package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/invoice"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
)

// ==================== SettingService 店铺设置与订单状态 ====================

// SettingService 订单状态和店铺设置，均为店铺管理员操作
type SettingService struct {
	q        *repository.ScopedQuery
	statuses repository.OrderStatusRepository
	settings repository.StoreSettingRepository
	orders   repository.OrderRepository
}

// NewSettingService 创建设置服务
func NewSettingService(q *repository.ScopedQuery) *SettingService {
	return &SettingService{
		q:        q,
		statuses: repository.NewOrderStatusRepository(q),
		settings: repository.NewStoreSettingRepository(q),
		orders:   repository.NewOrderRepository(q),
	}
}

// ==================== 订单状态 ====================

// ListStatuses 按排序返回
func (s *SettingService) ListStatuses(ctx context.Context, storeID string) ([]model.OrderStatus, error) {
	return s.statuses.List(ctx, storeID)
}

// CreateStatus code 店铺内唯一，统一小写
func (s *SettingService) CreateStatus(ctx context.Context, storeID string, req *dto.CreateStatusRequest) (*model.OrderStatus, error) {
	code := strings.ToLower(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, ErrUnknownStatus
	}
	if _, err := s.statuses.GetByCode(ctx, storeID, code); err == nil {
		return nil, ErrStatusCodeExists
	} else if !IsNotFound(err) {
		return nil, err
	}

	st := &model.OrderStatus{
		Code:      code,
		Label:     req.Label,
		Color:     req.Color,
		SortOrder: req.SortOrder,
		IsDefault: req.IsDefault,
	}
	err := s.q.Transaction(ctx, func(tx *repository.ScopedQuery) error {
		statuses := repository.NewOrderStatusRepository(tx)
		if st.IsDefault {
			if err := statuses.ClearDefault(ctx, storeID); err != nil {
				return err
			}
		}
		return statuses.Create(ctx, storeID, st)
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// UpdateStatus 修改状态；设为默认时取消其他状态的默认标记
func (s *SettingService) UpdateStatus(ctx context.Context, storeID string, id int64, req *dto.UpdateStatusRequest) (*model.OrderStatus, error) {
	fields := make(map[string]interface{})
	if req.Label != nil {
		fields["label"] = *req.Label
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}
	if req.IsDefault != nil {
		fields["is_default"] = *req.IsDefault
	}

	if len(fields) > 0 {
		err := s.q.Transaction(ctx, func(tx *repository.ScopedQuery) error {
			statuses := repository.NewOrderStatusRepository(tx)
			if req.IsDefault != nil && *req.IsDefault {
				if err := statuses.ClearDefault(ctx, storeID); err != nil {
					return err
				}
			}
			return statuses.UpdateFields(ctx, storeID, id, fields)
		})
		if err != nil {
			return nil, err
		}
	}
	return s.statuses.GetByID(ctx, storeID, id)
}

// DeleteStatus 仍有订单使用时拒绝删除
func (s *SettingService) DeleteStatus(ctx context.Context, storeID string, id int64) error {
	st, err := s.statuses.GetByID(ctx, storeID, id)
	if err != nil {
		return err
	}
	n, err := s.orders.CountByStatus(ctx, storeID, st.Code)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrStatusInUse
	}
	return s.statuses.Delete(ctx, storeID, id)
}

// ==================== 店铺设置 ====================

// GetSettings 未保存过时返回默认值
func (s *SettingService) GetSettings(ctx context.Context, storeID string) (*model.StoreSetting, error) {
	return s.settings.Get(ctx, storeID)
}

// UpdateSettings 合并请求字段后整体写回；发票模板先试渲染一次
func (s *SettingService) UpdateSettings(ctx context.Context, storeID string, req *dto.UpdateSettingsRequest) (*model.StoreSetting, error) {
	cur, err := s.settings.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if req.Currency != nil {
		cur.Currency = strings.ToUpper(*req.Currency)
	}
	if req.BusinessName != nil {
		cur.BusinessName = *req.BusinessName
	}
	if req.Phone != nil {
		cur.Phone = *req.Phone
	}
	if req.Address != nil {
		cur.Address = *req.Address
	}
	if req.InvoiceNotes != nil {
		cur.InvoiceNotes = *req.InvoiceNotes
	}
	if req.InvoiceTemplate != nil {
		if err := ValidateInvoiceTemplate(*req.InvoiceTemplate); err != nil {
			return nil, err
		}
		cur.InvoiceTemplate = *req.InvoiceTemplate
	}
	if req.WhatsAppTemplate != nil {
		cur.WhatsAppTemplate = *req.WhatsAppTemplate
	}
	if req.Extra != nil {
		cur.Extra = datatypes.JSONMap(req.Extra)
	}

	if err := s.settings.Upsert(ctx, storeID, cur); err != nil {
		return nil, err
	}
	return s.settings.Get(ctx, storeID)
}

// ValidateInvoiceTemplate 空模板表示使用内置模板
func ValidateInvoiceTemplate(tmpl string) error {
	if strings.TrimSpace(tmpl) == "" {
		return nil
	}
	if _, err := invoice.Render(sampleInvoice, tmpl); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return nil
}

var sampleInvoice = invoice.Data{
	Store:     invoice.Party{Name: "Sample Store"},
	Customer:  invoice.Party{Name: "Sample Customer"},
	OrderNo:   "ORD-20240101-SAMPLE00",
	OrderedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	Status:    "Pending",
	Currency:  "USD",
	Lines:     []invoice.Line{{Name: "Item", Quantity: 1, UnitPrice: "USD 1.00", LineTotal: "USD 1.00"}},
	Subtotal:  "USD 1.00",
	Total:     "USD 1.00",
}
