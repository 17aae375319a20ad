package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"order_dash_v1/internal/invoice"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
)

// ==================== 订单文档数据 ====================

// orderDocument 渲染发票和消息共用的数据，全部来自本店铺的读取
type orderDocument struct {
	store    *model.Store
	setting  *model.StoreSetting
	order    *model.Order
	customer *model.Customer
	status   string // 状态显示名
}

type documentLoader struct {
	stores    repository.StoreRepository
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	statuses  repository.OrderStatusRepository
	settings  repository.StoreSettingRepository
}

func newDocumentLoader(q *repository.ScopedQuery, stores repository.StoreRepository) *documentLoader {
	return &documentLoader{
		stores:    stores,
		orders:    repository.NewOrderRepository(q),
		customers: repository.NewCustomerRepository(q),
		statuses:  repository.NewOrderStatusRepository(q),
		settings:  repository.NewStoreSettingRepository(q),
	}
}

func (l *documentLoader) load(ctx context.Context, storeID string, orderID int64) (*orderDocument, error) {
	order, err := l.orders.GetByID(ctx, storeID, orderID)
	if err != nil {
		return nil, err
	}
	store, err := l.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	setting, err := l.settings.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}

	customer, err := l.customers.GetByID(ctx, storeID, order.CustomerID)
	if err != nil {
		if !IsNotFound(err) {
			return nil, err
		}
		// 客户已删除，发票仍可生成
		customer = &model.Customer{Name: fmt.Sprintf("Customer #%d", order.CustomerID)}
	}

	label := order.Status
	if st, err := l.statuses.GetByCode(ctx, storeID, order.Status); err == nil {
		label = st.Label
	} else if !IsNotFound(err) {
		return nil, err
	}

	return &orderDocument{store: store, setting: setting, order: order, customer: customer, status: label}, nil
}

func (d *orderDocument) storeName() string {
	if d.setting.BusinessName != "" {
		return d.setting.BusinessName
	}
	return d.store.Name
}

func (d *orderDocument) currency() string {
	if d.order.Currency != "" {
		return d.order.Currency
	}
	return d.setting.Currency
}

// ==================== InvoiceService 发票服务 ====================

// InvoiceService 渲染发票 HTML，并可归档到对象存储
type InvoiceService struct {
	loader  *documentLoader
	storage StorageProvider // 未配置时为 nil
	log     *zap.Logger
}

func NewInvoiceService(q *repository.ScopedQuery, stores repository.StoreRepository, storage StorageProvider, log *zap.Logger) *InvoiceService {
	return &InvoiceService{loader: newDocumentLoader(q, stores), storage: storage, log: log.Named("invoice")}
}

// Render 渲染订单发票
func (s *InvoiceService) Render(ctx context.Context, storeID string, orderID int64) (string, *model.Order, error) {
	doc, err := s.loader.load(ctx, storeID, orderID)
	if err != nil {
		return "", nil, err
	}
	html, err := invoice.Render(buildInvoiceData(doc), doc.setting.InvoiceTemplate)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return html, doc.order, nil
}

// Archive 渲染后上传，返回访问 URL
func (s *InvoiceService) Archive(ctx context.Context, storeID string, orderID int64) (string, error) {
	if s.storage == nil {
		return "", ErrStorageDisabled
	}
	html, order, err := s.Render(ctx, storeID, orderID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("invoices/%s/%s/%s-%s.html",
		storeID, time.Now().Format("2006/01"), order.OrderNo, uuid.NewString()[:8])
	url, err := s.storage.Put(ctx, key, []byte(html), "text/html; charset=utf-8")
	if err != nil {
		return "", err
	}
	s.log.Info("发票已归档", zap.String("store_id", storeID), zap.String("order_no", order.OrderNo), zap.String("url", url))
	return url, nil
}

// buildInvoiceData 金额统一格式化为 "USD 12.34"
func buildInvoiceData(doc *orderDocument) invoice.Data {
	o := doc.order
	cur := doc.currency()

	lines := make([]invoice.Line, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, invoice.Line{
			Name:      it.ProductName,
			SKU:       it.SKU,
			Quantity:  it.Quantity,
			UnitPrice: model.FormatAmount(it.UnitPriceAmount, cur),
			LineTotal: model.FormatAmount(it.LineTotalAmount, cur),
		})
	}

	data := invoice.Data{
		Store: invoice.Party{
			Name:    doc.storeName(),
			Phone:   firstNonEmpty(doc.setting.Phone, doc.store.Phone),
			Email:   doc.store.Email,
			Address: firstNonEmpty(doc.setting.Address, doc.store.Address),
		},
		Customer: invoice.Party{
			Name:    doc.customer.Name,
			Phone:   doc.customer.Phone,
			Email:   doc.customer.Email,
			Address: doc.customer.Address,
		},
		OrderNo:         o.OrderNo,
		OrderedAt:       o.OrderedAt,
		Status:          doc.status,
		Currency:        cur,
		Lines:           lines,
		Subtotal:        model.FormatAmount(o.SubtotalAmount, cur),
		Total:           model.FormatAmount(o.GrandTotalAmount, cur),
		ShippingAddress: addressLines(o),
		Notes:           joinNotes(o.Notes, doc.setting.InvoiceNotes),
	}
	if o.DiscountAmount > 0 {
		data.Discount = model.FormatAmount(o.DiscountAmount, cur)
	}
	if o.ShippingAmount > 0 {
		data.Shipping = model.FormatAmount(o.ShippingAmount, cur)
	}
	return data
}

var addressKeys = []string{"name", "line1", "line2", "city", "state", "postal_code", "country", "phone"}

func addressLines(o *model.Order) []string {
	var out []string
	for _, k := range addressKeys {
		if v := strings.TrimSpace(o.GetShippingAddressField(k)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func joinNotes(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
