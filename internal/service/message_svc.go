package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/message"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
)

// MessageService 生成发给客户的 WhatsApp 消息和链接
type MessageService struct {
	loader *documentLoader
}

func NewMessageService(q *repository.ScopedQuery, stores repository.StoreRepository) *MessageService {
	return &MessageService{loader: newDocumentLoader(q, stores)}
}

// WhatsApp 客户没有有效电话时返回 ErrNoCustomerPhone
func (s *MessageService) WhatsApp(ctx context.Context, storeID string, orderID int64) (*dto.WhatsAppMessageResponse, error) {
	doc, err := s.loader.load(ctx, storeID, orderID)
	if err != nil {
		return nil, err
	}

	tmpl := doc.setting.WhatsAppTemplate
	if strings.TrimSpace(tmpl) == "" {
		tmpl = model.DefaultWhatsAppTemplate
	}
	text := message.Render(tmpl, messageData(doc))

	phone := doc.customer.Phone
	if phone == "" {
		phone = doc.order.GetShippingAddressField("phone")
	}
	link, err := message.WhatsAppLink(phone, text)
	if err != nil {
		if errors.Is(err, message.ErrInvalidPhone) {
			return nil, ErrNoCustomerPhone
		}
		return nil, err
	}
	digits, _ := message.NormalizePhone(phone)

	return &dto.WhatsAppMessageResponse{Phone: digits, Message: text, Link: link}, nil
}

func messageData(doc *orderDocument) message.Data {
	cur := doc.currency()
	items := make([]string, 0, len(doc.order.Items))
	for _, it := range doc.order.Items {
		items = append(items, fmt.Sprintf("- %s x%d %s", it.ProductName, it.Quantity, model.FormatAmount(it.LineTotalAmount, cur)))
	}
	return message.Data{
		CustomerName: doc.customer.Name,
		OrderNo:      doc.order.OrderNo,
		Status:       doc.status,
		Total:        model.FormatAmount(doc.order.GrandTotalAmount, cur),
		StoreName:    doc.storeName(),
		Items:        strings.Join(items, "\n"),
	}
}
