package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
)

const (
	ordersSheet = "Orders"
	itemsSheet  = "Items"
)

var orderExportHeader = []string{
	"Order No", "Ordered At", "Customer", "Phone", "Status", "Currency",
	"Subtotal", "Discount", "Shipping", "Total", "Notes",
}

var itemExportHeader = []string{
	"Order No", "Product", "SKU", "Quantity", "Unit Price", "Line Total",
}

// ExportService 订单导出为 xlsx
type ExportService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
}

func NewExportService(q *repository.ScopedQuery) *ExportService {
	return &ExportService{
		orders:    repository.NewOrderRepository(q),
		customers: repository.NewCustomerRepository(q),
	}
}

// Export 导出 [from, to] 之间的订单（日期格式 2024-01-01，含 to 当天），金额以元为单位
func (s *ExportService) Export(ctx context.Context, storeID, from, to string) ([]byte, error) {
	start, end, err := ParseDateRange(from, to)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListForExport(ctx, storeID, start, end)
	if err != nil {
		return nil, err
	}

	customers := make(map[int64]*model.Customer)
	for _, o := range orders {
		if _, ok := customers[o.CustomerID]; ok {
			continue
		}
		c, err := s.customers.GetByID(ctx, storeID, o.CustomerID)
		if err != nil && !IsNotFound(err) {
			return nil, err
		}
		customers[o.CustomerID] = c
	}
	return buildOrderWorkbook(orders, customers)
}

func buildOrderWorkbook(orders []model.Order, customers map[int64]*model.Customer) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := writeHeader(f, ordersSheet, orderExportHeader, headerStyle); err != nil {
		return nil, err
	}
	if err := writeHeader(f, itemsSheet, itemExportHeader, headerStyle); err != nil {
		return nil, err
	}

	itemRow := 2
	for i, o := range orders {
		name, phone := "", ""
		if c := customers[o.CustomerID]; c != nil {
			name, phone = c.Name, c.Phone
		}
		row := []interface{}{
			o.OrderNo,
			o.OrderedAt.Format("2006-01-02 15:04"),
			name,
			phone,
			o.Status,
			o.Currency,
			centsToUnits(o.SubtotalAmount),
			centsToUnits(o.DiscountAmount),
			centsToUnits(o.ShippingAmount),
			centsToUnits(o.GrandTotalAmount),
			o.Notes,
		}
		if err := writeRow(f, ordersSheet, i+2, row); err != nil {
			return nil, err
		}

		for _, it := range o.Items {
			if err := writeRow(f, itemsSheet, itemRow, []interface{}{
				o.OrderNo,
				it.ProductName,
				it.SKU,
				it.Quantity,
				centsToUnits(it.UnitPriceAmount),
				centsToUnits(it.LineTotalAmount),
			}); err != nil {
				return nil, err
			}
			itemRow++
		}
	}

	if err := f.SetColWidth(ordersSheet, "A", "C", 22); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(itemsSheet, "A", "B", 28); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, header []string, style int) error {
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := writeRow(f, sheet, 1, cells); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}
