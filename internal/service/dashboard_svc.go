package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
)

// DashboardService 仪表盘统计，各项计数并发查询
type DashboardService struct {
	q        *repository.ScopedQuery
	orders   repository.OrderRepository
	statuses repository.OrderStatusRepository
	settings repository.StoreSettingRepository
}

func NewDashboardService(q *repository.ScopedQuery) *DashboardService {
	return &DashboardService{
		q:        q,
		orders:   repository.NewOrderRepository(q),
		statuses: repository.NewOrderStatusRepository(q),
		settings: repository.NewStoreSettingRepository(q),
	}
}

// Get 任意一项失败整体失败
func (s *DashboardService) Get(ctx context.Context, storeID string) (*dto.DashboardResponse, error) {
	var resp dto.DashboardResponse
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		resp.Customers, err = s.q.Count(gctx, model.Customer{}.TableName(), storeID)
		return err
	})
	g.Go(func() (err error) {
		resp.Products, err = s.q.Count(gctx, model.Product{}.TableName(), storeID)
		return err
	})
	g.Go(func() (err error) {
		resp.Orders, err = s.q.Count(gctx, model.Order{}.TableName(), storeID)
		return err
	})
	g.Go(func() (err error) {
		resp.TotalSales, err = s.orders.SumGrandTotal(gctx, storeID)
		return err
	})
	g.Go(func() error {
		st, err := s.statuses.GetDefault(gctx, storeID)
		if err != nil {
			if IsNotFound(err) {
				return nil
			}
			return err
		}
		resp.PendingOrders, err = s.orders.CountByStatus(gctx, storeID, st.Code)
		return err
	})
	g.Go(func() error {
		setting, err := s.settings.Get(gctx, storeID)
		if err != nil {
			return err
		}
		resp.Currency = setting.Currency
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &resp, nil
}
