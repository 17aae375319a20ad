package service

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
)

type orderFixture struct {
	env      *testEnv
	storeID  string
	customer *model.Customer
	coffee   *model.Product
	tea      *model.Product
	orders   *OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	env := newTestEnv(t)
	ctx := context.Background()
	storeID := env.createStore(t, "acme").Store.StoreID

	customers := NewCustomerService(repository.NewCustomerRepository(env.q))
	products := NewProductService(repository.NewProductRepository(env.q))

	c, err := customers.Create(ctx, storeID, &dto.CreateCustomerRequest{Name: "Budi", Phone: "+62 812-3456-7890"})
	require.NoError(t, err)
	coffee, err := products.Create(ctx, storeID, &dto.CreateProductRequest{Name: "Coffee", SKU: "C-1", Price: 1250})
	require.NoError(t, err)
	tea, err := products.Create(ctx, storeID, &dto.CreateProductRequest{Name: "Tea", SKU: "T-1", Price: 800})
	require.NoError(t, err)

	return &orderFixture{
		env:      env,
		storeID:  storeID,
		customer: c,
		coffee:   coffee,
		tea:      tea,
		orders:   NewOrderService(env.q, env.log),
	}
}

func (f *orderFixture) create(t *testing.T) *model.Order {
	o, err := f.orders.Create(context.Background(), f.storeID, &dto.CreateOrderRequest{
		CustomerID: f.customer.ID,
		Items: []dto.OrderItemInput{
			{ProductID: f.coffee.ID, Quantity: 2},
			{ProductID: f.tea.ID, Quantity: 1},
		},
		Discount: 300,
		Shipping: 500,
		ShippingAddress: map[string]interface{}{
			"name": "Budi", "line1": "Jl. Merdeka 1", "city": "Jakarta",
		},
	})
	require.NoError(t, err)
	return o
}

func TestOrderService_Create(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	o := f.create(t)
	assert.True(t, strings.HasPrefix(o.OrderNo, "ORD-"+time.Now().Format("20060102")+"-"), o.OrderNo)
	assert.Equal(t, "pending", o.Status)
	assert.Equal(t, "USD", o.Currency)
	assert.Equal(t, int64(3300), o.SubtotalAmount)
	assert.Equal(t, int64(3500), o.GrandTotalAmount)

	got, err := f.orders.Get(ctx, f.storeID, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Coffee", got.Items[0].ProductName)
	assert.Equal(t, int64(1250), got.Items[0].UnitPriceAmount)
	assert.Equal(t, int64(2500), got.Items[0].LineTotalAmount)
	assert.Equal(t, f.storeID, got.Items[0].StoreID)
	assert.Equal(t, "Jakarta", got.GetShippingAddressField("city"))

	// 商品改价不影响已下单的快照
	price := int64(9999)
	_, err = NewProductService(repository.NewProductRepository(f.env.q)).Update(ctx, f.storeID, f.coffee.ID, &dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	got, err = f.orders.Get(ctx, f.storeID, o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), got.Items[0].UnitPriceAmount)
}

func TestOrderService_Create_Validation(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	other := f.env.createStore(t, "other").Store.StoreID
	foreign, err := NewProductService(repository.NewProductRepository(f.env.q)).Create(ctx, other, &dto.CreateProductRequest{Name: "Foreign"})
	require.NoError(t, err)

	item := []dto.OrderItemInput{{ProductID: f.coffee.ID, Quantity: 1}}

	_, err = f.orders.Create(ctx, other, &dto.CreateOrderRequest{CustomerID: f.customer.ID, Items: []dto.OrderItemInput{{ProductID: foreign.ID, Quantity: 1}}})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = f.orders.Create(ctx, f.storeID, &dto.CreateOrderRequest{CustomerID: f.customer.ID, Items: []dto.OrderItemInput{{ProductID: foreign.ID, Quantity: 1}}})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = f.orders.Create(ctx, f.storeID, &dto.CreateOrderRequest{CustomerID: f.customer.ID, Items: item, Status: "teleported"})
	assert.ErrorIs(t, err, ErrUnknownStatus)

	// 下架商品不能下单
	off := false
	_, err = NewProductService(repository.NewProductRepository(f.env.q)).Update(ctx, f.storeID, f.tea.ID, &dto.UpdateProductRequest{IsActive: &off})
	require.NoError(t, err)
	_, err = f.orders.Create(ctx, f.storeID, &dto.CreateOrderRequest{CustomerID: f.customer.ID, Items: []dto.OrderItemInput{{ProductID: f.tea.ID, Quantity: 1}}})
	assert.ErrorIs(t, err, ErrProductNotFound)

	// 指定单价和币种
	price := int64(100)
	o, err := f.orders.Create(ctx, f.storeID, &dto.CreateOrderRequest{
		CustomerID: f.customer.ID,
		Items:      []dto.OrderItemInput{{ProductID: f.coffee.ID, Quantity: 3, UnitPrice: &price}},
		Status:     "confirmed",
		Currency:   "idr",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(300), o.GrandTotalAmount)
	assert.Equal(t, "IDR", o.Currency)
	assert.Equal(t, "confirmed", o.Status)
}

func TestOrderService_AmountLimits(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	huge := int64(math.MaxInt64 / 2)
	_, err := f.orders.Create(ctx, f.storeID, &dto.CreateOrderRequest{
		CustomerID: f.customer.ID,
		Items:      []dto.OrderItemInput{{ProductID: f.coffee.ID, Quantity: 3, UnitPrice: &huge}},
	})
	assert.ErrorIs(t, err, model.ErrAmountOutOfRange)

	list, err := f.orders.List(ctx, f.storeID, &dto.ListOrdersRequest{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(0), list.Total)

	o := f.create(t)
	_, err = f.orders.Update(ctx, f.storeID, o.ID, &dto.UpdateOrderRequest{Shipping: &huge})
	assert.ErrorIs(t, err, model.ErrAmountOutOfRange)

	got, err := f.orders.Get(ctx, f.storeID, o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), got.GrandTotalAmount)
}

func TestOrderService_Update(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	o := f.create(t)

	// 只改折扣：按原明细重算
	discount := int64(0)
	updated, err := f.orders.Update(ctx, f.storeID, o.ID, &dto.UpdateOrderRequest{Discount: &discount})
	require.NoError(t, err)
	assert.Equal(t, int64(3800), updated.GrandTotalAmount)
	assert.Len(t, updated.Items, 2)

	// 替换明细
	notes := "leave at door"
	updated, err = f.orders.Update(ctx, f.storeID, o.ID, &dto.UpdateOrderRequest{
		Items: []dto.OrderItemInput{{ProductID: f.tea.ID, Quantity: 5}},
		Notes: &notes,
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Tea", updated.Items[0].ProductName)
	assert.Equal(t, int64(4000), updated.SubtotalAmount)
	assert.Equal(t, int64(4500), updated.GrandTotalAmount)
	assert.Equal(t, "leave at door", updated.Notes)

	bogus := int64(9999)
	_, err = f.orders.Update(ctx, f.storeID, o.ID, &dto.UpdateOrderRequest{CustomerID: &bogus})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	// 其他店铺看不到
	other := f.env.createStore(t, "other").Store.StoreID
	_, err = f.orders.Update(ctx, other, o.ID, &dto.UpdateOrderRequest{Notes: &notes})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderService_StatusAndDelete(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	o := f.create(t)

	_, err := f.orders.UpdateStatus(ctx, f.storeID, o.ID, "lost")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	updated, err := f.orders.UpdateStatus(ctx, f.storeID, o.ID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, "shipped", updated.Status)

	require.NoError(t, f.orders.Delete(ctx, f.storeID, o.ID))
	_, err = f.orders.Get(ctx, f.storeID, o.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, f.orders.Delete(ctx, f.storeID, o.ID), repository.ErrNotFound)
}

func TestOrderService_List(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	_, err := f.orders.Create(ctx, f.storeID, &dto.CreateOrderRequest{
		CustomerID: f.customer.ID,
		Items:      []dto.OrderItemInput{{ProductID: f.coffee.ID, Quantity: 1}},
		OrderedAt:  &day,
	})
	require.NoError(t, err)
	f.create(t)

	all, err := f.orders.List(ctx, f.storeID, &dto.ListOrdersRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)

	sameDay, err := f.orders.List(ctx, f.storeID, &dto.ListOrdersRequest{StartDate: "2024-03-10", EndDate: "2024-03-10"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), sameDay.Total)

	_, err = f.orders.List(ctx, f.storeID, &dto.ListOrdersRequest{StartDate: "2024-03-11", EndDate: "2024-03-10"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	_, err = f.orders.List(ctx, f.storeID, &dto.ListOrdersRequest{StartDate: "10/03/2024"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
