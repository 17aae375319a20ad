package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_TotalOrder(t *testing.T) {
	for i, a := range AllRoles {
		for j, b := range AllRoles {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			assert.Equal(t, want, a.Compare(b), "%s vs %s", a, b)
			assert.Equal(t, i >= j, a.AtLeast(b), "%s AtLeast %s", a, b)
		}
	}
}

func TestRole_Unknown(t *testing.T) {
	unknown := Role("owner")
	assert.False(t, unknown.Valid())
	assert.False(t, unknown.AtLeast(RoleViewer))
	assert.False(t, RoleAdmin.AtLeast(unknown))

	_, err := ParseRole("owner")
	assert.Error(t, err)

	r, err := ParseRole("data_entry")
	assert.NoError(t, err)
	assert.Equal(t, RoleDataEntry, r)
}

func TestOrder_Recalculate(t *testing.T) {
	o := &Order{
		DiscountAmount: 500,
		ShippingAmount: 1000,
		Items: []OrderItem{
			{UnitPriceAmount: 2500, Quantity: 2},
			{UnitPriceAmount: 199, Quantity: 3},
		},
	}
	require.NoError(t, o.Recalculate())

	assert.Equal(t, int64(5000), o.Items[0].LineTotalAmount)
	assert.Equal(t, int64(597), o.Items[1].LineTotalAmount)
	assert.Equal(t, int64(5597), o.SubtotalAmount)
	assert.Equal(t, int64(6097), o.GrandTotalAmount)

	// 折扣大于小计时不出现负数
	o.DiscountAmount = 100000
	require.NoError(t, o.Recalculate())
	assert.Equal(t, int64(0), o.GrandTotalAmount)
}

func TestOrder_Recalculate_OutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		order *Order
	}{
		{"unit price overflow", &Order{Items: []OrderItem{{UnitPriceAmount: math.MaxInt64 / 2, Quantity: 3}}}},
		{"unit price", &Order{Items: []OrderItem{{UnitPriceAmount: MaxAmount + 1, Quantity: 1}}}},
		{"quantity", &Order{Items: []OrderItem{{UnitPriceAmount: 1, Quantity: MaxQuantity + 1}}}},
		{"subtotal", &Order{Items: []OrderItem{{UnitPriceAmount: MaxAmount, Quantity: 2}}}},
		{"shipping", &Order{ShippingAmount: math.MaxInt64, Items: []OrderItem{{UnitPriceAmount: 1, Quantity: 1}}}},
		{"negative discount", &Order{DiscountAmount: -1, Items: []OrderItem{{UnitPriceAmount: 1, Quantity: 1}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.order.GrandTotalAmount = 42
			assert.ErrorIs(t, tc.order.Recalculate(), ErrAmountOutOfRange)
			assert.Equal(t, int64(42), tc.order.GrandTotalAmount)
		})
	}

	// 上限本身是合法的
	o := &Order{ShippingAmount: MaxAmount, Items: []OrderItem{{UnitPriceAmount: MaxAmount, Quantity: 1}}}
	require.NoError(t, o.Recalculate())
	assert.Equal(t, 2*MaxAmount, o.GrandTotalAmount)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "USD 12.34", FormatAmount(1234, "usd"))
	assert.Equal(t, "0.05", FormatAmount(5, ""))
	assert.Equal(t, "EUR -1.50", FormatAmount(-150, "EUR"))
	assert.Equal(t, "IDR 1000.00", FormatAmount(100000, "IDR"))
}
