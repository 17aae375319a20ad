package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	d := Data{
		CustomerName: "Bob",
		OrderNo:      "ORD-1",
		Status:       "Shipped",
		Total:        "USD 12.00",
		StoreName:    "Acme",
		Items:        "- 2 x Widget",
	}
	got := Render("Hi {customer_name}, {order_no} from {store_name} is {status}.\n{items}\nTotal: {total} {unknown}", d)
	assert.Equal(t, "Hi Bob, ORD-1 from Acme is Shipped.\n- 2 x Widget\nTotal: USD 12.00 {unknown}", got)

	// 值里的占位符不会被二次替换
	d.CustomerName = "{order_no}"
	assert.Equal(t, "{order_no}/ORD-1", Render("{customer_name}/{order_no}", d))
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+62 812-3456-7890": "6281234567890",
		"0062 812 3456 789": "628123456789",
		"(555) 010-0199":    "5550100199",
	}
	for in, want := range cases {
		got, err := NormalizePhone(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "abc", "12345", "1234567890123456"} {
		_, err := NormalizePhone(bad)
		assert.ErrorIs(t, err, ErrInvalidPhone, bad)
	}
}

func TestWhatsAppLink(t *testing.T) {
	link, err := WhatsAppLink("+62 812 3456 7890", "Hi Bob & co: total 5+5")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/6281234567890?text=Hi%20Bob%20%26%20co%3A%20total%205%2B5", link)

	link, err = WhatsAppLink("6281234567890", "")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/6281234567890", link)

	_, err = WhatsAppLink("n/a", "x")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}
