// Package message 订单通知消息模板
package message

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidPhone 电话号码中没有足够的数字
var ErrInvalidPhone = errors.New("无效的电话号码")

// Data 模板占位符对应的值
type Data struct {
	CustomerName string
	OrderNo      string
	Status       string
	Total        string
	StoreName    string
	Items        string
}

// Placeholders 支持的占位符
var Placeholders = []string{
	"{customer_name}", "{order_no}", "{status}", "{total}", "{store_name}", "{items}",
}

// Render 替换模板中的占位符，未知占位符原样保留
func Render(tmpl string, d Data) string {
	r := strings.NewReplacer(
		"{customer_name}", d.CustomerName,
		"{order_no}", d.OrderNo,
		"{status}", d.Status,
		"{total}", d.Total,
		"{store_name}", d.StoreName,
		"{items}", d.Items,
	)
	return r.Replace(tmpl)
}

// NormalizePhone 只保留数字，去掉国际前缀 00
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimPrefix(b.String(), "00")
	if len(digits) < 7 || len(digits) > 15 {
		return "", ErrInvalidPhone
	}
	return digits, nil
}

// WhatsAppLink 生成 https://wa.me/<digits>?text=<escaped>
func WhatsAppLink(phone, text string) (string, error) {
	digits, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}
	link := "https://wa.me/" + digits
	if text != "" {
		link += "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	}
	return link, nil
}
