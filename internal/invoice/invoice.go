// Package invoice 把订单数据渲染成 HTML 发票
// Render 是纯函数：相同的数据和模板总是得到相同的输出，不做任何 I/O
package invoice

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Party 店铺或客户
type Party struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Line 发票行，金额已格式化
type Line struct {
	Name      string
	SKU       string
	Quantity  int
	UnitPrice string
	LineTotal string
}

// Data 渲染发票所需的全部数据
type Data struct {
	Store     Party
	Customer  Party
	OrderNo   string
	OrderedAt time.Time
	Status    string
	Currency  string

	Lines    []Line
	Subtotal string
	Discount string // 为空不显示
	Shipping string // 为空不显示
	Total    string

	ShippingAddress []string
	Notes           string // Markdown
}

// view 模板实际拿到的数据
type view struct {
	Data
	NotesHTML template.HTML
}

var md = goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough))

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"lines": func(s string) []string {
		return strings.Split(strings.TrimSpace(s), "\n")
	},
}

// ParseTemplate 校验自定义模板
func ParseTemplate(tmpl string) (*template.Template, error) {
	if strings.TrimSpace(tmpl) == "" {
		tmpl = DefaultTemplate
	}
	t, err := template.New("invoice").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("发票模板解析失败: %w", err)
	}
	return t, nil
}

// Render 渲染发票；tmpl 为空时使用 DefaultTemplate
// 备注按 Markdown 渲染，原始 HTML 不会输出
func Render(data Data, tmpl string) (string, error) {
	t, err := ParseTemplate(tmpl)
	if err != nil {
		return "", err
	}

	v := view{Data: data}
	if strings.TrimSpace(data.Notes) != "" {
		var notes bytes.Buffer
		if err := md.Convert([]byte(data.Notes), &notes); err != nil {
			return "", fmt.Errorf("发票备注渲染失败: %w", err)
		}
		v.NotesHTML = template.HTML(notes.String())
	}

	var out bytes.Buffer
	if err := t.Execute(&out, v); err != nil {
		return "", fmt.Errorf("发票渲染失败: %w", err)
	}
	return out.String(), nil
}

// DefaultTemplate 内置发票模板
const DefaultTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.OrderNo}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; color: #222; margin: 32px; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; }
th, td { padding: 6px 8px; border-bottom: 1px solid #ddd; text-align: left; }
td.num, th.num { text-align: right; }
.totals td { border: none; }
.muted { color: #777; }
</style>
</head>
<body>
<header>
  <h1>{{.Store.Name}}</h1>
  {{if .Store.Address}}<div>{{.Store.Address}}</div>{{end}}
  {{if .Store.Phone}}<div>{{.Store.Phone}}</div>{{end}}
  {{if .Store.Email}}<div>{{.Store.Email}}</div>{{end}}
</header>

<section>
  <h2>Invoice {{.OrderNo}}</h2>
  <div class="muted">Date: {{date .OrderedAt}} &middot; Status: {{.Status}}</div>
</section>

<section>
  <h3>Bill to</h3>
  <div>{{.Customer.Name}}</div>
  {{if .Customer.Phone}}<div>{{.Customer.Phone}}</div>{{end}}
  {{if .Customer.Email}}<div>{{.Customer.Email}}</div>{{end}}
  {{if .ShippingAddress}}<h3>Ship to</h3>{{range .ShippingAddress}}<div>{{.}}</div>{{end}}{{end}}
</section>

<table>
  <thead>
    <tr><th>Item</th><th>SKU</th><th class="num">Qty</th><th class="num">Unit price</th><th class="num">Amount</th></tr>
  </thead>
  <tbody>
  {{range .Lines}}
    <tr><td>{{.Name}}</td><td>{{.SKU}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.UnitPrice}}</td><td class="num">{{.LineTotal}}</td></tr>
  {{end}}
  </tbody>
</table>

<table class="totals">
  <tr><td class="num">Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
  {{if .Discount}}<tr><td class="num">Discount</td><td class="num">-{{.Discount}}</td></tr>{{end}}
  {{if .Shipping}}<tr><td class="num">Shipping</td><td class="num">{{.Shipping}}</td></tr>{{end}}
  <tr><td class="num"><strong>Total</strong></td><td class="num"><strong>{{.Total}}</strong></td></tr>
</table>

{{if .NotesHTML}}<section class="notes">{{.NotesHTML}}</section>{{end}}
</body>
</html>
`
