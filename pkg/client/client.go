// Package client 管理后台 HTTP API 的 Go 客户端，供 omsctl 使用
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/model"
)

// TokenSource 提供当前 access token，返回空字符串表示匿名请求
type TokenSource interface {
	Token() string
}

// APIError 服务端返回的非 2xx 响应
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// IsUnauthorized token 失效或未登录
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client API 客户端
type Client struct {
	http   *resty.Client
	tokens TokenSource
}

// Option 客户端选项
type Option func(*Client)

// WithTokenSource 请求时附带 Bearer token
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithTimeout 覆盖默认超时
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithDebug 打印请求和响应
func WithDebug(debug bool) Option {
	return func(c *Client) { c.http.SetDebug(debug) }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15*time.Second).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", "omsctl/1.0"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, query map[string]string, out interface{}) error {
	var env envelope
	req := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env)
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.SetAuthToken(tok)
		}
	}
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("请求 %s 失败: %w", path, err)
	}
	if resp.IsError() {
		return &APIError{Status: resp.StatusCode(), Code: env.Code, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("解析 %s 响应失败: %w", path, err)
		}
	}
	return nil
}

// ==================== 认证 ====================

// Login 店铺成员登录
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout 注销当前 token，refreshToken 可为空
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", dto.LogoutRequest{RefreshToken: refreshToken}, nil, nil)
}

// Me 当前登录信息
func (c *Client) Me(ctx context.Context) (*dto.MeResponse, error) {
	var resp dto.MeResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResolveSlug 解析店铺 slug，不需要登录
func (c *Client) ResolveSlug(ctx context.Context, slug string) (*model.SlugResolution, error) {
	var resp model.SlugResolution
	if err := c.do(ctx, http.MethodGet, "/api/stores/resolve/"+slug, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ==================== 业务数据 ====================

// Customers 客户列表
func (c *Client) Customers(ctx context.Context, req dto.CustomerListRequest) (*dto.CustomerListResponse, error) {
	query := pageQuery(req.Page, req.PageSize)
	if req.Keyword != "" {
		query["keyword"] = req.Keyword
	}
	var resp dto.CustomerListResponse
	if err := c.do(ctx, http.MethodGet, "/api/store/customers", nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Orders 订单列表
func (c *Client) Orders(ctx context.Context, req dto.ListOrdersRequest) (*dto.ListOrdersResponse, error) {
	query := pageQuery(req.Page, req.PageSize)
	for k, v := range map[string]string{
		"keyword":    req.Keyword,
		"status":     req.Status,
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
	} {
		if v != "" {
			query[k] = v
		}
	}
	if req.CustomerID > 0 {
		query["customer_id"] = strconv.FormatInt(req.CustomerID, 10)
	}
	var resp dto.ListOrdersResponse
	if err := c.do(ctx, http.MethodGet, "/api/store/orders", nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func pageQuery(page, size int) map[string]string {
	q := make(map[string]string)
	if page > 0 {
		q["page"] = strconv.Itoa(page)
	}
	if size > 0 {
		q["page_size"] = strconv.Itoa(size)
	}
	return q
}
