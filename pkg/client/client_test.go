package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order_dash_v1/internal/api/dto"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "password123" {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"code": 401, "message": "店铺、用户名或密码错误"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"code": 0,
			"data": dto.LoginResponse{AccessToken: "tok", StoreID: "10000001", StoreSlug: "acme-new", NeedsRedirect: true},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), dto.LoginRequest{Store: "acme", Username: "owner", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.True(t, resp.NeedsRedirect)
	assert.Equal(t, "acme-new", resp.StoreSlug)

	_, err = c.Login(context.Background(), dto.LoginRequest{Store: "acme", Username: "owner", Password: "bad"})
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "密码错误")
}

func TestClient_AuthorizedList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"code": 401, "message": "未提供认证信息"})
			return
		}
		assert.Equal(t, "/api/store/orders", r.URL.Path)
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "7", r.URL.Query().Get("customer_id"))
		assert.False(t, r.URL.Query().Has("keyword"))
		writeJSON(w, http.StatusOK, map[string]interface{}{"code": 0, "data": map[string]interface{}{"total": 3, "list": []interface{}{}}})
	}))
	defer srv.Close()

	req := dto.ListOrdersRequest{Status: "pending", Page: 2, CustomerID: 7}

	_, err := New(srv.URL).Orders(context.Background(), req)
	assert.True(t, IsUnauthorized(err))

	resp, err := New(srv.URL, WithTokenSource(staticToken("tok"))).Orders(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)
}

func TestClient_ResolveNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"code": 404, "message": "店铺不存在"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).ResolveSlug(context.Background(), "ghost")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.False(t, IsUnauthorized(err))
}

func TestClient_Logout_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		writeJSON(w, http.StatusOK, map[string]interface{}{"code": 0, "message": "已注销"})
	}))
	defer srv.Close()

	assert.NoError(t, New(srv.URL, WithTokenSource(staticToken("tok"))).Logout(context.Background(), ""))
}
