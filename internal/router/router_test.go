package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/controller"
	"order_dash_v1/internal/middleware"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
	"order_dash_v1/internal/service"
	"order_dash_v1/pkg/kv"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testProduct sqlite 不支持 text[]
type testProduct struct {
	model.BaseModel
	model.AuditMixin
	model.StoreOwned
	Name        string
	SKU         string
	Description string
	PriceAmount int64
	Stock       int
	Tags        pq.StringArray `gorm:"type:text"`
	IsActive    bool           `gorm:"default:true"`
}

func (testProduct) TableName() string { return "products" }

// ==================== 测试环境 ====================

type testServer struct {
	t        *testing.T
	engine   *gin.Engine
	db       *gorm.DB
	stores   *service.StoreService
	users    *service.StoreUserService
	auth     *service.AuthService
	throttle *middleware.LoginThrottle
}

func newTestServer(t *testing.T) *testServer {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Store{}, &model.StoreSlugHistory{}, &model.StoreUser{}, &model.PlatformAdmin{},
		&model.Customer{}, &testProduct{}, &model.Order{}, &model.OrderItem{},
		&model.OrderStatus{}, &model.StoreSetting{},
	))
	require.NoError(t, middleware.RegisterAuditCallbacks(db))

	q, err := repository.NewScopedQuery(db, repository.DefaultScopedModels()...)
	require.NoError(t, err)

	log := zap.NewNop()
	jwt := middleware.NewJWTManager(middleware.JWTConfig{
		SecretKey:       "test-secret-key-0123456789",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "oms-test",
	}, kv.NewMemoryKV())

	storeRepo := repository.NewStoreRepository(db)
	userRepo := repository.NewStoreUserRepository(q)
	resolver := service.NewSlugResolver(storeRepo)

	storeSvc := service.NewStoreService(db, q, storeRepo, log)
	userSvc := service.NewStoreUserService(userRepo, log)
	authSvc := service.NewAuthService(resolver, storeRepo, userRepo, repository.NewPlatformAdminRepository(db), jwt, log)
	throttle := middleware.NewLoginThrottle(3, time.Minute)

	r := gin.New()
	InitRoutes(r, Deps{
		JWT:           jwt,
		StoreChecker:  storeSvc,
		MemberChecker: userSvc,
		Auth:          controller.NewAuthController(authSvc, resolver, throttle),
		Store:         controller.NewStoreController(storeSvc, userSvc),
		User:          controller.NewUserController(userSvc),
		Customer:      controller.NewCustomerController(service.NewCustomerService(repository.NewCustomerRepository(q))),
		Product:       controller.NewProductController(service.NewProductService(repository.NewProductRepository(q))),
		Order: controller.NewOrderController(
			service.NewOrderService(q, log),
			service.NewInvoiceService(q, storeRepo, nil, log),
			service.NewMessageService(q, storeRepo),
			service.NewExportService(q),
		),
		Setting: controller.NewSettingController(service.NewSettingService(q), service.NewDashboardService(q)),
	})

	return &testServer{t: t, engine: r, db: db, stores: storeSvc, users: userSvc, auth: authSvc, throttle: throttle}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *testServer) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func decode[T any](t *testing.T, env envelope) T {
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v), string(env.Data))
	return v
}

// createStore 管理员 owner / password123
func (s *testServer) createStore(slug string) string {
	resp, err := s.stores.Create(context.Background(), &dto.CreateStoreRequest{
		Name:          "Store " + slug,
		Slug:          slug,
		AdminUsername: "owner",
		AdminPassword: "password123",
	})
	require.NoError(s.t, err)
	return resp.Store.StoreID
}

func (s *testServer) login(store, username, password string) string {
	w, env := s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Store: store, Username: username, Password: password})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.LoginResponse](s.t, env).AccessToken
}

func (s *testServer) addUser(storeID, username, role string) {
	_, err := s.users.Create(context.Background(), storeID, &dto.CreateUserRequest{
		Username: username, Password: "password123", Role: role,
	})
	require.NoError(s.t, err)
}

// ==================== 测试用例 ====================

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)
	storeID := s.createStore("acme")

	// 未登录
	w, _ := s.do(http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// store 可以是 8 位 ID
	w, env := s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Store: storeID, Username: "owner", Password: "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode[dto.LoginResponse](t, env)
	assert.Equal(t, "acme", login.StoreSlug)
	assert.False(t, login.NeedsRedirect)

	w, env = s.do(http.MethodGet, "/api/auth/me", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[dto.MeResponse](t, env)
	assert.Equal(t, storeID, me.StoreID)
	assert.Equal(t, "owner", me.User.Username)

	// 刷新后旧 refresh token 失效
	w, env = s.do(http.MethodPost, "/api/auth/refresh", "", dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code)
	refreshed := decode[dto.RefreshTokenResponse](t, env)
	w, _ = s.do(http.MethodPost, "/api/auth/refresh", "", dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 注销后 access token 不可再用
	w, _ = s.do(http.MethodPost, "/api/auth/logout", refreshed.AccessToken, dto.LogoutRequest{RefreshToken: refreshed.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodGet, "/api/auth/me", refreshed.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_GenericFailureAndThrottle(t *testing.T) {
	s := newTestServer(t)
	s.createStore("acme")

	bad := []dto.LoginRequest{
		{Store: "nope", Username: "owner", Password: "password123"},
		{Store: "acme", Username: "ghost", Password: "password123"},
		{Store: "acme", Username: "owner", Password: "wrong-password"},
	}
	var messages []string
	for _, req := range bad {
		w, env := s.do(http.MethodPost, "/api/auth/login", "", req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		messages = append(messages, env.Message)
	}
	// 不透露失败原因
	assert.Equal(t, messages[1], messages[2])

	// 同一 IP + 店铺连续失败后被限流，正确密码也要等待
	for i := 0; i < 3; i++ {
		s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Store: "acme", Username: "owner", Password: "wrong-password"})
	}
	w, _ := s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Store: "acme", Username: "owner", Password: "password123"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLoginThrottle_SharedAcrossStoreSpellings(t *testing.T) {
	s := newTestServer(t)
	storeID := s.createStore("acme")
	_, err := s.stores.Rename(context.Background(), storeID, "acme-shop")
	require.NoError(t, err)

	for _, store := range []string{"acme-shop", "ACME-SHOP", " Acme-Shop "} {
		w, _ := s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Store: store, Username: "owner", Password: "wrong-password"})
		assert.Equal(t, http.StatusUnauthorized, w.Code, store)
	}

	// 大小写变体、店铺 ID、历史 slug 都指向同一个店铺，共用失败计数
	for _, store := range []string{"aCme-shop", storeID, "acme", "ACME"} {
		w, _ := s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Store: store, Username: "owner", Password: "password123"})
		assert.Equal(t, http.StatusTooManyRequests, w.Code, store)
	}

	// 不存在的店铺按规范化后的名字计数
	for i := 0; i < 3; i++ {
		s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Store: "ghost", Username: "owner", Password: "password123"})
	}
	w, _ := s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Store: "GHOST", Username: "owner", Password: "password123"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestResolveSlug_AfterRename(t *testing.T) {
	s := newTestServer(t)
	storeID := s.createStore("old-name")
	_, err := s.stores.Rename(context.Background(), storeID, "new-name")
	require.NoError(t, err)

	w, env := s.do(http.MethodGet, "/api/stores/resolve/old-name", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[model.SlugResolution](t, env)
	assert.Equal(t, storeID, res.StoreID)
	assert.Equal(t, "new-name", res.CurrentSlug)
	assert.True(t, res.NeedsRedirect)

	w, _ = s.do(http.MethodGet, "/api/stores/resolve/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 历史 slug 登录也提示跳转
	w, env = s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Store: "old-name", Username: "owner", Password: "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode[dto.LoginResponse](t, env)
	assert.True(t, login.NeedsRedirect)
	assert.Equal(t, "new-name", login.StoreSlug)
}

func TestRoles(t *testing.T) {
	s := newTestServer(t)
	storeID := s.createStore("acme")
	s.addUser(storeID, "viewer1", "viewer")
	s.addUser(storeID, "clerk1", "data_entry")

	owner := s.login("acme", "owner", "password123")
	viewer := s.login("acme", "viewer1", "password123")
	clerk := s.login("acme", "clerk1", "password123")

	// viewer 只读
	w, _ := s.do(http.MethodPost, "/api/store/customers", viewer, dto.CreateCustomerRequest{Name: "Budi"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = s.do(http.MethodGet, "/api/store/customers", viewer, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// data_entry 可以新增，不能删除
	w, env := s.do(http.MethodPost, "/api/store/customers", clerk, dto.CreateCustomerRequest{Name: "Budi"})
	require.Equal(t, http.StatusOK, w.Code)
	customer := decode[model.Customer](t, env)
	assert.Equal(t, storeID, customer.StoreID)

	path := fmt.Sprintf("/api/store/customers/%d", customer.ID)
	w, _ = s.do(http.MethodDelete, path, clerk, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 成员管理只对 admin 开放
	w, _ = s.do(http.MethodGet, "/api/store/users", clerk, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodDelete, path, owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodGet, path, owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCrossStoreIsolation(t *testing.T) {
	s := newTestServer(t)
	s.createStore("acme")
	s.createStore("globex")

	acme := s.login("acme", "owner", "password123")
	globex := s.login("globex", "owner", "password123")

	w, env := s.do(http.MethodPost, "/api/store/customers", acme, dto.CreateCustomerRequest{Name: "Budi"})
	require.Equal(t, http.StatusOK, w.Code)
	customer := decode[model.Customer](t, env)
	path := fmt.Sprintf("/api/store/customers/%d", customer.ID)

	w, _ = s.do(http.MethodGet, path, globex, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = s.do(http.MethodPut, path, globex, map[string]string{"name": "Hacked"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = s.do(http.MethodDelete, path, globex, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = s.do(http.MethodGet, "/api/store/customers", globex, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), decode[dto.CustomerListResponse](t, env).Total)

	// 另一家店铺的客户不能用于下单
	w, env = s.do(http.MethodPost, "/api/store/products", globex, dto.CreateProductRequest{Name: "Tea", Price: 800})
	require.Equal(t, http.StatusOK, w.Code)
	product := decode[model.Product](t, env)
	w, _ = s.do(http.MethodPost, "/api/store/orders", globex, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMemberChangesApplyToIssuedTokens(t *testing.T) {
	s := newTestServer(t)
	storeID := s.createStore("acme")
	ctx := context.Background()
	clerk, err := s.users.Create(ctx, storeID, &dto.CreateUserRequest{Username: "clerk1", Password: "password123", Role: "data_entry"})
	require.NoError(t, err)
	temp, err := s.users.Create(ctx, storeID, &dto.CreateUserRequest{Username: "temp1", Password: "password123", Role: "data_entry"})
	require.NoError(t, err)

	owner := s.login("acme", "owner", "password123")
	clerkToken := s.login("acme", "clerk1", "password123")
	tempToken := s.login("acme", "temp1", "password123")

	w, _ := s.do(http.MethodPost, "/api/store/customers", clerkToken, dto.CreateCustomerRequest{Name: "Budi"})
	require.Equal(t, http.StatusOK, w.Code)

	// 降级后同一个 token 只能读
	w, _ = s.do(http.MethodPut, fmt.Sprintf("/api/store/users/%d", clerk.ID), owner, dto.UpdateUserRequest{Role: "viewer"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w, _ = s.do(http.MethodPost, "/api/store/customers", clerkToken, dto.CreateCustomerRequest{Name: "Sari"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = s.do(http.MethodGet, "/api/store/customers", clerkToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 停用
	inactive := false
	w, _ = s.do(http.MethodPut, fmt.Sprintf("/api/store/users/%d", clerk.ID), owner, dto.UpdateUserRequest{IsActive: &inactive})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w, _ = s.do(http.MethodGet, "/api/store/customers", clerkToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 删除
	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/store/users/%d", temp.ID), owner, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w, _ = s.do(http.MethodPost, "/api/store/customers", tempToken, dto.CreateCustomerRequest{Name: "Joko"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderAmountBounds(t *testing.T) {
	s := newTestServer(t)
	s.createStore("acme")
	owner := s.login("acme", "owner", "password123")

	w, env := s.do(http.MethodPost, "/api/store/customers", owner, dto.CreateCustomerRequest{Name: "Budi"})
	require.Equal(t, http.StatusOK, w.Code)
	customer := decode[model.Customer](t, env)
	w, env = s.do(http.MethodPost, "/api/store/products", owner, dto.CreateProductRequest{Name: "Tea", Price: 800})
	require.Equal(t, http.StatusOK, w.Code)
	product := decode[model.Product](t, env)

	w, _ = s.do(http.MethodPost, "/api/store/products", owner, dto.CreateProductRequest{Name: "Gold", Price: model.MaxAmount + 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	huge := int64(4611686018427387903)
	w, _ = s.do(http.MethodPost, "/api/store/orders", owner, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemInput{{ProductID: product.ID, Quantity: 3, UnitPrice: &huge}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPost, "/api/store/orders", owner, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		Shipping:   model.MaxAmount + 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(http.MethodPost, "/api/store/orders", owner, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(1600), decode[model.Order](t, env).GrandTotalAmount)
}

func TestDeactivatedStoreRejectsTokens(t *testing.T) {
	s := newTestServer(t)
	storeID := s.createStore("acme")
	token := s.login("acme", "owner", "password123")

	_, err := s.stores.SetActive(context.Background(), storeID, false)
	require.NoError(t, err)

	w, _ := s.do(http.MethodGet, "/api/store/dashboard", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Store: "acme", Username: "owner", Password: "password123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderDocuments(t *testing.T) {
	s := newTestServer(t)
	s.createStore("acme")
	token := s.login("acme", "owner", "password123")

	_, env := s.do(http.MethodPost, "/api/store/customers", token, dto.CreateCustomerRequest{Name: "Budi", Phone: "0812 3456 7890"})
	customer := decode[model.Customer](t, env)
	_, env = s.do(http.MethodPost, "/api/store/products", token, dto.CreateProductRequest{Name: "Coffee", Price: 1250})
	product := decode[model.Product](t, env)

	w, env := s.do(http.MethodPost, "/api/store/orders", token, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		Shipping:   500,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	order := decode[model.Order](t, env)
	assert.Equal(t, int64(3000), order.GrandTotalAmount)

	w, _ = s.do(http.MethodGet, fmt.Sprintf("/api/store/orders/%d/invoice", order.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), order.OrderNo)

	// 未配置存储
	w, _ = s.do(http.MethodPost, fmt.Sprintf("/api/store/orders/%d/invoice/archive", order.ID), token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w, env = s.do(http.MethodGet, fmt.Sprintf("/api/store/orders/%d/whatsapp", order.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	msg := decode[dto.WhatsAppMessageResponse](t, env)
	assert.Contains(t, msg.Link, "https://wa.me/")
	assert.Contains(t, msg.Message, order.OrderNo)

	w, _ = s.do(http.MethodPut, fmt.Sprintf("/api/store/orders/%d/status", order.ID), token, dto.UpdateOrderStatusRequest{Status: "no-such-status"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	today := time.Now().Format("2006-01-02")
	w, _ = s.do(http.MethodGet, "/api/store/orders/export?from="+today+"&to="+today, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())

	w, env = s.do(http.MethodGet, "/api/store/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decode[dto.DashboardResponse](t, env)
	assert.Equal(t, int64(1), dash.Orders)
	assert.Equal(t, int64(3000), dash.TotalSales)
}

func TestAdminConsole(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	created, err := s.auth.EnsurePlatformAdmin(ctx, "root", "rootpassword")
	require.NoError(t, err)
	require.True(t, created)

	w, env := s.do(http.MethodPost, "/api/admin/login", "", dto.AdminLoginRequest{Username: "root", Password: "rootpassword"})
	require.Equal(t, http.StatusOK, w.Code)
	admin := decode[dto.AdminLoginResponse](t, env).AccessToken

	w, env = s.do(http.MethodPost, "/api/admin/stores", admin, dto.CreateStoreRequest{
		Name: "Acme", Slug: "acme", AdminUsername: "owner", AdminPassword: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	storeID := decode[dto.CreateStoreResponse](t, env).Store.StoreID

	w, _ = s.do(http.MethodPost, "/api/admin/stores", admin, dto.CreateStoreRequest{
		Name: "Acme 2", Slug: "acme", AdminUsername: "owner", AdminPassword: "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = s.do(http.MethodPost, "/api/admin/stores/"+storeID+"/users", admin, dto.CreateUserRequest{
		Username: "clerk1", Password: "password123", Role: "data_entry",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = s.do(http.MethodGet, "/api/admin/stores/"+storeID+"/users", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), decode[dto.UserListResponse](t, env).Total)

	w, _ = s.do(http.MethodPut, "/api/admin/stores/"+storeID+"/slug", admin, dto.RenameStoreRequest{Slug: "acme-new"})
	require.Equal(t, http.StatusOK, w.Code)

	// 平台 token 不能访问店铺接口，店铺 token 不能访问管理接口
	w, _ = s.do(http.MethodGet, "/api/store/dashboard", admin, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	tenantToken := s.login("acme-new", "owner", "password123")
	w, _ = s.do(http.MethodGet, "/api/admin/stores", tenantToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodGet, "/api/admin/stores/99999999", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
