package service

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/middleware"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
	"order_dash_v1/internal/tenant"
	"order_dash_v1/pkg/kv"
)

func init() {
	bcryptCost = bcrypt.MinCost
}

// ==================== 测试模型 ====================

// testProduct sqlite 不支持 text[]，tags 用 text 存储
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

// ==================== 测试辅助 ====================

type testEnv struct {
	db     *gorm.DB
	q      *repository.ScopedQuery
	stores repository.StoreRepository
	jwt    *middleware.JWTManager
	log    *zap.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: 每个连接是独立的库
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Store{}, &model.StoreSlugHistory{}, &model.StoreUser{}, &model.PlatformAdmin{},
		&model.Customer{}, &testProduct{}, &model.Order{}, &model.OrderItem{},
		&model.OrderStatus{}, &model.StoreSetting{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	q, err := repository.NewScopedQuery(db, repository.DefaultScopedModels()...)
	require.NoError(t, err)

	jwt := middleware.NewJWTManager(middleware.JWTConfig{
		SecretKey:       "test-secret-key-0123456789",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "oms-test",
	}, kv.NewMemoryKV())

	return &testEnv{db: db, q: q, stores: repository.NewStoreRepository(db), jwt: jwt, log: zap.NewNop()}
}

func (e *testEnv) storeService() *StoreService {
	return NewStoreService(e.db, e.q, e.stores, e.log)
}

func (e *testEnv) userService() *StoreUserService {
	return NewStoreUserService(repository.NewStoreUserRepository(e.q), e.log)
}

func (e *testEnv) authService() *AuthService {
	return NewAuthService(
		NewSlugResolver(e.stores),
		e.stores,
		repository.NewStoreUserRepository(e.q),
		repository.NewPlatformAdminRepository(e.db),
		e.jwt,
		e.log,
	)
}

// createStore 创建店铺，管理员账号 owner / password123
func (e *testEnv) createStore(t *testing.T, slug string) *dto.CreateStoreResponse {
	resp, err := e.storeService().Create(context.Background(), &dto.CreateStoreRequest{
		Name:          "Store " + slug,
		Slug:          slug,
		Phone:         "+62 811 000 000",
		AdminUsername: "owner",
		AdminPassword: "password123",
		AdminFullName: "Owner",
	})
	require.NoError(t, err)
	return resp
}

// ==================== 测试用例 ====================

func TestStoreService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp := env.createStore(t, "Acme-Shop")
	assert.True(t, tenant.IsStoreID(resp.Store.StoreID))
	assert.Equal(t, "acme-shop", resp.Store.Slug)
	assert.True(t, resp.Store.IsActive)
	assert.Equal(t, "admin", resp.Admin.Role)
	assert.Equal(t, resp.Store.StoreID, resp.Admin.StoreID)

	storeID := resp.Store.StoreID

	// 默认订单状态
	statuses, err := repository.NewOrderStatusRepository(env.q).List(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, statuses, len(model.DefaultOrderStatuses))
	def, err := repository.NewOrderStatusRepository(env.q).GetDefault(ctx, storeID)
	require.NoError(t, err)
	assert.Equal(t, "pending", def.Code)

	// 默认设置已落库
	setting, err := repository.NewStoreSettingRepository(env.q).Get(ctx, storeID)
	require.NoError(t, err)
	assert.NotZero(t, setting.ID)
	assert.Equal(t, "USD", setting.Currency)
	assert.Equal(t, "Store Acme-Shop", setting.BusinessName)

	// 密码只存哈希
	user, err := repository.NewStoreUserRepository(env.q).GetByUsername(ctx, storeID, "owner")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, CheckPassword(user.Password, "password123"))
}

func TestStoreService_Create_SlugRules(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()

	first := env.createStore(t, "acme")

	req := &dto.CreateStoreRequest{Name: "x", AdminUsername: "owner", AdminPassword: "password123"}

	req.Slug = "ACME"
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrSlugTaken)

	for _, bad := range []string{"-acme", "acme-", "ac--me", "ac me", "12345678", "ä"} {
		req.Slug = bad
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidSlug, bad)
	}

	// 历史 slug 仍为原店铺保留
	_, err = svc.Rename(ctx, first.Store.StoreID, "acme-new")
	require.NoError(t, err)
	req.Slug = "acme"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestStoreService_Rename(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()

	a := env.createStore(t, "alpha")
	b := env.createStore(t, "beta")

	info, err := svc.Rename(ctx, a.Store.StoreID, "alpha-2")
	require.NoError(t, err)
	assert.Equal(t, "alpha-2", info.Slug)
	assert.Equal(t, []string{"alpha"}, info.SlugHistory)

	// 其他店铺的当前 / 历史 slug 都不可用
	_, err = svc.Rename(ctx, b.Store.StoreID, "alpha-2")
	assert.ErrorIs(t, err, ErrSlugTaken)
	_, err = svc.Rename(ctx, b.Store.StoreID, "alpha")
	assert.ErrorIs(t, err, ErrSlugTaken)

	// 改回自己的历史 slug
	info, err = svc.Rename(ctx, a.Store.StoreID, "alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", info.Slug)
	assert.Equal(t, []string{"alpha-2"}, info.SlugHistory)
}

func TestStoreService_SetActive(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	resolver := NewSlugResolver(env.stores)
	ctx := context.Background()

	resp := env.createStore(t, "acme")
	storeID := resp.Store.StoreID

	info, err := svc.SetActive(ctx, storeID, false)
	require.NoError(t, err)
	assert.False(t, info.IsActive)

	_, err = resolver.Resolve(ctx, "acme")
	assert.ErrorIs(t, err, tenant.ErrStoreNotFound)
	_, err = resolver.ResolveIdentifier(ctx, storeID)
	assert.ErrorIs(t, err, tenant.ErrStoreNotFound)

	active, err := env.stores.IsActive(ctx, storeID)
	require.NoError(t, err)
	assert.False(t, active)

	_, err = svc.SetActive(ctx, storeID, true)
	require.NoError(t, err)
	res, err := resolver.Resolve(ctx, "ACME")
	require.NoError(t, err)
	assert.Equal(t, storeID, res.StoreID)

	_, err = svc.SetActive(ctx, "99999999", true)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStoreService_UpdateAndList(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()

	a := env.createStore(t, "alpha")
	env.createStore(t, "beta")

	name := "Alpha Traders"
	info, err := svc.Update(ctx, a.Store.StoreID, &dto.UpdateStoreRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alpha Traders", info.Name)

	list, err := svc.List(ctx, &dto.StoreListRequest{Keyword: "Traders"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)

	list, err = svc.List(ctx, &dto.StoreListRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
}

func TestNormalizeSlug(t *testing.T) {
	got, err := NormalizeSlug("  My-Shop1 ")
	require.NoError(t, err)
	assert.Equal(t, "my-shop1", got)

	_, err = NormalizeSlug("")
	assert.ErrorIs(t, err, ErrInvalidSlug)

	long := "a"
	for len(long) < 65 {
		long += "b"
	}
	_, err = NormalizeSlug(long)
	assert.ErrorIs(t, err, ErrInvalidSlug)
}

func TestNewStoreID(t *testing.T) {
	for i := 0; i < 50; i++ {
		id, err := newStoreID()
		require.NoError(t, err)
		assert.True(t, tenant.IsStoreID(id), id)
		assert.NotEqual(t, byte('0'), id[0])
	}
}

func TestStoreService_IsActive(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()

	storeID := env.createStore(t, "acme").Store.StoreID
	active, err := svc.IsActive(ctx, storeID)
	require.NoError(t, err)
	assert.True(t, active)

	_, err = svc.IsActive(ctx, "99999999")
	assert.ErrorIs(t, err, tenant.ErrStoreNotFound)
}
