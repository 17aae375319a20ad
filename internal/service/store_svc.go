package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
	"order_dash_v1/internal/tenant"
)

// 生成店铺 ID 的最大重试次数
const storeIDAttempts = 5

// ==================== StoreService 店铺管理（平台管理员） ====================

// StoreService 店铺的创建、改名、启停
type StoreService struct {
	db     *gorm.DB
	q      *repository.ScopedQuery
	stores repository.StoreRepository
	log    *zap.Logger
}

// NewStoreService 创建店铺服务
func NewStoreService(db *gorm.DB, q *repository.ScopedQuery, stores repository.StoreRepository, log *zap.Logger) *StoreService {
	return &StoreService{db: db, q: q, stores: stores, log: log.Named("store")}
}

// Create 创建店铺：店铺、默认订单状态、默认设置、第一个管理员在同一事务中写入
func (s *StoreService) Create(ctx context.Context, req *dto.CreateStoreRequest) (*dto.CreateStoreResponse, error) {
	slug, err := NormalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}
	owner, err := s.stores.SlugOwner(ctx, slug)
	if err != nil {
		return nil, err
	}
	if owner != "" {
		return nil, ErrSlugTaken
	}

	storeID, err := s.allocateStoreID(ctx)
	if err != nil {
		return nil, err
	}

	hashed, err := HashPassword(req.AdminPassword)
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "USD"
	}

	store := &model.Store{
		StoreID:  storeID,
		Name:     req.Name,
		Slug:     slug,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		IsActive: true,
	}
	admin := &model.StoreUser{
		Username: req.AdminUsername,
		Password: hashed,
		FullName: req.AdminFullName,
		Role:     model.RoleAdmin,
		IsActive: true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := s.q.WithTx(tx)
		if err := repository.NewStoreRepository(tx).Create(ctx, store); err != nil {
			return err
		}
		if err := repository.NewOrderStatusRepository(scoped).SeedDefaults(ctx, storeID); err != nil {
			return err
		}
		if err := repository.NewStoreSettingRepository(scoped).Upsert(ctx, storeID, &model.StoreSetting{
			Currency:         currency,
			BusinessName:     req.Name,
			Phone:            req.Phone,
			Address:          req.Address,
			WhatsAppTemplate: model.DefaultWhatsAppTemplate,
		}); err != nil {
			return err
		}
		return repository.NewStoreUserRepository(scoped).Create(ctx, storeID, admin)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("创建店铺", zap.String("store_id", storeID), zap.String("slug", slug), zap.String("admin", admin.Username))
	return &dto.CreateStoreResponse{
		Store: toStoreInfo(store),
		Admin: toUserInfo(admin),
	}, nil
}

func (s *StoreService) allocateStoreID(ctx context.Context) (string, error) {
	for i := 0; i < storeIDAttempts; i++ {
		id, err := newStoreID()
		if err != nil {
			return "", err
		}
		exists, err := s.stores.ExistsID(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", ErrStoreIDFull
}

// Get 店铺详情（含历史 slug）
func (s *StoreService) Get(ctx context.Context, storeID string) (*dto.StoreInfo, error) {
	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return toStoreInfo(store), nil
}

// List 店铺列表
func (s *StoreService) List(ctx context.Context, req *dto.StoreListRequest) (*dto.StoreListResponse, error) {
	stores, total, err := s.stores.List(ctx, repository.StoreFilter{
		Keyword:  req.Keyword,
		IsActive: req.IsActive,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, err
	}
	list := make([]*dto.StoreInfo, 0, len(stores))
	for i := range stores {
		list = append(list, toStoreInfo(&stores[i]))
	}
	return &dto.StoreListResponse{Total: total, List: list}, nil
}

// Update 修改店铺基本信息
func (s *StoreService) Update(ctx context.Context, storeID string, req *dto.UpdateStoreRequest) (*dto.StoreInfo, error) {
	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if len(fields) > 0 {
		if err := s.stores.UpdateFields(ctx, storeID, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, storeID)
}

// Rename 修改 slug
// 其他店铺的当前或历史 slug 不可用；改回自己的历史 slug 是允许的
func (s *StoreService) Rename(ctx context.Context, storeID, rawSlug string) (*dto.StoreInfo, error) {
	slug, err := NormalizeSlug(rawSlug)
	if err != nil {
		return nil, err
	}
	owner, err := s.stores.SlugOwner(ctx, slug)
	if err != nil {
		return nil, err
	}
	if owner != "" && owner != storeID {
		return nil, ErrSlugTaken
	}
	if err := s.stores.Rename(ctx, storeID, slug); err != nil {
		return nil, err
	}
	s.log.Info("店铺改名", zap.String("store_id", storeID), zap.String("slug", slug))
	return s.Get(ctx, storeID)
}

// SetActive 启用/停用店铺；停用后 slug 不再解析，成员无法登录
func (s *StoreService) SetActive(ctx context.Context, storeID string, active bool) (*dto.StoreInfo, error) {
	if err := s.stores.SetActive(ctx, storeID, active); err != nil {
		return nil, err
	}
	s.log.Info("店铺状态变更", zap.String("store_id", storeID), zap.Bool("is_active", active))
	return s.Get(ctx, storeID)
}

// IsActive 供 TenantContext 中间件使用，店铺不存在返回 tenant.ErrStoreNotFound
func (s *StoreService) IsActive(ctx context.Context, storeID string) (bool, error) {
	active, err := s.stores.IsActive(ctx, storeID)
	if err != nil {
		if IsNotFound(err) {
			return false, tenant.ErrStoreNotFound
		}
		return false, err
	}
	return active, nil
}

func toStoreInfo(store *model.Store) *dto.StoreInfo {
	history := make([]string, 0, len(store.SlugHistory))
	for _, h := range store.SlugHistory {
		history = append(history, h.Slug)
	}
	return &dto.StoreInfo{
		StoreID:     store.StoreID,
		Name:        store.Name,
		Slug:        store.Slug,
		Phone:       store.Phone,
		Email:       store.Email,
		Address:     store.Address,
		IsActive:    store.IsActive,
		SlugHistory: history,
		CreatedAt:   store.CreatedAt,
	}
}
