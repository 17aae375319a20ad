package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/tenant"
)

// StoreSettingRepository 店铺设置仓储接口
type StoreSettingRepository interface {
	Get(ctx context.Context, storeID string) (*model.StoreSetting, error)
	Upsert(ctx context.Context, storeID string, s *model.StoreSetting) error
}

type storeSettingRepo struct {
	q *ScopedQuery
}

// NewStoreSettingRepository 创建店铺设置仓储
func NewStoreSettingRepository(q *ScopedQuery) StoreSettingRepository {
	return &storeSettingRepo{q: q}
}

// Get 读取店铺设置，不存在时返回默认值（不落库）
func (r *storeSettingRepo) Get(ctx context.Context, storeID string) (*model.StoreSetting, error) {
	db, err := r.q.Model(ctx, storeID, &model.StoreSetting{})
	if err != nil {
		return nil, err
	}
	var s model.StoreSetting
	if err := db.First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.StoreSetting{
				StoreID:          storeID,
				Currency:         "USD",
				WhatsAppTemplate: model.DefaultWhatsAppTemplate,
			}, nil
		}
		return nil, tenant.Backend("get settings", err)
	}
	return &s, nil
}

// Upsert 按 store_id 冲突更新
func (r *storeSettingRepo) Upsert(ctx context.Context, storeID string, s *model.StoreSetting) error {
	id, err := tenant.ValidateStoreID(storeID)
	if err != nil {
		return err
	}
	s.SetStoreID(id)
	s.ID = 0

	err = r.q.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: StoreColumn}},
		DoUpdates: clause.AssignmentColumns([]string{
			"currency", "business_name", "phone", "address",
			"invoice_notes", "invoice_template", "whatsapp_template",
			"extra", "updated_at",
		}),
	}).Create(s).Error
	return tenant.Backend("upsert settings", err)
}
