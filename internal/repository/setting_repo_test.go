package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/tenant"
)

func TestStoreSettingRepo_UpsertTwice(t *testing.T) {
	db, q := setupScopedQuery(t)
	require.NoError(t, db.AutoMigrate(&model.StoreSetting{}))
	repo := NewStoreSettingRepository(q)
	ctx := context.Background()

	// 没有记录时返回默认值
	s, err := repo.Get(ctx, storeA)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultWhatsAppTemplate, s.WhatsAppTemplate)

	require.NoError(t, repo.Upsert(ctx, storeA, &model.StoreSetting{
		Currency:         "IDR",
		BusinessName:     "Acme",
		WhatsAppTemplate: "Halo {customer_name}",
	}))
	require.NoError(t, repo.Upsert(ctx, storeA, &model.StoreSetting{
		Currency:         "IDR",
		BusinessName:     "Acme Jaya",
		WhatsAppTemplate: "Halo {customer_name}, pesanan {order_no}",
		StoreID:          storeB, // 调用方传入的店铺 ID 被覆盖
	}))

	var n int64
	require.NoError(t, db.Model(&model.StoreSetting{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	got, err := repo.Get(ctx, storeA)
	require.NoError(t, err)
	assert.Equal(t, storeA, got.StoreID)
	assert.Equal(t, "Acme Jaya", got.BusinessName)
	assert.Equal(t, "Halo {customer_name}, pesanan {order_no}", got.WhatsAppTemplate)

	// 其他店铺仍是默认值
	other, err := repo.Get(ctx, storeB)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultWhatsAppTemplate, other.WhatsAppTemplate)

	assert.ErrorIs(t, repo.Upsert(ctx, "123", &model.StoreSetting{}), tenant.ErrInvalidTenantID)
}
