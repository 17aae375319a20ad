package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"order_dash_v1/internal/model"
)

func setupStoreTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Store{}, &model.StoreSlugHistory{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func TestStoreRepo_ResolveSlug_AfterRename(t *testing.T) {
	db := setupStoreTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Store{StoreID: "10234567", Name: "Acme", Slug: "acme"}))
	require.NoError(t, repo.Rename(ctx, "10234567", "acme-shop"))

	old, err := repo.ResolveSlug(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, &model.SlugResolution{StoreID: "10234567", CurrentSlug: "acme-shop", NeedsRedirect: true}, old)

	cur, err := repo.ResolveSlug(ctx, "acme-shop")
	require.NoError(t, err)
	assert.Equal(t, &model.SlugResolution{StoreID: "10234567", CurrentSlug: "acme-shop", NeedsRedirect: false}, cur)

	_, err = repo.ResolveSlug(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRepo_Rename_Chain(t *testing.T) {
	db := setupStoreTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Store{StoreID: "10234567", Name: "Acme", Slug: "acme"}))
	require.NoError(t, repo.Rename(ctx, "10234567", "acme-shop"))
	require.NoError(t, repo.Rename(ctx, "10234567", "acme-store"))

	// 所有历史 slug 都重定向到最新 slug
	for _, slug := range []string{"acme", "acme-shop"} {
		res, err := repo.ResolveSlug(ctx, slug)
		require.NoError(t, err)
		assert.Equal(t, "acme-store", res.CurrentSlug)
		assert.True(t, res.NeedsRedirect)
	}

	// 改回历史 slug：从历史中移除，不再重定向
	require.NoError(t, repo.Rename(ctx, "10234567", "acme"))
	res, err := repo.ResolveSlug(ctx, "acme")
	require.NoError(t, err)
	assert.False(t, res.NeedsRedirect)

	store, err := repo.GetByID(ctx, "10234567")
	require.NoError(t, err)
	slugs := make([]string, 0, len(store.SlugHistory))
	for _, h := range store.SlugHistory {
		slugs = append(slugs, h.Slug)
	}
	assert.ElementsMatch(t, []string{"acme-shop", "acme-store"}, slugs)

	// 同名改名为空操作
	require.NoError(t, repo.Rename(ctx, "10234567", "acme"))
}

func TestStoreRepo_ResolveSlug_InactiveStore(t *testing.T) {
	db := setupStoreTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Store{StoreID: "10234567", Name: "Acme", Slug: "acme"}))
	require.NoError(t, repo.Rename(ctx, "10234567", "acme-shop"))
	require.NoError(t, repo.SetActive(ctx, "10234567", false))

	_, err := repo.ResolveSlug(ctx, "acme-shop")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.ResolveSlug(ctx, "acme")
	assert.ErrorIs(t, err, ErrNotFound)

	ids, err := repo.ListActiveIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = repo.ListAllIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"10234567"}, ids)
}

func TestStoreRepo_SlugOwner(t *testing.T) {
	db := setupStoreTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Store{StoreID: "10234567", Name: "Acme", Slug: "acme"}))
	require.NoError(t, repo.Rename(ctx, "10234567", "acme-shop"))

	owner, err := repo.SlugOwner(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "10234567", owner)

	owner, err = repo.SlugOwner(ctx, "acme-shop")
	require.NoError(t, err)
	assert.Equal(t, "10234567", owner)

	owner, err = repo.SlugOwner(ctx, "free")
	require.NoError(t, err)
	assert.Empty(t, owner)
}

func TestStoreRepo_List(t *testing.T) {
	db := setupStoreTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	repo.Create(ctx, &model.Store{StoreID: "10000001", Name: "Alpha", Slug: "alpha"})
	repo.Create(ctx, &model.Store{StoreID: "10000002", Name: "Beta", Slug: "beta"})
	repo.SetActive(ctx, "10000002", false)

	all, total, err := repo.List(ctx, StoreFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	active := true
	list, total, err := repo.List(ctx, StoreFilter{IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "alpha", list[0].Slug)

	list, _, err = repo.List(ctx, StoreFilter{Keyword: "bet"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "10000002", list[0].StoreID)
}
