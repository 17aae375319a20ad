package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
	"order_dash_v1/internal/tenant"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,62}[a-z0-9])?$`)

// NormalizeSlug 转小写并校验格式
// 8 位纯数字的 slug 会和店铺 ID 混淆，不允许
func NormalizeSlug(raw string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(raw))
	if !slugPattern.MatchString(slug) || strings.Contains(slug, "--") || tenant.IsStoreID(slug) {
		return "", ErrInvalidSlug
	}
	return slug, nil
}

// newStoreID 生成 8 位数字 ID，首位不为 0
func newStoreID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(90000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%08d", n.Int64()+10000000), nil
}

// ==================== SlugResolver ====================

// SlugResolver 把路径中的 slug 解析成店铺 ID 和当前 slug
type SlugResolver struct {
	stores repository.StoreRepository
}

func NewSlugResolver(stores repository.StoreRepository) *SlugResolver {
	return &SlugResolver{stores: stores}
}

// Resolve 三种结果：不存在 -> tenant.ErrStoreNotFound；当前 slug -> NeedsRedirect=false；
// 历史 slug -> CurrentSlug 为新 slug，NeedsRedirect=true
func (r *SlugResolver) Resolve(ctx context.Context, slug string) (*model.SlugResolution, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, tenant.ErrStoreNotFound
	}
	res, err := r.stores.ResolveSlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, tenant.ErrStoreNotFound
		}
		return nil, err
	}
	return res, nil
}

// ResolveIdentifier 登录用：既接受 slug，也接受 8 位店铺 ID
func (r *SlugResolver) ResolveIdentifier(ctx context.Context, ident string) (*model.SlugResolution, error) {
	ident = strings.TrimSpace(ident)
	if !tenant.IsStoreID(ident) {
		return r.Resolve(ctx, ident)
	}

	store, err := r.stores.GetByID(ctx, ident)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, tenant.ErrStoreNotFound
		}
		return nil, err
	}
	if !store.IsActive {
		return nil, tenant.ErrStoreNotFound
	}
	return &model.SlugResolution{StoreID: store.StoreID, CurrentSlug: store.Slug}, nil
}
