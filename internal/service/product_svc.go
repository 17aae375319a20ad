package service

import (
	"context"
	"strings"

	"github.com/lib/pq"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
)

// ==================== ProductService 商品服务 ====================

// ProductService 商品管理，SKU 在店铺内唯一（为空时不校验）
type ProductService struct {
	products repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create 创建商品
func (s *ProductService) Create(ctx context.Context, storeID string, req *dto.CreateProductRequest) (*model.Product, error) {
	sku := strings.TrimSpace(req.SKU)
	if err := s.checkSKU(ctx, storeID, sku, 0); err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:        req.Name,
		SKU:         sku,
		Description: req.Description,
		PriceAmount: req.Price,
		Stock:       req.Stock,
		Tags:        pq.StringArray(normalizeTags(req.Tags)),
		IsActive:    true,
	}
	if err := s.products.Create(ctx, storeID, p); err != nil {
		return nil, err
	}

	// is_active 带 default:true，创建时写 false 会被忽略，需要单独更新
	if req.IsActive != nil && !*req.IsActive {
		if err := s.products.UpdateFields(ctx, storeID, p.ID, map[string]interface{}{"is_active": false}); err != nil {
			return nil, err
		}
		p.IsActive = false
	}
	return p, nil
}

// Get 商品详情
func (s *ProductService) Get(ctx context.Context, storeID string, id int64) (*model.Product, error) {
	return s.products.GetByID(ctx, storeID, id)
}

// List 商品列表
func (s *ProductService) List(ctx context.Context, storeID string, req *dto.ProductListRequest) (*dto.ProductListResponse, error) {
	list, total, err := s.products.List(ctx, storeID, repository.ProductFilter{
		Keyword:  req.Keyword,
		IsActive: req.IsActive,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Total: total, List: list}, nil
}

// Update 修改商品
func (s *ProductService) Update(ctx context.Context, storeID string, id int64, req *dto.UpdateProductRequest) (*model.Product, error) {
	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.SKU != nil {
		sku := strings.TrimSpace(*req.SKU)
		if err := s.checkSKU(ctx, storeID, sku, id); err != nil {
			return nil, err
		}
		fields["sku"] = sku
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price_amount"] = *req.Price
	}
	if req.Stock != nil {
		fields["stock"] = *req.Stock
	}
	if req.Tags != nil {
		fields["tags"] = pq.StringArray(normalizeTags(req.Tags))
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if len(fields) > 0 {
		if err := s.products.UpdateFields(ctx, storeID, id, fields); err != nil {
			return nil, err
		}
	}
	return s.products.GetByID(ctx, storeID, id)
}

// Delete 删除商品；已下单的明细保留快照
func (s *ProductService) Delete(ctx context.Context, storeID string, id int64) error {
	return s.products.Delete(ctx, storeID, id)
}

func (s *ProductService) checkSKU(ctx context.Context, storeID, sku string, exceptID int64) error {
	if sku == "" {
		return nil
	}
	taken, err := s.products.SKUTaken(ctx, storeID, sku, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return ErrSKUExists
	}
	return nil
}

// normalizeTags 去空白、去重，保持顺序
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
