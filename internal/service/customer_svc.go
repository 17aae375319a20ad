package service

import (
	"context"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
)

// CustomerService 客户管理
type CustomerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) Create(ctx context.Context, storeID string, req *dto.CreateCustomerRequest) (*model.Customer, error) {
	c := &model.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Notes:   req.Notes,
	}
	if err := s.customers.Create(ctx, storeID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) Get(ctx context.Context, storeID string, id int64) (*model.Customer, error) {
	return s.customers.GetByID(ctx, storeID, id)
}

func (s *CustomerService) List(ctx context.Context, storeID string, req *dto.CustomerListRequest) (*dto.CustomerListResponse, error) {
	list, total, err := s.customers.List(ctx, storeID, repository.CustomerFilter{
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return &dto.CustomerListResponse{Total: total, List: list}, nil
}

// Update 只修改请求中出现的字段
func (s *CustomerService) Update(ctx context.Context, storeID string, id int64, req *dto.UpdateCustomerRequest) (*model.Customer, error) {
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
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if len(fields) > 0 {
		if err := s.customers.UpdateFields(ctx, storeID, id, fields); err != nil {
			return nil, err
		}
	}
	return s.customers.GetByID(ctx, storeID, id)
}

func (s *CustomerService) Delete(ctx context.Context, storeID string, id int64) error {
	return s.customers.Delete(ctx, storeID, id)
}
