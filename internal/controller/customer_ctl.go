package controller

import (
	"github.com/gin-gonic/gin"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/middleware"
	"order_dash_v1/internal/service"
)

// CustomerController 客户
type CustomerController struct {
	customerService *service.CustomerService
}

func NewCustomerController(s *service.CustomerService) *CustomerController {
	return &CustomerController{customerService: s}
}

// List
// @Summary 客户列表
// @Tags Customer (客户)
// @Produce json
// @Security BearerAuth
// @Param keyword query string false "姓名、电话、邮箱"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} dto.CustomerListResponse
// @Router /api/store/customers [get]
func (ctrl *CustomerController) List(c *gin.Context) {
	var req dto.CustomerListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.customerService.List(c.Request.Context(), middleware.GetStoreID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// Get
// @Summary 客户详情
// @Tags Customer (客户)
// @Produce json
// @Security BearerAuth
// @Param id path int true "客户 ID"
// @Success 200 {object} model.Customer
// @Failure 404 {object} Response
// @Router /api/store/customers/{id} [get]
func (ctrl *CustomerController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.customerService.Get(c.Request.Context(), middleware.GetStoreID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// Create
// @Summary 新增客户
// @Tags Customer (客户)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateCustomerRequest true "客户信息"
// @Success 200 {object} model.Customer
// @Router /api/store/customers [post]
func (ctrl *CustomerController) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.customerService.Create(c.Request.Context(), middleware.GetStoreID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "创建成功", resp)
}

// Update
// @Summary 修改客户
// @Tags Customer (客户)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "客户 ID"
// @Param body body dto.UpdateCustomerRequest true "客户信息"
// @Success 200 {object} model.Customer
// @Router /api/store/customers/{id} [put]
func (ctrl *CustomerController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.customerService.Update(c.Request.Context(), middleware.GetStoreID(c), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "更新成功", resp)
}

// Delete
// @Summary 删除客户
// @Tags Customer (客户)
// @Produce json
// @Security BearerAuth
// @Param id path int true "客户 ID"
// @Success 200 {object} Response
// @Router /api/store/customers/{id} [delete]
func (ctrl *CustomerController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.customerService.Delete(c.Request.Context(), middleware.GetStoreID(c), id); err != nil {
		fail(c, err)
		return
	}
	success(c, "删除成功", nil)
}
