package controller

import (
	"github.com/gin-gonic/gin"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/middleware"
	"order_dash_v1/internal/service"
)

// ProductController 商品
type ProductController struct {
	productService *service.ProductService
}

func NewProductController(s *service.ProductService) *ProductController {
	return &ProductController{productService: s}
}

// List
// @Summary 商品列表
// @Tags Product (商品)
// @Produce json
// @Security BearerAuth
// @Param keyword query string false "名称或 SKU"
// @Param is_active query bool false "是否上架"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} dto.ProductListResponse
// @Router /api/store/products [get]
func (ctrl *ProductController) List(c *gin.Context) {
	var req dto.ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.productService.List(c.Request.Context(), middleware.GetStoreID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// Get
// @Summary 商品详情
// @Tags Product (商品)
// @Produce json
// @Security BearerAuth
// @Param id path int true "商品 ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} Response
// @Router /api/store/products/{id} [get]
func (ctrl *ProductController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.productService.Get(c.Request.Context(), middleware.GetStoreID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// Create
// @Summary 新增商品
// @Description price 单位为分；SKU 在店铺内唯一，可为空
// @Tags Product (商品)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateProductRequest true "商品信息"
// @Success 200 {object} model.Product
// @Failure 409 {object} Response "SKU 已存在"
// @Router /api/store/products [post]
func (ctrl *ProductController) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.productService.Create(c.Request.Context(), middleware.GetStoreID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "创建成功", resp)
}

// Update
// @Summary 修改商品
// @Tags Product (商品)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "商品 ID"
// @Param body body dto.UpdateProductRequest true "商品信息"
// @Success 200 {object} model.Product
// @Router /api/store/products/{id} [put]
func (ctrl *ProductController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.productService.Update(c.Request.Context(), middleware.GetStoreID(c), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "更新成功", resp)
}

// Delete
// @Summary 删除商品
// @Tags Product (商品)
// @Produce json
// @Security BearerAuth
// @Param id path int true "商品 ID"
// @Success 200 {object} Response
// @Router /api/store/products/{id} [delete]
func (ctrl *ProductController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.productService.Delete(c.Request.Context(), middleware.GetStoreID(c), id); err != nil {
		fail(c, err)
		return
	}
	success(c, "删除成功", nil)
}
