package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/middleware"
	"order_dash_v1/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OrderController 订单、发票、WhatsApp 消息与导出
type OrderController struct {
	orderService   *service.OrderService
	invoiceService *service.InvoiceService
	messageService *service.MessageService
	exportService  *service.ExportService
}

func NewOrderController(
	orders *service.OrderService,
	invoices *service.InvoiceService,
	messages *service.MessageService,
	exports *service.ExportService,
) *OrderController {
	return &OrderController{
		orderService:   orders,
		invoiceService: invoices,
		messageService: messages,
		exportService:  exports,
	}
}

// ==================== 订单 CRUD ====================

// List 订单列表
// @Summary 订单列表
// @Tags Order (订单)
// @Produce json
// @Security BearerAuth
// @Param keyword query string false "订单号"
// @Param status query string false "状态编码"
// @Param customer_id query int false "客户 ID"
// @Param start_date query string false "开始日期 2024-01-01"
// @Param end_date query string false "结束日期（含当天）"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} dto.ListOrdersResponse
// @Router /api/store/orders [get]
func (ctrl *OrderController) List(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.orderService.List(c.Request.Context(), middleware.GetStoreID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// Get 订单详情（含明细）
// @Summary 订单详情
// @Tags Order (订单)
// @Produce json
// @Security BearerAuth
// @Param id path int true "订单 ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} Response
// @Router /api/store/orders/{id} [get]
func (ctrl *OrderController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.orderService.Get(c.Request.Context(), middleware.GetStoreID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// Create 创建订单
// @Summary 创建订单
// @Description 金额由服务端根据明细计算；客户和商品必须属于当前店铺
// @Tags Order (订单)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateOrderRequest true "订单信息"
// @Success 200 {object} model.Order
// @Failure 400 {object} Response
// @Router /api/store/orders [post]
func (ctrl *OrderController) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.orderService.Create(c.Request.Context(), middleware.GetStoreID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "创建成功", resp)
}

// Update 修改订单
// @Summary 修改订单
// @Description items 不为空时整体替换明细并重新计算金额
// @Tags Order (订单)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "订单 ID"
// @Param body body dto.UpdateOrderRequest true "订单信息"
// @Success 200 {object} model.Order
// @Router /api/store/orders/{id} [put]
func (ctrl *OrderController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.orderService.Update(c.Request.Context(), middleware.GetStoreID(c), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "更新成功", resp)
}

// UpdateStatus 修改订单状态
// @Summary 修改订单状态
// @Tags Order (订单)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "订单 ID"
// @Param body body dto.UpdateOrderStatusRequest true "状态编码"
// @Success 200 {object} model.Order
// @Router /api/store/orders/{id}/status [put]
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.orderService.UpdateStatus(c.Request.Context(), middleware.GetStoreID(c), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "状态已更新", resp)
}

// Delete 删除订单
// @Summary 删除订单
// @Tags Order (订单)
// @Produce json
// @Security BearerAuth
// @Param id path int true "订单 ID"
// @Success 200 {object} Response
// @Router /api/store/orders/{id} [delete]
func (ctrl *OrderController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.orderService.Delete(c.Request.Context(), middleware.GetStoreID(c), id); err != nil {
		fail(c, err)
		return
	}
	success(c, "删除成功", nil)
}

// ==================== 发票 ====================

// Invoice 发票 HTML
// @Summary 发票
// @Description 返回可直接打印的 HTML
// @Tags Order (订单)
// @Produce html
// @Security BearerAuth
// @Param id path int true "订单 ID"
// @Success 200 {string} string "HTML"
// @Router /api/store/orders/{id}/invoice [get]
func (ctrl *OrderController) Invoice(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	html, _, err := ctrl.invoiceService.Render(c.Request.Context(), middleware.GetStoreID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ArchiveInvoice 发票归档到对象存储
// @Summary 发票归档
// @Tags Order (订单)
// @Produce json
// @Security BearerAuth
// @Param id path int true "订单 ID"
// @Success 200 {object} dto.ArchiveInvoiceResponse
// @Failure 503 {object} Response "存储服务未配置"
// @Router /api/store/orders/{id}/invoice/archive [post]
func (ctrl *OrderController) ArchiveInvoice(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	url, err := ctrl.invoiceService.Archive(c.Request.Context(), middleware.GetStoreID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "归档成功", dto.ArchiveInvoiceResponse{URL: url})
}

// ==================== WhatsApp ====================

// WhatsApp 生成 WhatsApp 消息和 wa.me 链接
// @Summary WhatsApp 消息
// @Tags Order (订单)
// @Produce json
// @Security BearerAuth
// @Param id path int true "订单 ID"
// @Success 200 {object} dto.WhatsAppMessageResponse
// @Failure 400 {object} Response "客户没有可用的电话号码"
// @Router /api/store/orders/{id}/whatsapp [get]
func (ctrl *OrderController) WhatsApp(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.messageService.WhatsApp(c.Request.Context(), middleware.GetStoreID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// ==================== 导出 ====================

// Export 导出订单 Excel
// @Summary 导出订单
// @Description 按下单日期导出，to 含当天
// @Tags Order (订单)
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string true "开始日期 2024-01-01"
// @Param to query string true "结束日期 2024-01-31"
// @Success 200 {file} file
// @Router /api/store/orders/export [get]
func (ctrl *OrderController) Export(c *gin.Context) {
	var req dto.ExportOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	data, err := ctrl.exportService.Export(c.Request.Context(), middleware.GetStoreID(c), req.From, req.To)
	if err != nil {
		fail(c, err)
		return
	}
	filename := fmt.Sprintf("orders_%s_%s.xlsx", req.From, req.To)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
