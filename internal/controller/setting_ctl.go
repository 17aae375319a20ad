package controller

import (
	"github.com/gin-gonic/gin"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/middleware"
	"order_dash_v1/internal/service"
)

// SettingController 订单状态、店铺设置、仪表盘
type SettingController struct {
	settingService   *service.SettingService
	dashboardService *service.DashboardService
}

func NewSettingController(settings *service.SettingService, dashboard *service.DashboardService) *SettingController {
	return &SettingController{settingService: settings, dashboardService: dashboard}
}

// Dashboard
// @Summary 仪表盘
// @Tags Setting (店铺设置)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Router /api/store/dashboard [get]
func (ctrl *SettingController) Dashboard(c *gin.Context) {
	resp, err := ctrl.dashboardService.Get(c.Request.Context(), middleware.GetStoreID(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// ==================== 订单状态 ====================

// ListStatuses
// @Summary 订单状态列表
// @Tags Setting (店铺设置)
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.OrderStatus
// @Router /api/store/statuses [get]
func (ctrl *SettingController) ListStatuses(c *gin.Context) {
	resp, err := ctrl.settingService.ListStatuses(c.Request.Context(), middleware.GetStoreID(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// CreateStatus
// @Summary 新增订单状态
// @Tags Setting (店铺设置)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateStatusRequest true "状态"
// @Success 200 {object} model.OrderStatus
// @Failure 409 {object} Response "状态编码已存在"
// @Router /api/store/statuses [post]
func (ctrl *SettingController) CreateStatus(c *gin.Context) {
	var req dto.CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.settingService.CreateStatus(c.Request.Context(), middleware.GetStoreID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "创建成功", resp)
}

// UpdateStatus
// @Summary 修改订单状态
// @Tags Setting (店铺设置)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "状态 ID"
// @Param body body dto.UpdateStatusRequest true "状态"
// @Success 200 {object} model.OrderStatus
// @Router /api/store/statuses/{id} [put]
func (ctrl *SettingController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.settingService.UpdateStatus(c.Request.Context(), middleware.GetStoreID(c), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "更新成功", resp)
}

// DeleteStatus
// @Summary 删除订单状态
// @Description 仍有订单使用的状态不能删除
// @Tags Setting (店铺设置)
// @Produce json
// @Security BearerAuth
// @Param id path int true "状态 ID"
// @Success 200 {object} Response
// @Failure 409 {object} Response
// @Router /api/store/statuses/{id} [delete]
func (ctrl *SettingController) DeleteStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.settingService.DeleteStatus(c.Request.Context(), middleware.GetStoreID(c), id); err != nil {
		fail(c, err)
		return
	}
	success(c, "删除成功", nil)
}

// ==================== 店铺设置 ====================

// GetSettings
// @Summary 店铺设置
// @Tags Setting (店铺设置)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.StoreSetting
// @Router /api/store/settings [get]
func (ctrl *SettingController) GetSettings(c *gin.Context) {
	resp, err := ctrl.settingService.GetSettings(c.Request.Context(), middleware.GetStoreID(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// UpdateSettings
// @Summary 修改店铺设置
// @Description 发票模板保存前会用示例数据试渲染
// @Tags Setting (店铺设置)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UpdateSettingsRequest true "设置"
// @Success 200 {object} model.StoreSetting
// @Failure 400 {object} Response "模板无效"
// @Router /api/store/settings [put]
func (ctrl *SettingController) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.settingService.UpdateSettings(c.Request.Context(), middleware.GetStoreID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "保存成功", resp)
}
