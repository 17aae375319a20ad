package controller

import (
	"github.com/gin-gonic/gin"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/service"
)

// StoreController 平台管理员的店铺管理
type StoreController struct {
	storeService *service.StoreService
	userService  *service.StoreUserService
}

func NewStoreController(stores *service.StoreService, users *service.StoreUserService) *StoreController {
	return &StoreController{storeService: stores, userService: users}
}

// ==================== 店铺 ====================

// Create 创建店铺
// @Summary 创建店铺
// @Description 分配 8 位店铺 ID，写入默认订单状态和店铺设置，并创建第一个店铺管理员
// @Tags Admin (平台管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateStoreRequest true "店铺信息"
// @Success 200 {object} dto.CreateStoreResponse
// @Failure 409 {object} Response "slug 已被占用"
// @Router /api/admin/stores [post]
func (ctrl *StoreController) Create(c *gin.Context) {
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.storeService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "创建成功", resp)
}

// List 店铺列表
// @Summary 店铺列表
// @Tags Admin (平台管理)
// @Produce json
// @Security BearerAuth
// @Param keyword query string false "名称或 slug"
// @Param is_active query bool false "是否启用"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} dto.StoreListResponse
// @Router /api/admin/stores [get]
func (ctrl *StoreController) List(c *gin.Context) {
	var req dto.StoreListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.storeService.List(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// Get 店铺详情
// @Summary 店铺详情
// @Tags Admin (平台管理)
// @Produce json
// @Security BearerAuth
// @Param store_id path string true "店铺 ID"
// @Success 200 {object} dto.StoreInfo
// @Failure 404 {object} Response
// @Router /api/admin/stores/{store_id} [get]
func (ctrl *StoreController) Get(c *gin.Context) {
	storeID, ok := storeIDParam(c)
	if !ok {
		return
	}
	resp, err := ctrl.storeService.Get(c.Request.Context(), storeID)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// Update 修改店铺信息
// @Summary 修改店铺信息
// @Tags Admin (平台管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param store_id path string true "店铺 ID"
// @Param body body dto.UpdateStoreRequest true "店铺信息"
// @Success 200 {object} dto.StoreInfo
// @Router /api/admin/stores/{store_id} [put]
func (ctrl *StoreController) Update(c *gin.Context) {
	storeID, ok := storeIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.storeService.Update(c.Request.Context(), storeID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "更新成功", resp)
}

// Rename 修改 slug
// @Summary 修改店铺 slug
// @Description 旧 slug 进入历史记录，仍可解析并提示跳转
// @Tags Admin (平台管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param store_id path string true "店铺 ID"
// @Param body body dto.RenameStoreRequest true "新 slug"
// @Success 200 {object} dto.StoreInfo
// @Failure 409 {object} Response
// @Router /api/admin/stores/{store_id}/slug [put]
func (ctrl *StoreController) Rename(c *gin.Context) {
	storeID, ok := storeIDParam(c)
	if !ok {
		return
	}
	var req dto.RenameStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.storeService.Rename(c.Request.Context(), storeID, req.Slug)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "修改成功", resp)
}

// SetActive 启用/停用店铺
// @Summary 启用或停用店铺
// @Description 停用后店铺成员无法登录，已签发的 token 立即失效
// @Tags Admin (平台管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param store_id path string true "店铺 ID"
// @Param body body dto.SetStoreActiveRequest true "状态"
// @Success 200 {object} dto.StoreInfo
// @Router /api/admin/stores/{store_id}/status [put]
func (ctrl *StoreController) SetActive(c *gin.Context) {
	storeID, ok := storeIDParam(c)
	if !ok {
		return
	}
	var req dto.SetStoreActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.storeService.SetActive(c.Request.Context(), storeID, *req.IsActive)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "修改成功", resp)
}

// ==================== 店铺成员（平台管理员代管） ====================

// ListUsers 店铺成员列表
// @Summary 店铺成员列表
// @Tags Admin (平台管理)
// @Produce json
// @Security BearerAuth
// @Param store_id path string true "店铺 ID"
// @Success 200 {object} dto.UserListResponse
// @Router /api/admin/stores/{store_id}/users [get]
func (ctrl *StoreController) ListUsers(c *gin.Context) {
	storeID, ok := storeIDParam(c)
	if !ok {
		return
	}
	var req dto.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.userService.List(c.Request.Context(), storeID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// CreateUser 为店铺创建成员
// @Summary 为店铺创建成员
// @Tags Admin (平台管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param store_id path string true "店铺 ID"
// @Param body body dto.CreateUserRequest true "成员信息"
// @Success 200 {object} dto.UserInfo
// @Router /api/admin/stores/{store_id}/users [post]
func (ctrl *StoreController) CreateUser(c *gin.Context) {
	storeID, ok := storeIDParam(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if _, err := ctrl.storeService.Get(c.Request.Context(), storeID); err != nil {
		fail(c, err)
		return
	}
	resp, err := ctrl.userService.Create(c.Request.Context(), storeID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "创建成功", resp)
}

// UpdateUser 修改店铺成员
// @Summary 修改店铺成员
// @Tags Admin (平台管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param store_id path string true "店铺 ID"
// @Param id path int true "成员 ID"
// @Param body body dto.UpdateUserRequest true "成员信息"
// @Success 200 {object} dto.UserInfo
// @Router /api/admin/stores/{store_id}/users/{id} [put]
func (ctrl *StoreController) UpdateUser(c *gin.Context) {
	storeID, ok := storeIDParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	// 平台管理员不是店铺成员，operatorID 传 0
	resp, err := ctrl.userService.Update(c.Request.Context(), storeID, 0, id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "更新成功", resp)
}

// ResetUserPassword 重置店铺成员密码
// @Summary 重置店铺成员密码
// @Tags Admin (平台管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param store_id path string true "店铺 ID"
// @Param id path int true "成员 ID"
// @Param body body dto.ResetPasswordRequest true "新密码"
// @Success 200 {object} Response
// @Router /api/admin/stores/{store_id}/users/{id}/password [put]
func (ctrl *StoreController) ResetUserPassword(c *gin.Context) {
	storeID, ok := storeIDParam(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctrl.userService.ResetPassword(c.Request.Context(), storeID, id, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	success(c, "密码已重置", nil)
}
