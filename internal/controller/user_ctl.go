package controller

import (
	"github.com/gin-gonic/gin"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/middleware"
	"order_dash_v1/internal/service"
)

// UserController 店铺内成员管理（店铺管理员）与个人密码
type UserController struct {
	userService *service.StoreUserService
}

func NewUserController(s *service.StoreUserService) *UserController {
	return &UserController{userService: s}
}

// List 成员列表
// @Summary 成员列表
// @Tags User (成员管理)
// @Produce json
// @Security BearerAuth
// @Param keyword query string false "用户名或姓名"
// @Param role query string false "角色"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} dto.UserListResponse
// @Router /api/store/users [get]
func (ctrl *UserController) List(c *gin.Context) {
	var req dto.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.userService.List(c.Request.Context(), middleware.GetStoreID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// Get 成员详情
// @Summary 成员详情
// @Tags User (成员管理)
// @Produce json
// @Security BearerAuth
// @Param id path int true "成员 ID"
// @Success 200 {object} dto.UserInfo
// @Router /api/store/users/{id} [get]
func (ctrl *UserController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.userService.Get(c.Request.Context(), middleware.GetStoreID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "", resp)
}

// Create 创建成员
// @Summary 创建成员
// @Description 成员固定属于当前店铺
// @Tags User (成员管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateUserRequest true "成员信息"
// @Success 200 {object} dto.UserInfo
// @Failure 409 {object} Response "用户名已存在"
// @Router /api/store/users [post]
func (ctrl *UserController) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.userService.Create(c.Request.Context(), middleware.GetStoreID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "创建成功", resp)
}

// Update 修改成员
// @Summary 修改成员
// @Description 不能停用或降级自己；店铺至少保留一个启用的管理员
// @Tags User (成员管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "成员 ID"
// @Param body body dto.UpdateUserRequest true "成员信息"
// @Success 200 {object} dto.UserInfo
// @Router /api/store/users/{id} [put]
func (ctrl *UserController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := ctrl.userService.Update(c.Request.Context(), middleware.GetStoreID(c), middleware.GetUserID(c), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "更新成功", resp)
}

// Delete 删除成员
// @Summary 删除成员
// @Tags User (成员管理)
// @Produce json
// @Security BearerAuth
// @Param id path int true "成员 ID"
// @Success 200 {object} Response
// @Router /api/store/users/{id} [delete]
func (ctrl *UserController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.userService.Delete(c.Request.Context(), middleware.GetStoreID(c), middleware.GetUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	success(c, "删除成功", nil)
}

// ResetPassword 重置成员密码
// @Summary 重置成员密码
// @Tags User (成员管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "成员 ID"
// @Param body body dto.ResetPasswordRequest true "新密码"
// @Success 200 {object} Response
// @Router /api/store/users/{id}/password [put]
func (ctrl *UserController) ResetPassword(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctrl.userService.ResetPassword(c.Request.Context(), middleware.GetStoreID(c), id, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	success(c, "密码已重置", nil)
}

// ChangePassword 修改自己的密码
// @Summary 修改自己的密码
// @Tags User (成员管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ChangePasswordRequest true "新旧密码"
// @Success 200 {object} Response
// @Failure 400 {object} Response "原密码错误"
// @Router /api/auth/password [put]
func (ctrl *UserController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctrl.userService.ChangePassword(c.Request.Context(), middleware.GetStoreID(c), middleware.GetUserID(c), &req); err != nil {
		fail(c, err)
		return
	}
	success(c, "密码已修改", nil)
}
