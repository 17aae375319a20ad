package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
	"order_dash_v1/internal/service"
	"order_dash_v1/internal/tenant"
)

// ==================== 统一响应 ====================

// Response 统一响应格式，code 为 0 表示成功
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: message, Data: data})
}

func failWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Code: status, Message: message})
}

func badRequest(c *gin.Context, err error) {
	failWithStatus(c, http.StatusBadRequest, "参数错误: "+err.Error())
}

// fail 把业务错误映射为 HTTP 状态码；底层错误不向客户端透露细节
func fail(c *gin.Context, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	switch {
	case tenant.IsBackendError(err):
		failWithStatus(c, status, "服务暂不可用，请稍后重试")
	case status == http.StatusInternalServerError:
		failWithStatus(c, status, "服务器内部错误")
	default:
		failWithStatus(c, status, err.Error())
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, tenant.ErrAuthenticationFailed),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, tenant.ErrAccessDenied),
		errors.Is(err, service.ErrCannotModifySelf):
		return http.StatusForbidden
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, tenant.ErrStoreNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUsernameExists),
		errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrSKUExists),
		errors.Is(err, service.ErrStatusCodeExists),
		errors.Is(err, service.ErrStatusInUse),
		errors.Is(err, service.ErrLastAdmin):
		return http.StatusConflict
	case errors.Is(err, tenant.ErrInvalidTenantID),
		errors.Is(err, service.ErrInvalidSlug),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidOldPassword),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrUnknownStatus),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidTemplate),
		errors.Is(err, service.ErrNoCustomerPhone),
		errors.Is(err, model.ErrAmountOutOfRange),
		errors.Is(err, repository.ErrUnknownColumn):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrStorageDisabled),
		tenant.IsBackendError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ==================== 参数解析 ====================

// idParam 解析路径中的正整数 ID，失败时直接写 400
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		failWithStatus(c, http.StatusBadRequest, name+" 必须是正整数")
		return 0, false
	}
	return id, true
}

// storeIDParam 管理后台路径中的店铺 ID
func storeIDParam(c *gin.Context) (string, bool) {
	id, err := tenant.ValidateStoreID(c.Param("store_id"))
	if err != nil {
		failWithStatus(c, http.StatusBadRequest, "店铺 ID 必须是 8 位数字")
		return "", false
	}
	return id, true
}
