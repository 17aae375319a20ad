package service

import (
	"errors"

	"order_dash_v1/internal/repository"
)

// ==================== 业务错误 ====================

var (
	ErrInvalidToken       = errors.New("Token 无效或已过期")
	ErrInvalidOldPassword = errors.New("原密码错误")
	ErrUsernameExists     = errors.New("用户名已存在")
	ErrInvalidRole        = errors.New("无效的角色")
	ErrCannotModifySelf   = errors.New("不能删除、停用或降级自己的账号")
	ErrLastAdmin          = errors.New("店铺至少需要保留一个启用的管理员")

	ErrInvalidSlug = errors.New("slug 只能包含小写字母、数字和连字符，且不能是 8 位数字")
	ErrSlugTaken   = errors.New("slug 已被占用")
	ErrStoreIDFull = errors.New("生成店铺 ID 失败，请重试")

	ErrSKUExists        = errors.New("SKU 已存在")
	ErrCustomerNotFound = errors.New("客户不存在")
	ErrProductNotFound  = errors.New("商品不存在")
	ErrUnknownStatus    = errors.New("订单状态不存在")
	ErrStatusCodeExists = errors.New("状态编码已存在")
	ErrStatusInUse      = errors.New("仍有订单使用该状态，无法删除")
	ErrInvalidDateRange = errors.New("日期范围无效")
	ErrInvalidTemplate  = errors.New("模板无效")
	ErrNoCustomerPhone  = errors.New("客户没有可用的电话号码")
	ErrStorageDisabled  = errors.New("存储服务未配置")
)

// IsNotFound 记录不存在（含属于其他店铺的记录）
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
