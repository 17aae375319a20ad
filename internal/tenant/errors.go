package tenant

import (
	"errors"
	"fmt"
)

// ==================== 错误分类 ====================

var (
	// ErrInvalidTenantID 店铺 ID 缺失或格式错误，当前操作直接失败，不重试
	ErrInvalidTenantID = errors.New("invalid tenant id")
	// ErrStoreNotFound slug 或店铺 ID 无法解析
	ErrStoreNotFound = errors.New("store not found")
	// ErrAccessDenied 跨店铺访问或权限不足
	ErrAccessDenied = errors.New("access denied")
	// ErrAuthenticationFailed 登录失败，不区分用户名错误还是密码错误
	ErrAuthenticationFailed = errors.New("invalid credentials")
)

// BackendError 数据库/网络等底层失败，对调用方不透明
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error during %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Backend 包装底层错误；nil 原样返回，已包装的错误不重复包装
func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}

// IsBackendError 判断是否为底层失败
func IsBackendError(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}
