package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/tenant"
)

// StoreChecker 确认店铺仍处于启用状态
type StoreChecker interface {
	IsActive(ctx context.Context, storeID string) (bool, error)
}

// MemberChecker 读取成员当前角色；成员已停用或已删除时返回 tenant.ErrAccessDenied
type MemberChecker interface {
	CurrentRole(ctx context.Context, storeID string, userID int64) (model.Role, error)
}

// TenantContext 把 token 中的店铺 ID 校验后注入 request context
// 必须放在 JWTAuth(KindTenant) 之后；店铺停用后已签发的 token 立即失效。
// members 不为空时按数据库中的角色覆盖 token 里的角色，成员停用、删除、降级即时生效
func TenantContext(checker StoreChecker, members MemberChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetUserClaims(c)
		if claims == nil {
			abort(c, http.StatusUnauthorized, "未提供认证信息")
			return
		}
		storeID, err := tenant.ValidateStoreID(claims.StoreID)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Token 无效或已过期")
			return
		}

		if checker != nil {
			active, err := checker.IsActive(c.Request.Context(), storeID)
			if err != nil {
				if errors.Is(err, tenant.ErrStoreNotFound) {
					abort(c, http.StatusUnauthorized, "店铺不存在或已停用")
					return
				}
				abort(c, http.StatusServiceUnavailable, "认证服务暂不可用")
				return
			}
			if !active {
				abort(c, http.StatusUnauthorized, "店铺不存在或已停用")
				return
			}
		}

		if members != nil {
			role, err := members.CurrentRole(c.Request.Context(), storeID, claims.UserID)
			if err != nil {
				if errors.Is(err, tenant.ErrAccessDenied) {
					abort(c, http.StatusUnauthorized, "账号已停用或不存在")
					return
				}
				abort(c, http.StatusServiceUnavailable, "认证服务暂不可用")
				return
			}
			claims.Role = string(role)
			c.Set(ContextKeyRole, string(role))
		}

		c.Set(ContextKeyStoreID, storeID)
		c.Request = c.Request.WithContext(tenant.WithStoreID(c.Request.Context(), storeID))
		c.Next()
	}
}

// GetStoreID 从 Context 获取已校验的店铺 ID
func GetStoreID(c *gin.Context) string {
	if id, exists := c.Get(ContextKeyStoreID); exists {
		return id.(string)
	}
	return ""
}
