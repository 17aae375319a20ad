package middleware

import (
	"context"
	"reflect"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/tenant"
)

// ==================== 操作人 ====================

type actorKey struct{}

// Actor 当前请求的店铺成员，写入 created_by / updated_by
type Actor struct {
	UserID  int64
	StoreID string
	Role    model.Role
}

// WithActor 把操作人放进 context，GORM 回调从 tx.Statement.Context 读取
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom 取出操作人；平台管理员和后台任务没有操作人
func ActorFrom(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok && a.UserID > 0
}

// AuditContext 只记录店铺成员；平台管理员的 ID 与店铺用户表无关
func AuditContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := GetUserClaims(c); claims != nil && claims.Kind == KindTenant && claims.UserID > 0 {
			ctx := WithActor(c.Request.Context(), Actor{
				UserID:  claims.UserID,
				StoreID: claims.StoreID,
				Role:    model.Role(claims.Role),
			})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// ==================== GORM 回调 ====================

// RegisterAuditCallbacks 新增时写 created_by/updated_by，更新时写 updated_by
// 新增的记录属于其他店铺时拒绝写入
func RegisterAuditCallbacks(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").Register("oms:audit_create", auditCreate); err != nil {
		return err
	}
	return db.Callback().Update().Before("gorm:update").Register("oms:audit_update", auditUpdate)
}

func auditCreate(tx *gorm.DB) {
	actor, ok := ActorFrom(tx.Statement.Context)
	if !ok || tx.Statement.Schema == nil {
		return
	}
	if f := tx.Statement.Schema.LookUpField("StoreID"); f != nil && actor.StoreID != "" {
		eachRow(tx, func(row reflect.Value) {
			if v, zero := f.ValueOf(tx.Statement.Context, row); !zero && v != actor.StoreID {
				_ = tx.AddError(tenant.ErrAccessDenied)
			}
		})
		if tx.Error != nil {
			return
		}
	}
	stamp(tx, "CreatedBy", actor.UserID, false)
	stamp(tx, "UpdatedBy", actor.UserID, true)
}

func auditUpdate(tx *gorm.DB) {
	if actor, ok := ActorFrom(tx.Statement.Context); ok && tx.Statement.Schema != nil {
		stamp(tx, "UpdatedBy", actor.UserID, true)
	}
}

// stamp 写审计列；overwrite=false 时保留调用方已填的值
func stamp(tx *gorm.DB, name string, id int64, overwrite bool) {
	f := tx.Statement.Schema.LookUpField(name)
	if f == nil {
		return
	}
	// Updates(map) / Update(col, v) 的目标是 map
	if m, ok := tx.Statement.Dest.(map[string]interface{}); ok {
		m[f.DBName] = id
		return
	}
	eachRow(tx, func(row reflect.Value) {
		setIf(tx, f, row, id, overwrite)
	})
}

func setIf(tx *gorm.DB, f *schema.Field, row reflect.Value, id int64, overwrite bool) {
	if _, zero := f.ValueOf(tx.Statement.Context, row); zero || overwrite {
		_ = f.Set(tx.Statement.Context, row, id)
	}
}

// eachRow 单条和批量写入统一遍历
func eachRow(tx *gorm.DB, fn func(reflect.Value)) {
	rv := tx.Statement.ReflectValue
	switch rv.Kind() {
	case reflect.Struct:
		fn(rv)
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			row := reflect.Indirect(rv.Index(i))
			if row.Kind() == reflect.Struct {
				fn(row)
			}
		}
	}
}
