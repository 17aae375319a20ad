package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/tenant"
)

// StoreColumn 所有业务表的店铺列
const StoreColumn = "store_id"

var (
	ErrUnknownTable  = errors.New("未注册的店铺数据表")
	ErrUnknownColumn = errors.New("未知字段")
	ErrNotFound      = errors.New("记录不存在")
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DefaultScopedModels 需要店铺隔离的全部模型
func DefaultScopedModels() []model.Scoped {
	return []model.Scoped{
		&model.Customer{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderStatus{},
		&model.StoreSetting{},
		&model.StoreUser{},
	}
}

// StoreScope 店铺过滤条件，列名带当前表名前缀，JOIN 时不会歧义
func StoreScope(storeID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: StoreColumn},
			Value:  storeID,
		})
	}
}

// ==================== ScopedQuery ====================

// ScopedQuery 店铺隔离查询构造器
// 所有读写删都强制带 store_id 等值条件；更新和删除同时按主键 + store_id 过滤，
// 主键存在但属于其他店铺时影响 0 行。底层错误包装为 tenant.BackendError，不重试。
type ScopedQuery struct {
	db *gorm.DB

	mu     sync.RWMutex
	tables map[string]*scopedTable
}

type scopedTable struct {
	typ    reflect.Type
	schema *schema.Schema
}

// NewScopedQuery 创建构造器并注册店铺数据表
func NewScopedQuery(db *gorm.DB, models ...model.Scoped) (*ScopedQuery, error) {
	q := &ScopedQuery{db: db, tables: make(map[string]*scopedTable)}
	for _, m := range models {
		if err := q.Register(m); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// Register 注册一个店铺数据表，模型必须有 store_id 列
func (q *ScopedQuery) Register(m model.Scoped) error {
	stmt := &gorm.Statement{DB: q.db}
	if err := stmt.Parse(m); err != nil {
		return fmt.Errorf("解析模型失败: %w", err)
	}
	if f := stmt.Schema.LookUpField(StoreColumn); f == nil {
		return fmt.Errorf("表 %s 缺少 %s 列", stmt.Schema.Table, StoreColumn)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.tables[stmt.Schema.Table] = &scopedTable{
		typ:    reflect.TypeOf(m).Elem(),
		schema: stmt.Schema,
	}
	return nil
}

// Tables 已注册的表名
func (q *ScopedQuery) Tables() []string {
	q.mu.RLock()
	defer q.mu.RUnlock()
	names := make([]string, 0, len(q.tables))
	for name := range q.tables {
		names = append(names, name)
	}
	return names
}

// WithTx 在事务中使用同一套注册表
func (q *ScopedQuery) WithTx(tx *gorm.DB) *ScopedQuery {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return &ScopedQuery{db: tx, tables: q.tables}
}

// Transaction 事务执行
func (q *ScopedQuery) Transaction(ctx context.Context, fn func(tx *ScopedQuery) error) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(q.WithTx(tx))
	})
}

func (q *ScopedQuery) lookup(table string) (*scopedTable, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	t, ok := q.tables[table]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return t, nil
}

func (t *scopedTable) newModel() interface{} {
	return reflect.New(t.typ).Interface()
}

func (t *scopedTable) column(name string) (*schema.Field, error) {
	if !identPattern.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	f := t.schema.LookUpField(name)
	if f == nil || f.DBName == "" {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, t.schema.Table, name)
	}
	return f, nil
}

// clean 把 payload 的 key 统一成列名，丢弃 store_id（以及 skip 指定的列）
func (t *scopedTable) clean(payload map[string]interface{}, skip ...string) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(payload)+3)
	for k, v := range payload {
		f, err := t.column(k)
		if err != nil {
			return nil, err
		}
		if f.DBName == StoreColumn {
			continue
		}
		skipped := false
		for _, s := range skip {
			if f.DBName == s {
				skipped = true
				break
			}
		}
		if !skipped {
			out[f.DBName] = v
		}
	}
	return out, nil
}

// ==================== 通用表操作 ====================

// Read 返回已按店铺过滤的查询
func (q *ScopedQuery) Read(ctx context.Context, table, storeID string) (*gorm.DB, error) {
	id, err := tenant.ValidateStoreID(storeID)
	if err != nil {
		return nil, err
	}
	t, err := q.lookup(table)
	if err != nil {
		return nil, err
	}
	return q.db.WithContext(ctx).Model(t.newModel()).Scopes(StoreScope(id)), nil
}

// Insert 写入一行，store_id 一律使用已校验的会话值，覆盖 payload 中的任何值
func (q *ScopedQuery) Insert(ctx context.Context, table, storeID string, payload map[string]interface{}) error {
	id, err := tenant.ValidateStoreID(storeID)
	if err != nil {
		return err
	}
	t, err := q.lookup(table)
	if err != nil {
		return err
	}
	row, err := t.clean(payload)
	if err != nil {
		return err
	}
	row[StoreColumn] = id

	now := time.Now()
	for _, name := range []string{"created_at", "updated_at"} {
		if _, ok := row[name]; !ok && t.schema.LookUpField(name) != nil {
			row[name] = now
		}
	}

	return tenant.Backend("insert "+table, q.db.WithContext(ctx).Model(t.newModel()).Create(row).Error)
}

// Update 按主键 + store_id 更新，返回影响行数
// patch 中的 store_id 和主键列会被丢弃，记录不能被移到其他店铺
func (q *ScopedQuery) Update(ctx context.Context, table, storeID, pkColumn string, pkValue interface{}, patch map[string]interface{}) (int64, error) {
	id, err := tenant.ValidateStoreID(storeID)
	if err != nil {
		return 0, err
	}
	t, err := q.lookup(table)
	if err != nil {
		return 0, err
	}
	pk, err := t.column(pkColumn)
	if err != nil {
		return 0, err
	}
	values, err := t.clean(patch, pk.DBName)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, nil
	}

	res := q.db.WithContext(ctx).
		Model(t.newModel()).
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: pk.DBName}, Value: pkValue}).
		Scopes(StoreScope(id)).
		Updates(values)
	if res.Error != nil {
		return 0, tenant.Backend("update "+table, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete 按主键 + store_id 删除（有 DeletedAt 的模型为软删除），返回影响行数
func (q *ScopedQuery) Delete(ctx context.Context, table, storeID, pkColumn string, pkValue interface{}) (int64, error) {
	id, err := tenant.ValidateStoreID(storeID)
	if err != nil {
		return 0, err
	}
	t, err := q.lookup(table)
	if err != nil {
		return 0, err
	}
	pk, err := t.column(pkColumn)
	if err != nil {
		return 0, err
	}

	res := q.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: pk.DBName}, Value: pkValue}).
		Scopes(StoreScope(id)).
		Delete(t.newModel())
	if res.Error != nil {
		return 0, tenant.Backend("delete "+table, res.Error)
	}
	return res.RowsAffected, nil
}

// PurgeDeleted 物理删除本店铺在 before 之前软删除的行
func (q *ScopedQuery) PurgeDeleted(ctx context.Context, table, storeID string, before time.Time) (int64, error) {
	id, err := tenant.ValidateStoreID(storeID)
	if err != nil {
		return 0, err
	}
	t, err := q.lookup(table)
	if err != nil {
		return 0, err
	}
	if t.schema.LookUpField("deleted_at") == nil {
		return 0, nil
	}

	res := q.db.WithContext(ctx).
		Unscoped().
		Where(clause.Lt{Column: clause.Column{Table: clause.CurrentTable, Name: "deleted_at"}, Value: before}).
		Scopes(StoreScope(id)).
		Delete(t.newModel())
	if res.Error != nil {
		return 0, tenant.Backend("purge "+table, res.Error)
	}
	return res.RowsAffected, nil
}

// ==================== 类型化入口（供各仓储使用） ====================

// Model 返回已按店铺过滤的类型化查询
func (q *ScopedQuery) Model(ctx context.Context, storeID string, value interface{}) (*gorm.DB, error) {
	id, err := tenant.ValidateStoreID(storeID)
	if err != nil {
		return nil, err
	}
	return q.db.WithContext(ctx).Model(value).Scopes(StoreScope(id)), nil
}

// Create 写入结构体，写入前强制覆盖 store_id
func (q *ScopedQuery) Create(ctx context.Context, storeID string, record model.Scoped) error {
	id, err := tenant.ValidateStoreID(storeID)
	if err != nil {
		return err
	}
	record.SetStoreID(id)
	return tenant.Backend("create", q.db.WithContext(ctx).Create(record).Error)
}

// First 按主键读取一条本店铺记录，不存在返回 ErrNotFound
func (q *ScopedQuery) First(ctx context.Context, storeID string, dest interface{}, id int64) error {
	db, err := q.Model(ctx, storeID, dest)
	if err != nil {
		return err
	}
	if err := db.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Value: id}).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return tenant.Backend("first", err)
	}
	return nil
}

// Count 本店铺表行数
func (q *ScopedQuery) Count(ctx context.Context, table, storeID string) (int64, error) {
	db, err := q.Read(ctx, table, storeID)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.Count(&n).Error; err != nil {
		return 0, tenant.Backend("count "+table, err)
	}
	return n, nil
}
