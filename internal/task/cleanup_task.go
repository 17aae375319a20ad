package task

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"order_dash_v1/internal/repository"
)

// StoreLister 列出需要清理的店铺
type StoreLister interface {
	ListAllIDs(ctx context.Context) ([]string, error)
}

// CleanupConfig 清理任务配置
type CleanupConfig struct {
	Spec          string // 标准 5 段 cron 表达式
	RetentionDays int
	Concurrency   int
	Timeout       time.Duration
}

// CleanupResult 一次清理的统计
type CleanupResult struct {
	Stores  int              `json:"stores"`
	Purged  map[string]int64 `json:"purged"` // 表名 -> 删除行数
	Failed  []string         `json:"failed"` // 出错的店铺 ID
	Started time.Time        `json:"started"`
	Elapsed time.Duration    `json:"elapsed"`
}

// Total 删除行数合计
func (r *CleanupResult) Total() int64 {
	var n int64
	for _, v := range r.Purged {
		n += v
	}
	return n
}

// CleanupTask 定时物理删除超过保留期的软删除数据
// 逐店铺执行，每个店铺都走 ScopedQuery，不会有跨店铺的删除语句
type CleanupTask struct {
	stores StoreLister
	q      *repository.ScopedQuery
	cfg    CleanupConfig
	cron   *cron.Cron
	log    *zap.Logger
	now    func() time.Time

	running atomic.Bool
}

func NewCleanupTask(stores StoreLister, q *repository.ScopedQuery, cfg CleanupConfig, log *zap.Logger) *CleanupTask {
	if cfg.Spec == "" {
		cfg.Spec = "0 3 * * *"
	}
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = 30
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Minute
	}
	return &CleanupTask{
		stores: stores,
		q:      q,
		cfg:    cfg,
		cron:   cron.New(),
		log:    log.Named("cleanup"),
		now:    time.Now,
	}
}

// Start 注册定时任务
func (t *CleanupTask) Start() error {
	_, err := t.cron.AddFunc(t.cfg.Spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.cfg.Timeout)
		defer cancel()
		if _, err := t.RunOnce(ctx); err != nil {
			t.log.Error("清理任务失败", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	t.cron.Start()
	t.log.Info("清理任务已启动", zap.String("spec", t.cfg.Spec), zap.Int("retention_days", t.cfg.RetentionDays))
	return nil
}

// Stop 停止调度，等待正在执行的任务结束
func (t *CleanupTask) Stop() context.Context {
	return t.cron.Stop()
}

// RunOnce 执行一次完整清理；上一次未结束时直接返回 ErrTaskRunning
func (t *CleanupTask) RunOnce(ctx context.Context) (*CleanupResult, error) {
	if !t.running.CompareAndSwap(false, true) {
		return nil, ErrTaskRunning
	}
	defer t.running.Store(false)

	started := t.now()
	before := started.AddDate(0, 0, -t.cfg.RetentionDays)

	ids, err := t.stores.ListAllIDs(ctx)
	if err != nil {
		return nil, err
	}

	tables := t.q.Tables()
	sort.Strings(tables)

	result := &CleanupResult{Stores: len(ids), Purged: make(map[string]int64), Started: started}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.cfg.Concurrency)
	for _, id := range ids {
		storeID := id
		g.Go(func() error {
			// 单个店铺失败不影响其他店铺
			counts, err := t.purgeStore(gctx, storeID, tables, before)
			mu.Lock()
			defer mu.Unlock()
			for table, n := range counts {
				result.Purged[table] += n
			}
			if err != nil {
				result.Failed = append(result.Failed, storeID)
				t.log.Warn("店铺清理失败", zap.String("store_id", storeID), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()
	sort.Strings(result.Failed)

	result.Elapsed = t.now().Sub(started)
	t.log.Info("清理完成",
		zap.Int("stores", result.Stores),
		zap.Int64("purged", result.Total()),
		zap.Int("failed", len(result.Failed)),
		zap.Duration("elapsed", result.Elapsed),
	)
	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func (t *CleanupTask) purgeStore(ctx context.Context, storeID string, tables []string, before time.Time) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return counts, err
		}
		n, err := t.q.PurgeDeleted(ctx, table, storeID, before)
		if err != nil {
			return counts, err
		}
		if n > 0 {
			counts[table] = n
		}
	}
	return counts, nil
}
