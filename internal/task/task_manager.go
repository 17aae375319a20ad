package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"order_dash_v1/internal/repository"
)

// ==================== TaskManager 后台任务管理器 ====================

// TaskManager 统一管理后台任务
// 管理范围：软删除数据清理、内存计数清理
type TaskManager struct {
	cleanupTask *CleanupTask
	sweepTask   *SweepTask
	log         *zap.Logger
}

// TaskManagerDeps 任务管理器依赖
type TaskManagerDeps struct {
	Stores   StoreLister
	Scoped   *repository.ScopedQuery
	Sweepers map[string]Sweeper
	Logger   *zap.Logger
}

// TaskManagerConfig 任务管理器配置
type TaskManagerConfig struct {
	CleanupEnabled bool
	Cleanup        CleanupConfig

	SweepEnabled  bool
	SweepInterval time.Duration
}

// DefaultConfig 默认配置
func DefaultConfig() *TaskManagerConfig {
	return &TaskManagerConfig{
		CleanupEnabled: true,
		Cleanup: CleanupConfig{
			Spec:          "0 3 * * *",
			RetentionDays: 30,
			Concurrency:   4,
		},
		SweepEnabled:  true,
		SweepInterval: 5 * time.Minute,
	}
}

// NewTaskManager 创建任务管理器
func NewTaskManager(deps *TaskManagerDeps, cfg *TaskManagerConfig) *TaskManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	tm := &TaskManager{log: log.Named("task")}

	if cfg.CleanupEnabled && deps.Stores != nil && deps.Scoped != nil {
		tm.cleanupTask = NewCleanupTask(deps.Stores, deps.Scoped, cfg.Cleanup, log)
	}

	if cfg.SweepEnabled && len(deps.Sweepers) > 0 {
		tm.sweepTask = NewSweepTask(cfg.SweepInterval, log)
		for name, s := range deps.Sweepers {
			tm.sweepTask.Register(name, s)
		}
	}

	return tm
}

// ==================== 生命周期管理 ====================

// Start 启动所有任务
func (tm *TaskManager) Start() error {
	tm.log.Info("正在启动后台任务...")

	if tm.cleanupTask != nil {
		if err := tm.cleanupTask.Start(); err != nil {
			return err
		}
	}
	if tm.sweepTask != nil {
		tm.sweepTask.Start()
	}

	tm.log.Info("后台任务已全部启动")
	return nil
}

// Stop 停止所有任务，ctx 到期后不再等待正在执行的清理
func (tm *TaskManager) Stop(ctx context.Context) {
	tm.log.Info("正在停止后台任务...")

	if tm.sweepTask != nil {
		tm.sweepTask.Stop()
	}
	if tm.cleanupTask != nil {
		select {
		case <-tm.cleanupTask.Stop().Done():
		case <-ctx.Done():
			tm.log.Warn("清理任务未在超时前结束")
		}
	}

	tm.log.Info("后台任务已全部停止")
}

// ==================== 手动触发接口 ====================

// TriggerCleanup 立即执行一次清理
func (tm *TaskManager) TriggerCleanup(ctx context.Context) (*CleanupResult, error) {
	if tm.cleanupTask == nil {
		return nil, ErrTaskDisabled
	}
	return tm.cleanupTask.RunOnce(ctx)
}

// ==================== 状态查询 ====================

// Status 获取任务状态
func (tm *TaskManager) Status() map[string]bool {
	return map[string]bool{
		"cleanup": tm.cleanupTask != nil,
		"sweep":   tm.sweepTask != nil,
	}
}

// ==================== 错误定义 ====================

type TaskError string

func (e TaskError) Error() string { return string(e) }

const (
	ErrTaskDisabled TaskError = "task is disabled"
	ErrTaskRunning  TaskError = "task is already running"
)
