package task

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper 定期清理过期的内存条目（登录限流计数、内存 KV）
type Sweeper interface {
	Sweep() int
}

// SweepTask 内存清理任务
type SweepTask struct {
	sweepers map[string]Sweeper
	cron     *cron.Cron
	interval time.Duration
	log      *zap.Logger
}

func NewSweepTask(interval time.Duration, log *zap.Logger) *SweepTask {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &SweepTask{
		sweepers: make(map[string]Sweeper),
		cron:     cron.New(),
		interval: interval,
		log:      log.Named("sweep"),
	}
}

// Register 在 Start 之前调用
func (t *SweepTask) Register(name string, s Sweeper) {
	if s != nil {
		t.sweepers[name] = s
	}
}

func (t *SweepTask) Start() {
	t.cron.Schedule(cron.Every(t.interval), cron.FuncJob(func() { t.Execute() }))
	t.cron.Start()
	t.log.Info("内存清理任务已启动", zap.Duration("interval", t.interval), zap.Int("sweepers", len(t.sweepers)))
}

func (t *SweepTask) Stop() {
	<-t.cron.Stop().Done()
}

// Execute 执行一次清理，返回各项清理的条目数
func (t *SweepTask) Execute() map[string]int {
	removed := make(map[string]int, len(t.sweepers))
	for name, s := range t.sweepers {
		n := s.Sweep()
		removed[name] = n
		if n > 0 {
			t.log.Debug("清理过期条目", zap.String("name", name), zap.Int("removed", n))
		}
	}
	return removed
}
