package middleware

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// ==================== LoginThrottle 登录限流 ====================

// LoginThrottle 登录失败计数器
// 同一 key（客户端 IP + 店铺）在窗口内失败达到上限后拒绝继续尝试，直到窗口结束
type LoginThrottle struct {
	maxFailures int
	window      time.Duration
	entries     sync.Map // key -> *throttleEntry
	now         func() time.Time
}

type throttleEntry struct {
	mu          sync.Mutex
	failures    int
	windowStart time.Time
}

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

func NewLoginThrottle(maxFailures int, window time.Duration) *LoginThrottle {
	if maxFailures <= 0 {
		maxFailures = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginThrottle{maxFailures: maxFailures, window: window, now: time.Now}
}

// LoginKey 生成限流键
func LoginKey(clientIP, store string) string {
	return fmt.Sprintf("login:%s:%s", clientIP, strings.ToLower(strings.TrimSpace(store)))
}

// Check 仅检查，不计数
func (t *LoginThrottle) Check(key string) CheckResult {
	actual, ok := t.entries.Load(key)
	if !ok {
		return CheckResult{Allowed: true}
	}
	entry := actual.(*throttleEntry)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	elapsed := t.now().Sub(entry.windowStart)
	if elapsed >= t.window {
		return CheckResult{Allowed: true}
	}
	if entry.failures >= t.maxFailures {
		return CheckResult{Allowed: false, RetryAfter: t.window - elapsed}
	}
	return CheckResult{Allowed: true}
}

// Fail 记录一次失败
func (t *LoginThrottle) Fail(key string) {
	actual, _ := t.entries.LoadOrStore(key, &throttleEntry{})
	entry := actual.(*throttleEntry)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := t.now()
	if now.Sub(entry.windowStart) >= t.window {
		entry.windowStart = now
		entry.failures = 0
	}
	entry.failures++
}

// Reset 登录成功后清零
func (t *LoginThrottle) Reset(key string) {
	t.entries.Delete(key)
}

// Sweep 清理窗口已结束的条目
func (t *LoginThrottle) Sweep() int {
	now := t.now()
	n := 0
	t.entries.Range(func(k, v interface{}) bool {
		entry := v.(*throttleEntry)
		entry.mu.Lock()
		expired := now.Sub(entry.windowStart) >= t.window
		entry.mu.Unlock()
		if expired {
			t.entries.Delete(k)
			n++
		}
		return true
	})
	return n
}

// FormatRetryMessage 格式化重试提示信息
func FormatRetryMessage(d time.Duration) string {
	seconds := int(d.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("尝试次数过多，请 %d 秒后重试", seconds)
	}

	minutes := seconds / 60
	remainingSeconds := seconds % 60
	if remainingSeconds == 0 {
		return fmt.Sprintf("尝试次数过多，请 %d 分钟后重试", minutes)
	}
	return fmt.Sprintf("尝试次数过多，请 %d 分 %d 秒后重试", minutes, remainingSeconds)
}
