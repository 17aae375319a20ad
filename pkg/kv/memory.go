package kv

import (
	"context"
	"sync"
	"time"
)

// MemoryKV 进程内存储，使用 sync.Map 保证并发安全
type MemoryKV struct {
	items sync.Map
}

// memoryItem 内部结构，包含值和过期时间
type memoryItem struct {
	value     string
	expiresAt time.Time // 零值表示不过期
}

func NewMemoryKV() *MemoryKV { return &MemoryKV{} }

// Get 获取并验证是否过期
func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	val, ok := m.items.Load(key)
	if !ok {
		return "", ErrMiss
	}
	item := val.(memoryItem)
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		m.items.Delete(key) // 懒删除
		return "", ErrMiss
	}
	return item.value, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	item := memoryItem{value: value}
	if ttl > 0 {
		item.expiresAt = time.Now().Add(ttl)
	}
	m.items.Store(key, item)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.items.Delete(k)
	}
	return nil
}

// Sweep 清理已过期的键，返回清理数量
func (m *MemoryKV) Sweep() int {
	now := time.Now()
	n := 0
	m.items.Range(func(k, v interface{}) bool {
		item := v.(memoryItem)
		if !item.expiresAt.IsZero() && now.After(item.expiresAt) {
			m.items.Delete(k)
			n++
		}
		return true
	})
	return n
}
