// Package kv 提供会话、Token 黑名单等使用的简单键值存储
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrMiss 键不存在或已过期
var ErrMiss = errors.New("cache miss")

// KV 键值存储接口
// ttl <= 0 表示永不过期
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
