package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// FileKV 单个 YAML 文件持久化，供命令行客户端保存会话
// 每次操作都重新读文件，多个进程之间最后写入者生效
type FileKV struct {
	path string
	mu   sync.Mutex
}

type fileEntry struct {
	Value     string     `yaml:"value"`
	ExpiresAt *time.Time `yaml:"expires_at,omitempty"`
}

func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

// Path 文件路径
func (f *FileKV) Path() string { return f.path }

func (f *FileKV) load() (map[string]fileEntry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]fileEntry{}, nil
		}
		return nil, err
	}
	entries := map[string]fileEntry{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("解析 %s 失败: %w", f.path, err)
	}
	return entries, nil
}

func (f *FileKV) save(entries map[string]fileEntry) error {
	if len(entries) == 0 {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileKV) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return "", err
	}
	e, ok := entries[key]
	if !ok {
		return "", ErrMiss
	}
	if e.ExpiresAt != nil && time.Now().After(*e.ExpiresAt) {
		return "", ErrMiss
	}
	return e.Value, nil
}

func (f *FileKV) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}
	e := fileEntry{Value: value}
	if ttl > 0 {
		exp := time.Now().Add(ttl).UTC()
		e.ExpiresAt = &exp
	}
	entries[key] = e
	return f.save(entries)
}

func (f *FileKV) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(entries, k)
	}
	return f.save(entries)
}
