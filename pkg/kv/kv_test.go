package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKV(t *testing.T, store KV) {
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, store.Set(ctx, "a", "1", 0))
	require.NoError(t, store.Set(ctx, "b", "2", time.Hour))

	v, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	require.NoError(t, store.Set(ctx, "a", "updated", 0))
	v, _ = store.Get(ctx, "a")
	assert.Equal(t, "updated", v)

	require.NoError(t, store.Delete(ctx, "a", "b", "never-set"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryKV(t *testing.T) {
	testKV(t, NewMemoryKV())
}

func TestMemoryKV_Expire(t *testing.T) {
	m := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "short", "x", time.Millisecond))
	require.NoError(t, m.Set(ctx, "long", "y", time.Hour))
	time.Sleep(5 * time.Millisecond)

	_, err := m.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, m.Set(ctx, "short2", "x", time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, m.Sweep())

	v, err := m.Get(ctx, "long")
	require.NoError(t, err)
	assert.Equal(t, "y", v)
}

func TestFileKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	testKV(t, NewFileKV(path))

	// 全部删除后文件被移除
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileKV_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	ctx := context.Background()

	require.NoError(t, NewFileKV(path).Set(ctx, "token", "abc", 0))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	v, err := NewFileKV(path).Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
}

func TestFileKV_Expired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	f := NewFileKV(path)
	ctx := context.Background()

	require.NoError(t, f.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, err := f.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestFileKV_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("::: not yaml [\n"), 0o600))

	_, err := NewFileKV(path).Get(context.Background(), "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
}
