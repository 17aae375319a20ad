package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("OMS_JWT_SECRET", "0123456789abcdef-secret")
	t.Setenv("OMS_SERVER_PORT", "9090")
	t.Setenv("OMS_LOGIN_MAX_FAILURES", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Login.MaxFailures)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, "local", cfg.Storage.Provider)
	assert.Equal(t, 30, cfg.Task.RetentionDays)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "7000"
jwt:
  secret: "file-secret-0123456789"
  access_ttl: 30m
storage:
  provider: s3
  bucket: invoices-bucket
  region: eu-west-1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, "invoices-bucket", cfg.Storage.Bucket)
}

func TestLoad_RejectsWeakSecret(t *testing.T) {
	t.Setenv("OMS_JWT_SECRET", "short")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate_Storage(t *testing.T) {
	t.Setenv("OMS_JWT_SECRET", "0123456789abcdef-secret")
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Storage.Provider = "s3"
	assert.Error(t, cfg.Validate())
	cfg.Storage.Bucket = "b"
	assert.NoError(t, cfg.Validate())

	cfg.Storage.Provider = "ftp"
	assert.Error(t, cfg.Validate())
}

func TestValidate_BootstrapAdmin(t *testing.T) {
	t.Setenv("OMS_JWT_SECRET", "0123456789abcdef-secret")
	t.Setenv("OMS_ADMIN_BOOTSTRAP_USERNAME", "root")
	t.Setenv("OMS_ADMIN_BOOTSTRAP_PASSWORD", "short")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("OMS_ADMIN_BOOTSTRAP_PASSWORD", "long-enough-password")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "root", cfg.Admin.BootstrapUsername)
}
