package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 服务全部配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Log      LogConfig      `mapstructure:"log"`
	Task     TaskConfig     `mapstructure:"task"`
	Login    LoginConfig    `mapstructure:"login"`
	Admin    AdminConfig    `mapstructure:"admin"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug | release | test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LogLevel        string        `mapstructure:"log_level"` // silent | error | warn | info
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	AccessTTL  time.Duration `mapstructure:"access_ttl"`
	RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
	Issuer     string        `mapstructure:"issuer"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type StorageConfig struct {
	Provider  string `mapstructure:"provider"` // s3 | local
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Endpoint  string `mapstructure:"endpoint"` // S3 兼容存储（MinIO / R2）
	CDNDomain string `mapstructure:"cdn_domain"`
	BasePath  string `mapstructure:"base_path"`
	LocalDir  string `mapstructure:"local_dir"`
	LocalURL  string `mapstructure:"local_url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type TaskConfig struct {
	CleanupSpec   string `mapstructure:"cleanup_spec"`
	RetentionDays int    `mapstructure:"retention_days"`
	Concurrency   int    `mapstructure:"concurrency"`
}

// AdminConfig 首个平台管理员，只在管理员表为空时创建
type AdminConfig struct {
	BootstrapUsername string `mapstructure:"bootstrap_username"`
	BootstrapPassword string `mapstructure:"bootstrap_password"`
}

type LoginConfig struct {
	MaxFailures int           `mapstructure:"max_failures"`
	Window      time.Duration `mapstructure:"window"`
}

// defaults 所有键都有默认值，环境变量才能覆盖未出现在配置文件中的键
func defaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.dsn", "host=localhost user=postgres password=postgres dbname=order_dash port=5432 sslmode=disable TimeZone=UTC")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_ttl", 2*time.Hour)
	v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("jwt.issuer", "order-dash")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "oms:")

	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.region", "")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.cdn_domain", "")
	v.SetDefault("storage.base_path", "")
	v.SetDefault("storage.local_dir", "./data/archive")
	v.SetDefault("storage.local_url", "/archive")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("task.cleanup_spec", "0 3 * * *")
	v.SetDefault("task.retention_days", 30)
	v.SetDefault("task.concurrency", 4)

	v.SetDefault("login.max_failures", 5)
	v.SetDefault("login.window", 15*time.Minute)

	v.SetDefault("admin.bootstrap_username", "")
	v.SetDefault("admin.bootstrap_password", "")
}

// Load 读取配置文件（可为空）并叠加 OMS_ 前缀的环境变量
// 例如 OMS_DATABASE_DSN 覆盖 database.dsn
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix("OMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 启动前检查
func (c *Config) Validate() error {
	if len(c.JWT.Secret) < 16 {
		return errors.New("jwt.secret 至少 16 个字符（OMS_JWT_SECRET）")
	}
	if c.JWT.AccessTTL <= 0 || c.JWT.RefreshTTL <= 0 {
		return errors.New("jwt 有效期必须大于 0")
	}
	switch c.Storage.Provider {
	case "s3":
		if c.Storage.Bucket == "" {
			return errors.New("storage.bucket 不能为空")
		}
	case "local":
	default:
		return fmt.Errorf("不支持的存储类型: %s", c.Storage.Provider)
	}
	if c.Admin.BootstrapUsername != "" && len(c.Admin.BootstrapPassword) < 8 {
		return errors.New("admin.bootstrap_password 至少 8 个字符")
	}
	if c.Task.RetentionDays <= 0 {
		return errors.New("task.retention_days 必须大于 0")
	}
	return nil
}
