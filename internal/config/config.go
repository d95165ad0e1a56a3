package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 运行环境
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// 支持的数据库驱动
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	envPrefix         = "MALL"
	defaultConfigFile = "config.yaml"
)

// ==================== 配置结构 ====================

// Config 应用配置
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Swagger  SwaggerConfig  `mapstructure:"swagger"`
	Monitor  MonitorConfig  `mapstructure:"monitor"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // gin 模式: debug / release / test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig 数据库连接配置
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"` // 非空时忽略 host/port 等字段
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	Timezone        string        `mapstructure:"timezone"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout"`
	SlowThreshold   time.Duration `mapstructure:"slow_threshold"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	Tracing         bool          `mapstructure:"tracing"`
}

// LogConfig 日志配置，File 为空时输出到 stdout
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type SwaggerConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// MonitorConfig 后台监控任务配置
type MonitorConfig struct {
	PoolStatsSpec string `mapstructure:"pool_stats_spec"` // cron 表达式（含秒），为空则不启动
}

// ==================== 加载 ====================

// Load 读取配置
// 优先级: 环境变量 (MALL_*) > 配置文件 > 环境档案默认值
// CONFIG_FILE 指定配置文件路径，文件不存在时只使用环境变量与默认值
func Load() (*Config, error) {
	// .env 不存在不算错误
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	env := strings.ToLower(strings.TrimSpace(os.Getenv(envPrefix + "_APP_ENV")))
	if env == "" {
		env = EnvDevelopment
	}
	setDefaults(v, env)

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = defaultConfigFile
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	return decode(v)
}

// LoadProfile 只使用指定环境档案的默认值，不读取文件和环境变量
func LoadProfile(env string) (*Config, error) {
	v := viper.New()
	setDefaults(v, env)
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults 环境档案默认值
func setDefaults(v *viper.Viper, env string) {
	v.SetDefault("app.env", env)

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.host", "database")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "example")
	v.SetDefault("database.name", "my_database")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.query_timeout", 5*time.Second)
	v.SetDefault("database.slow_threshold", 200*time.Millisecond)
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.tracing", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 30)

	v.SetDefault("cors.allowed_origins", []string{})
	v.SetDefault("swagger.enabled", true)
	v.SetDefault("monitor.pool_stats_spec", "0 */5 * * * *")

	switch env {
	case EnvProduction:
		v.SetDefault("server.mode", "release")
		v.SetDefault("database.password", "password")
		v.SetDefault("swagger.enabled", false)
		v.SetDefault("log.level", "warn")
	case EnvTesting:
		v.SetDefault("server.mode", "test")
		v.SetDefault("database.driver", DriverSQLite)
		v.SetDefault("database.dsn", "file::memory:?cache=shared")
		v.SetDefault("database.auto_migrate", true)
		v.SetDefault("monitor.pool_stats_spec", "")
		v.SetDefault("log.format", "text")
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.App.Env {
	case EnvDevelopment, EnvProduction, EnvTesting:
	default:
		return fmt.Errorf("未知的运行环境: %q", c.App.Env)
	}
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("不支持的数据库驱动: %q", c.Database.Driver)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("无效的端口: %d", c.Server.Port)
	}
	if c.Database.QueryTimeout <= 0 {
		return errors.New("database.query_timeout 必须大于 0")
	}
	if _, err := time.LoadLocation(c.Database.Timezone); err != nil {
		return fmt.Errorf("无效的时区 %q: %w", c.Database.Timezone, err)
	}
	return nil
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.App.Env == EnvProduction
}

// Location 数据库时区，已在 Validate 中校验
func (d DatabaseConfig) Location() *time.Location {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Addr HTTP 监听地址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
