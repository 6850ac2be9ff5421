package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultHost                        = "localhost"
	defaultPort                        = 9100
	defaultPostgresPort                = "5432"
	defaultPostgresUser                = "postgres"
	defaultRedisPort                   = "6379"
	defaultMetricsHost                 = "localhost"
	defaultMetricsPort                 = "2112"
	defaultLoginRateLimitAllowedPerMin = 15
	defaultSessionTTLHours             = 24 * 7
	defaultBlocksCacheSizeMB           = 16
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	RunMigrations  bool   `toml:"run_migrations"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// auth
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	SessionTTLHours             int `toml:"session_ttl_hours"`

	// assembled workout blocks cache, disabled when ttl is 0
	BlocksCacheSizeMB     int `toml:"blocks_cache_size_mb"`
	BlocksCacheTTLSeconds int `toml:"blocks_cache_ttl_seconds"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
		env = "development"
	case "prod", "production":
		cfg = t.Production
		env = "production"
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = env
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env, with defaults filled in.
func Load(env, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(env, string(data))
}

func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = defaultHost
	}
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.PostgresPort == "" {
		c.PostgresPort = defaultPostgresPort
	}
	if c.PostgresUser == "" {
		c.PostgresUser = defaultPostgresUser
	}
	if c.RedisPort == "" {
		c.RedisPort = defaultRedisPort
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = defaultMetricsHost
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = defaultMetricsPort
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = defaultLoginRateLimitAllowedPerMin
	}
	if c.SessionTTLHours == 0 {
		c.SessionTTLHours = defaultSessionTTLHours
	}
	if c.BlocksCacheSizeMB == 0 {
		c.BlocksCacheSizeMB = defaultBlocksCacheSizeMB
	}
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.PostgresHost == "" {
		return errors.New("postgres_host is required")
	}
	if c.PostgresDBName == "" {
		return errors.New("postgres_db_name is required")
	}
	if c.RedisHost == "" {
		return errors.New("redis_host is required")
	}
	if c.BlocksCacheTTLSeconds < 0 {
		return fmt.Errorf("blocks_cache_ttl_seconds must not be negative: %d", c.BlocksCacheTTLSeconds)
	}
	return nil
}
