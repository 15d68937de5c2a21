package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment    string `toml:"environment"`
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	PrometheusPort int    `toml:"prometheus_port"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	// postgres
	DBHost string `toml:"db_host"`
	DBPort string `toml:"db_port"`
	DBName string `toml:"db_name"`

	// redis, used for rate limiting
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// requests per minute allowed on the message endpoint, per caller
	RateLimitPerMinute int `toml:"rate_limit_per_minute"`

	// chart renderer collaborator; empty means raw chart specs are served
	ChartRendererURL string `toml:"chart_renderer_url"`

	// size of the in-process personal bests cache, in megabytes
	BestsCacheSizeMB int `toml:"bests_cache_size_mb"`

	HoneycombEnabled bool `toml:"honeycomb_enabled"`
	SentryEnabled    bool `toml:"sentry_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var configToml Toml
	if _, err := toml.DecodeFile(path, &configToml); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}
	cfg, err := configToml.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s is empty", env)
	}
	return cfg, nil
}
