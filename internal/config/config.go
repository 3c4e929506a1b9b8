package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis (rate limiting)
	RedisHost                  string `toml:"redis_host"`
	RedisPort                  string `toml:"redis_port"`
	InjuryWriteRateLimitPerMin int    `toml:"injury_write_rate_limit_per_min"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// training load evaluation thresholds
	TrainingLoadLookbackDays   int `toml:"training_load_lookback_days"`
	FatigueMinCompletedCount   int `toml:"fatigue_min_completed_count"`
	FatigueMinHardSessionCount int `toml:"fatigue_min_hard_session_count"`
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
	configBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var configsToml Toml
	if err := toml.Unmarshal(configBytes, &configsToml); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg, err := configsToml.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s not found", env)
	}

	cfg.Environment = env

	// fall back to sane training load defaults if not configured
	if cfg.TrainingLoadLookbackDays <= 0 {
		cfg.TrainingLoadLookbackDays = 7
	}
	if cfg.FatigueMinCompletedCount <= 0 {
		cfg.FatigueMinCompletedCount = 4
	}
	if cfg.FatigueMinHardSessionCount <= 0 {
		cfg.FatigueMinHardSessionCount = 2
	}
	if cfg.InjuryWriteRateLimitPerMin <= 0 {
		cfg.InjuryWriteRateLimitPerMin = 30
	}

	return cfg, nil
}
