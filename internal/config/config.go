package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr          string  `yaml:"addr"`
		RatePerSecond float64 `yaml:"rate_per_second"`
		Burst         int     `yaml:"burst"`
	} `yaml:"server"`
	Scenarios struct {
		Dir string `yaml:"dir"`
	} `yaml:"scenarios"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Cache struct {
		Backend   string        `yaml:"backend"`
		TTL       time.Duration `yaml:"ttl"`
		RedisAddr string        `yaml:"redis_addr"`
	} `yaml:"cache"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Report struct {
		WebhookURL string `yaml:"webhook_url"`
		Proxy      string `yaml:"proxy"`
	} `yaml:"report"`
}

// LoadEnv loads a .env file into the process environment if one exists.
// Variables already set in the environment win.
func LoadEnv(path string) {
	err := godotenv.Load(path)
	switch {
	case err == nil:
		log.Printf("[INFO] loaded environment from %s", path)
	case errors.Is(err, os.ErrNotExist):
	default:
		log.Printf("[WARN] load %s: %v", path, err)
	}
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Server.RatePerSecond = f
		}
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Burst = n
		}
	}
	if v := os.Getenv("SCENARIOS_DIR"); v != "" {
		cfg.Scenarios.Dir = v
	}
	if v := os.Getenv("CRON_PROJECT"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = d
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REPORT_WEBHOOK_URL"); v != "" {
		cfg.Report.WebhookURL = v
	}
	if v := os.Getenv("REPORT_PROXY"); v != "" {
		cfg.Report.Proxy = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.RatePerSecond == 0 {
		cfg.Server.RatePerSecond = 10
	}
	if cfg.Server.Burst == 0 {
		cfg.Server.Burst = 30
	}
	if cfg.Scenarios.Dir == "" {
		cfg.Scenarios.Dir = "scenarios"
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "0 0 6 * * 1"
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = CacheMemory
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 30 * time.Minute
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.RatePerSecond <= 0 {
		return fmt.Errorf("server.rate_per_second must be positive")
	}
	if c.Server.Burst <= 0 {
		return fmt.Errorf("server.burst must be positive")
	}
	switch c.Cache.Backend {
	case CacheMemory:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("cache.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("cache.backend %q must be %q or %q", c.Cache.Backend, CacheMemory, CacheRedis)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	return nil
}
