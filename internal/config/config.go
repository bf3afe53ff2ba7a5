// Package config loads the service configuration from defaults, an optional
// TOML file, a .env file and AUCTION_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Storage    StorageConfig    `toml:"storage"`
	Postgres   PostgresConfig   `toml:"postgres"`
	Redis      RedisConfig      `toml:"redis"`
	NATS       NATSConfig       `toml:"nats"`
	Settlement SettlementConfig `toml:"settlement"`
	Scheduler  SchedulerConfig  `toml:"scheduler"`
	Outbox     OutboxConfig     `toml:"outbox"`
	LogLevel   string           `toml:"log_level"`
}

type ServerConfig struct {
	Addr            string   `toml:"addr"`
	CronKey         string   `toml:"cron_key"`
	ReadTimeout     duration `toml:"read_timeout"`
	WriteTimeout    duration `toml:"write_timeout"`
	ShutdownTimeout duration `toml:"shutdown_timeout"`
	SeedDemoData    bool     `toml:"seed_demo_data"`
}

type StorageConfig struct {
	Driver string `toml:"driver"` // memory | postgres
}

type PostgresConfig struct {
	DSN           string `toml:"dsn"`
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	Database      string `toml:"database"`
	User          string `toml:"user"`
	Password      string `toml:"password"`
	SSLMode       string `toml:"ssl_mode"`
	MaxConns      int    `toml:"max_conns"`
	MinConns      int    `toml:"min_conns"`
	RunMigrations bool   `toml:"run_migrations"`
}

type RedisConfig struct {
	Enabled  bool     `toml:"enabled"`
	Addr     string   `toml:"addr"`
	Password string   `toml:"password"`
	DB       int      `toml:"db"`
	LockTTL  duration `toml:"lock_ttl"`
	LockWait duration `toml:"lock_wait"`
}

type NATSConfig struct {
	Enabled       bool   `toml:"enabled"`
	URL           string `toml:"url"`
	SubjectPrefix string `toml:"subject_prefix"`
}

type SettlementConfig struct {
	AdminUserID      string   `toml:"admin_user_id"`
	SweepFeePolicy   string   `toml:"sweep_fee_policy"` // none | commission
	EnforceReserve   bool     `toml:"enforce_reserve"`
	EndingSoonWindow duration `toml:"ending_soon_window"`
}

type SchedulerConfig struct {
	Enabled            bool     `toml:"enabled"`
	SweepInterval      duration `toml:"sweep_interval"`
	EndingSoonInterval duration `toml:"ending_soon_interval"`
}

type OutboxConfig struct {
	Buffer int `toml:"buffer"`
}

// duration lets TOML carry strings like "15m".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("config: parse duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Defaults returns a configuration that runs a single in-memory instance.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     duration{10 * time.Second},
			WriteTimeout:    duration{15 * time.Second},
			ShutdownTimeout: duration{10 * time.Second},
		},
		Storage: StorageConfig{Driver: "memory"},
		Postgres: PostgresConfig{
			Host:          "localhost",
			Port:          5432,
			Database:      "auction",
			User:          "auction",
			SSLMode:       "disable",
			MaxConns:      10,
			RunMigrations: true,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			LockTTL:  duration{10 * time.Second},
			LockWait: duration{3 * time.Second},
		},
		NATS: NATSConfig{
			URL:           "nats://localhost:4222",
			SubjectPrefix: "auction",
		},
		Settlement: SettlementConfig{
			SweepFeePolicy:   "none",
			EndingSoonWindow: duration{time.Hour},
		},
		Scheduler: SchedulerConfig{
			Enabled:            true,
			SweepInterval:      duration{time.Hour},
			EndingSoonInterval: duration{15 * time.Minute},
		},
		Outbox:   OutboxConfig{Buffer: 256},
		LogLevel: "info",
	}
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, "server: addr must not be empty")
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}

	switch c.Storage.Driver {
	case "memory":
	case "postgres":
		if c.Postgres.DSN == "" && c.Postgres.Host == "" {
			errs = append(errs, "postgres: either dsn or host must be set")
		}
	default:
		errs = append(errs, fmt.Sprintf("storage: unknown driver %q (valid: memory, postgres)", c.Storage.Driver))
	}

	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			errs = append(errs, "redis: addr is required when enabled")
		}
		if c.Redis.LockTTL.Duration <= 0 {
			errs = append(errs, "redis: lock_ttl must be positive")
		}
	}
	if c.NATS.Enabled && c.NATS.URL == "" {
		errs = append(errs, "nats: url is required when enabled")
	}

	switch c.Settlement.SweepFeePolicy {
	case "none", "commission":
	default:
		errs = append(errs, fmt.Sprintf("settlement: unknown sweep_fee_policy %q (valid: none, commission)", c.Settlement.SweepFeePolicy))
	}
	if c.Settlement.EndingSoonWindow.Duration <= 0 {
		errs = append(errs, "settlement: ending_soon_window must be positive")
	}

	if c.Scheduler.Enabled {
		if c.Scheduler.SweepInterval.Duration <= 0 || c.Scheduler.EndingSoonInterval.Duration <= 0 {
			errs = append(errs, "scheduler: intervals must be positive")
		}
	}
	if c.Outbox.Buffer < 0 {
		errs = append(errs, "outbox: buffer must not be negative")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}
	return nil
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.Server.CronKey != "" {
		c.Server.CronKey = "***"
	}
	if c.Postgres.Password != "" {
		c.Postgres.Password = "***"
	}
	if c.Postgres.DSN != "" {
		c.Postgres.DSN = "***"
	}
	if c.Redis.Password != "" {
		c.Redis.Password = "***"
	}
	return c
}
