package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load merges the TOML file at path (skipped when path is empty or missing)
// over Defaults, loads .env, applies AUCTION_* overrides and validates.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	// Server
	setStr(&cfg.Server.Addr, "AUCTION_SERVER_ADDR")
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
	setStr(&cfg.Server.CronKey, "AUCTION_CRON_KEY")
	setDuration(&cfg.Server.ReadTimeout, "AUCTION_SERVER_READ_TIMEOUT")
	setDuration(&cfg.Server.WriteTimeout, "AUCTION_SERVER_WRITE_TIMEOUT")
	setDuration(&cfg.Server.ShutdownTimeout, "AUCTION_SERVER_SHUTDOWN_TIMEOUT")
	setBool(&cfg.Server.SeedDemoData, "AUCTION_SEED_DEMO_DATA")

	// Storage
	setStr(&cfg.Storage.Driver, "AUCTION_STORAGE_DRIVER")
	setStr(&cfg.Postgres.DSN, "AUCTION_POSTGRES_DSN")
	setStr(&cfg.Postgres.Host, "AUCTION_POSTGRES_HOST")
	setInt(&cfg.Postgres.Port, "AUCTION_POSTGRES_PORT")
	setStr(&cfg.Postgres.Database, "AUCTION_POSTGRES_DATABASE")
	setStr(&cfg.Postgres.User, "AUCTION_POSTGRES_USER")
	setStr(&cfg.Postgres.Password, "AUCTION_POSTGRES_PASSWORD")
	setStr(&cfg.Postgres.SSLMode, "AUCTION_POSTGRES_SSL_MODE")
	setInt(&cfg.Postgres.MaxConns, "AUCTION_POSTGRES_MAX_CONNS")
	setInt(&cfg.Postgres.MinConns, "AUCTION_POSTGRES_MIN_CONNS")
	setBool(&cfg.Postgres.RunMigrations, "AUCTION_POSTGRES_RUN_MIGRATIONS")

	// Redis
	setBool(&cfg.Redis.Enabled, "AUCTION_REDIS_ENABLED")
	setStr(&cfg.Redis.Addr, "AUCTION_REDIS_ADDR")
	setStr(&cfg.Redis.Password, "AUCTION_REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "AUCTION_REDIS_DB")
	setDuration(&cfg.Redis.LockTTL, "AUCTION_REDIS_LOCK_TTL")
	setDuration(&cfg.Redis.LockWait, "AUCTION_REDIS_LOCK_WAIT")

	// NATS
	setBool(&cfg.NATS.Enabled, "AUCTION_NATS_ENABLED")
	setStr(&cfg.NATS.URL, "AUCTION_NATS_URL")
	setStr(&cfg.NATS.SubjectPrefix, "AUCTION_NATS_SUBJECT_PREFIX")

	// Settlement
	setStr(&cfg.Settlement.AdminUserID, "AUCTION_ADMIN_USER_ID")
	setStr(&cfg.Settlement.SweepFeePolicy, "AUCTION_SWEEP_FEE_POLICY")
	setBool(&cfg.Settlement.EnforceReserve, "AUCTION_ENFORCE_RESERVE")
	setDuration(&cfg.Settlement.EndingSoonWindow, "AUCTION_ENDING_SOON_WINDOW")

	// Scheduler
	setBool(&cfg.Scheduler.Enabled, "AUCTION_SCHEDULER_ENABLED")
	setDuration(&cfg.Scheduler.SweepInterval, "AUCTION_SWEEP_INTERVAL")
	setDuration(&cfg.Scheduler.EndingSoonInterval, "AUCTION_ENDING_SOON_INTERVAL")

	setInt(&cfg.Outbox.Buffer, "AUCTION_OUTBOX_BUFFER")
	setStr(&cfg.LogLevel, "AUCTION_LOG_LEVEL")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}
