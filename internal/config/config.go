package config

import "os"

// Config is read from the environment. The zero-config default is a
// local SQLite file; pointing STORE_DRIVER/STORE_DSN at MySQL works
// against a pre-created schema.
type Config struct {
	StoreDriver string
	StoreDSN    string
	HTTPAddr    string
	RedisAddr   string // empty disables low-stock alert publishing
}

func Load() Config {
	return Config{
		StoreDriver: env("STORE_DRIVER", "sqlite3"),
		StoreDSN:    env("STORE_DSN", "file:inventory.db?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
