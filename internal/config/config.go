package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Port         string
	Env          string
	DBDriver     string
	DBDSN        string
	HistoryLimit int
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBDSN:        getEnv("DB_DSN", "./passforge.db"),
		HistoryLimit: getEnvInt("HISTORY_LIMIT", 20),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		slog.Warn("ignoring invalid integer environment variable", "key", key, "value", v)
		return fallback
	}
	return n
}
