package shared

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	APIBaseURL  string
	HTTPAddr    string // mockapi listener
	MetricsAddr string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	HistoryPath string
	CacheTTL    time.Duration
	ThrottleRPS int // mockapi throttle; 0 disables
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		APIBaseURL:  env("API_BASE_URL", "http://localhost:8000"),
		HTTPAddr:    env("HTTP_ADDR", ":8000"),
		MetricsAddr: env("METRICS_ADDR", ""),
		RedisAddr:   env("REDIS_ADDR", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),
		HistoryPath: env("HISTORY_PATH", defaultHistoryPath()),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		ThrottleRPS: atoi("THROTTLE_RPS", 0),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "foodctl-history.db"
	}
	return filepath.Join(home, ".foodctl", "history.db")
}
