package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string

	APIBaseURL    string
	AssetsBaseURL string
	HTTPTimeout   time.Duration

	MidtransClientKey  string
	MidtransProduction bool

	DatabaseURL   string
	TxStoreDriver string
	RedisAddr     string

	StatusPollInterval    time.Duration
	StatusPollMaxAttempts int
	PendingPollInterval   time.Duration

	InitialBalance float64

	TraceExporter string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		APIBaseURL:    strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000/api"), "/"),
		AssetsBaseURL: strings.TrimRight(getEnv("ASSETS_BASE_URL", "http://localhost:5000"), "/"),
		HTTPTimeout:   getDuration("HTTP_TIMEOUT", 15*time.Second),

		MidtransClientKey:  getEnv("MIDTRANS_CLIENT_KEY", ""),
		MidtransProduction: getBool("MIDTRANS_PRODUCTION", false),

		DatabaseURL:   getEnv("DATABASE_URL", "file:tradejournal.db?_busy_timeout=5000"),
		TxStoreDriver: strings.ToLower(getEnv("TXSTORE_DRIVER", "sql")),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),

		StatusPollInterval:    getDuration("STATUS_POLL_INTERVAL", 3*time.Second),
		StatusPollMaxAttempts: getInt("STATUS_POLL_MAX_ATTEMPTS", 60),
		PendingPollInterval:   getDuration("PENDING_POLL_INTERVAL", 30*time.Second),

		InitialBalance: getFloat("INITIAL_BALANCE", 10000),

		TraceExporter: strings.ToLower(getEnv("OTEL_TRACES_EXPORTER", "none")),
	}

	switch cfg.TxStoreDriver {
	case "sql", "redis", "memory":
	default:
		return nil, fmt.Errorf("unsupported TXSTORE_DRIVER %q", cfg.TxStoreDriver)
	}

	if cfg.MidtransClientKey == "" {
		fmt.Fprintln(os.Stderr, "WARNING: MIDTRANS_CLIENT_KEY is empty, the payment widget will not load")
	}

	return cfg, nil
}

// SnapScriptURL is the snap.js location matching the configured environment.
func (c *Config) SnapScriptURL() string {
	if c.MidtransProduction {
		return "https://app.midtrans.com/snap/snap.js"
	}
	return "https://app.sandbox.midtrans.com/snap/snap.js"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		fmt.Fprintf(os.Stderr, "WARNING: invalid %s=%q, using default %s\n", key, v, def)
		return def
	}
	return d
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "WARNING: invalid %s=%q, using default %d\n", key, v, def)
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		fmt.Fprintf(os.Stderr, "WARNING: invalid %s=%q, using default %g\n", key, v, def)
		return def
	}
	return f
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
