package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/velora/storefront/internal/events"
)

// Catalog source modes selected at construction.
const (
	CatalogStatic = "static"
	CatalogSQLite = "sqlite"
	CatalogRemote = "remote"
)

type Config struct {
	HTTPAddr    string
	ServiceName string

	CatalogMode    string
	CatalogBaseURL string
	CatalogDelay   time.Duration
	SQLitePath     string
	MigrationsDir  string

	RedisAddr   string
	StorePrefix string

	KafkaBrokers []string
	KafkaTopic   string

	PaymentLatency  time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		ServiceName: getenv("SERVICE_NAME", "storefront"),

		CatalogMode:    getenv("CATALOG_MODE", CatalogStatic),
		CatalogBaseURL: getenv("CATALOG_BASE_URL", ""),
		CatalogDelay:   getenvMillis("CATALOG_DELAY_MS", 220*time.Millisecond),
		SQLitePath:     getenv("SQLITE_PATH", "storefront.db"),
		MigrationsDir:  getenv("MIGRATIONS_DIR", "internal/catalog/migrations"),

		RedisAddr:   getenv("REDIS_ADDR", ""),
		StorePrefix: getenv("STORE_PREFIX", "velora"),

		KafkaBrokers: splitCSV(getenv("KAFKA_BROKERS", "")),
		KafkaTopic:   getenv("KAFKA_TOPIC", events.TopicOrderSettled),

		PaymentLatency:  getenvMillis("PAYMENT_LATENCY_MS", 1600*time.Millisecond),
		RequestTimeout:  getenvMillis("REQUEST_TIMEOUT_MS", 30*time.Second),
		ShutdownTimeout: getenvMillis("SHUTDOWN_TIMEOUT_MS", 10*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvMillis(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
