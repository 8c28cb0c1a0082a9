package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration for the citator service.
type Server struct {
	Addr          string
	LedgerDir     string
	LedgerBackend string // "fs" or "postgres"
	PostgresDSN   string
	FetchTimeout  time.Duration
	Redis         RedisConfig
	CourtListener CourtListenerConfig
}

// RedisConfig holds connection settings for the optional ledger volume cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	TTL          time.Duration
}

// CourtListenerConfig carries credentials for the CourtListener search API.
// The case-search resolver is disabled when either field is empty.
type CourtListenerConfig struct {
	Username string
	Password string
}

// Enabled reports whether case-search credentials are configured.
func (c CourtListenerConfig) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CITATOR_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	ledgerDir := os.Getenv("CITATOR_LEDGER_DIR")
	if ledgerDir == "" {
		ledgerDir = "data/statutes"
	}

	backend := os.Getenv("CITATOR_LEDGER_BACKEND")
	if backend == "" {
		backend = "fs"
	}

	return Server{
		Addr:          addr,
		LedgerDir:     ledgerDir,
		LedgerBackend: backend,
		PostgresDSN:   os.Getenv("CITATOR_POSTGRES_DSN"),
		FetchTimeout:  durationEnv("CITATOR_FETCH_TIMEOUT", 10*time.Second),
		Redis: RedisConfig{
			URL:          os.Getenv("CITATOR_REDIS_URL"),
			PoolSize:     intEnv("CITATOR_REDIS_POOL_SIZE", 10),
			MinIdleConns: intEnv("CITATOR_REDIS_MIN_IDLE", 2),
			DialTimeout:  durationEnv("CITATOR_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  durationEnv("CITATOR_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: durationEnv("CITATOR_REDIS_WRITE_TIMEOUT", 3*time.Second),
			TTL:          durationEnv("CITATOR_REDIS_TTL", time.Hour),
		},
		CourtListener: CourtListenerConfig{
			Username: os.Getenv("COURTLISTENER_USERNAME"),
			Password: os.Getenv("COURTLISTENER_PASSWORD"),
		},
	}
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
