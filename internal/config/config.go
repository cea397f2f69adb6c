package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

// Config holds every runtime setting of the API.
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogJSON   bool
	StoreKind string

	// memory store
	MemoryLatency time.Duration
	SeedDemoData  bool

	// postgres store
	DatabaseURL string

	// dynamodb store (client settings are read by infrastructure/database)
	EstimationsTable string
	ProjectsTable    string
	UsersTable       string

	SessionTTL         time.Duration
	LoginRatePerMinute int

	// Extra origins allowed to open the live pricing websocket.
	WSAllowedOrigins []string
}

var ErrInvalidStoreDriver = errors.New("invalid STORE_DRIVER")

// Load reads configuration from the environment after loading .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	cfg := &Config{
		Port:             getenvDefault("PORT", "8080"),
		GinMode:          getenvDefault("GIN_MODE", "debug"),
		LogLevel:         getenvDefault("LOG_LEVEL", "info"),
		LogJSON:          strings.ToLower(getenvDefault("LOG_FORMAT", "json")) == "json",
		StoreKind:        strings.ToLower(getenvDefault("STORE_DRIVER", StoreMemory)),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		EstimationsTable: getenvDefault("ESTIMATIONS_TABLE", "estimations"),
		ProjectsTable:    getenvDefault("PROJECTS_TABLE", "projects"),
		UsersTable:       getenvDefault("USERS_TABLE", "users"),
	}

	var err error
	if cfg.MemoryLatency, err = durationEnv("MEMORY_STORE_LATENCY", 0); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.LoginRatePerMinute, err = intEnv("LOGIN_RATE_PER_MINUTE", 10); err != nil {
		return nil, err
	}
	cfg.SeedDemoData, _ = strconv.ParseBool(os.Getenv("SEED_DEMO_DATA"))
	cfg.WSAllowedOrigins = listEnv("WS_ALLOWED_ORIGINS")

	switch cfg.StoreKind {
	case StoreMemory, StoreDynamoDB:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required for the postgres store")
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStoreDriver, cfg.StoreKind)
	}
	if cfg.SessionTTL <= 0 {
		return nil, errors.New("SESSION_TTL must be positive")
	}
	if cfg.LoginRatePerMinute <= 0 {
		return nil, errors.New("LOGIN_RATE_PER_MINUTE must be positive")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func listEnv(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
