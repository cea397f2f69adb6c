package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "SESSION_TTL", "LOGIN_RATE_PER_MINUTE", "MEMORY_STORE_LATENCY", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.StoreKind != StoreMemory || cfg.SessionTTL != 24*time.Hour || cfg.LoginRatePerMinute != 10 || !cfg.LogJSON {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "DynamoDB")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("MEMORY_STORE_LATENCY", "150ms")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("WS_ALLOWED_ORIGINS", " https://app.example.com, ,http://localhost:5173")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.StoreKind != StoreDynamoDB || cfg.SessionTTL != 2*time.Hour || cfg.MemoryLatency != 150*time.Millisecond || cfg.LogJSON {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.WSAllowedOrigins) != 2 || cfg.WSAllowedOrigins[0] != "https://app.example.com" || cfg.WSAllowedOrigins[1] != "http://localhost:5173" {
		t.Fatalf("unexpected origins: %q", cfg.WSAllowedOrigins)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		if _, err := Load(); !errors.Is(err, ErrInvalidStoreDriver) {
			t.Fatalf("expected ErrInvalidStoreDriver, got %v", err)
		}
	})

	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("duration", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "")
		t.Setenv("SESSION_TTL", "forever")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
