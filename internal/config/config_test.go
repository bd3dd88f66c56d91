package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "AIRPORTS_API_KEY", "AIRPORTS_BASE_URL", "LOOKUP_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.BaseURL != defaultBaseURL {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.LookupTimeout != 5*time.Second || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts %+v", cfg)
	}
	if err := cfg.RequireAPIKey(); err == nil {
		t.Fatal("expected missing api key error")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AIRPORTS_API_KEY", " secret ")
	t.Setenv("AIRPORTS_BASE_URL", "http://localhost:1234/v1")
	t.Setenv("LOOKUP_TIMEOUT", "750ms")
	t.Setenv("SHUTDOWN_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.APIKey != "secret" || cfg.BaseURL != "http://localhost:1234/v1" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.LookupTimeout != 750*time.Millisecond {
		t.Fatalf("lookup timeout = %v", cfg.LookupTimeout)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetDurationRejectsBadValues(t *testing.T) {
	for _, v := range []string{"soon", "-1s", "0s"} {
		t.Setenv("LOOKUP_TIMEOUT", v)
		if _, err := Load(); err == nil {
			t.Errorf("LOOKUP_TIMEOUT=%q: expected error", v)
		}
	}
}
