package config

import (
	"testing"
	"time"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL_TOKENS",
		"RATE_LIMIT_REFILL_INTERVAL", "RATE_LIMIT_TTL", "RATE_LIMIT_PREFIX",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadRateLimitConfig()
	if !cfg.Enabled {
		t.Error("Enabled = false; want true by default")
	}
	if cfg.Capacity != 5 {
		t.Errorf("Capacity = %d; want 5", cfg.Capacity)
	}
	if cfg.RefillInterval != 10*time.Second {
		t.Errorf("RefillInterval = %v; want 10s", cfg.RefillInterval)
	}
	if cfg.Prefix != "rl" {
		t.Errorf("Prefix = %q; want \"rl\"", cfg.Prefix)
	}
}

func TestLoadRateLimitConfigFloors(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-2")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
	t.Setenv("RATE_LIMIT_TTL", "30s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Errorf("Capacity = %d; want floor of 1", cfg.Capacity)
	}
	if cfg.RefillTokens != 1 {
		t.Errorf("RefillTokens = %d; want floor of 1", cfg.RefillTokens)
	}
	// TTL is raised to cover several refill intervals.
	if cfg.TTL != 5*time.Minute {
		t.Errorf("TTL = %v; want 5m", cfg.TTL)
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "yes")
	if !envBool("TEST_BOOL", false) {
		t.Error("envBool(\"yes\") = false; want true")
	}
	t.Setenv("TEST_BOOL", "off")
	if envBool("TEST_BOOL", true) {
		t.Error("envBool(\"off\") = true; want false")
	}
	t.Setenv("TEST_BOOL", "maybe")
	if !envBool("TEST_BOOL", true) {
		t.Error("envBool(invalid) should return the default")
	}
}
