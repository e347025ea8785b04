package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServiceName != "convert-api" {
		t.Errorf("service name = %q", cfg.ServiceName)
	}
	if cfg.RateLimitQuota != 200 {
		t.Errorf("quota = %d, want 200", cfg.RateLimitQuota)
	}
	if cfg.RateLimitWindow.Hours() != 24 {
		t.Errorf("window = %s, want 24h", cfg.RateLimitWindow)
	}
	if cfg.Addr() != ":8290" {
		t.Errorf("addr = %q", cfg.Addr())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CONVERT_API_PORT", "9001")
	t.Setenv("RATE_LIMIT_QUOTA", "50")
	t.Setenv("RATE_LIMIT_WINDOW", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr() != ":9001" {
		t.Errorf("addr = %q", cfg.Addr())
	}
	if cfg.RateLimitQuota != 50 {
		t.Errorf("quota = %d", cfg.RateLimitQuota)
	}
	if cfg.RateLimitWindow.Hours() != 1 {
		t.Errorf("window = %s", cfg.RateLimitWindow)
	}
}

func TestLoadRejectsBadQuota(t *testing.T) {
	t.Setenv("RATE_LIMIT_QUOTA", "0")
	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted zero quota")
	}
}
