package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabasePath == "" {
		t.Error("DatabasePath should have a default")
	}
	if cfg.Tier != "free" {
		t.Errorf("Tier = %q, want free", cfg.Tier)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FLASHY_TIER", "pro")
	t.Setenv("FLASHY_DATABASE_PATH", "/tmp/custom.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tier != "pro" {
		t.Errorf("Tier = %q, want pro", cfg.Tier)
	}
	if cfg.DatabasePath != "/tmp/custom.db" {
		t.Errorf("DatabasePath = %q, want /tmp/custom.db", cfg.DatabasePath)
	}
}

func TestLoadRejectsUnknownTier(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FLASHY_TIER", "platinum")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown tier")
	}
}
