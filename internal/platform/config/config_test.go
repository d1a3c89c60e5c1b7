package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"goalt/internal/platform/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, "goalt.db") {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.DefaultGoalMinutes != config.DefaultGoalMinutes {
		t.Fatalf("DefaultGoalMinutes = %d", cfg.DefaultGoalMinutes)
	}
	if cfg.Location == nil {
		t.Fatalf("Location must default to the local zone")
	}
}

func TestLoadAppliesFileOverrides(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	contents := "timezone: Europe/Berlin\ndefault_goal_minutes: 90\ndb_path: custom.db\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultGoalMinutes != 90 {
		t.Fatalf("DefaultGoalMinutes = %d, want 90", cfg.DefaultGoalMinutes)
	}
	if cfg.Location.String() != "Europe/Berlin" {
		t.Fatalf("Location = %s", cfg.Location)
	}
	// Relative db paths anchor to the data dir.
	if cfg.DBPath != filepath.Join(dir, "custom.db") {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
}

func TestLoadRejectsBadTimezone(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("timezone: Nowhere/Atlantis\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(dir); err == nil {
		t.Fatalf("unknown timezone must fail")
	}
}

func TestLoadRequiresDataDir(t *testing.T) {
	t.Parallel()
	if _, err := config.Load(""); err == nil {
		t.Fatalf("empty data dir must fail")
	}
}
