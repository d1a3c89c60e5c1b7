package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultGoalMinutes = 60

type Config struct {
	DataDir            string
	DBPath             string
	DefaultGoalMinutes int
	Location           *time.Location
}

type fileConfig struct {
	Timezone           string `yaml:"timezone"`
	DefaultGoalMinutes int    `yaml:"default_goal_minutes"`
	DBPath             string `yaml:"db_path"`
}

// Load builds the runtime configuration for a data directory, applying
// overrides from an optional config.yaml inside it.
func Load(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}

	cfg := Config{
		DataDir:            dataDir,
		DBPath:             filepath.Join(dataDir, "goalt.db"),
		DefaultGoalMinutes: DefaultGoalMinutes,
		Location:           time.Local,
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	fc := fileConfig{}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
		if !filepath.IsAbs(cfg.DBPath) {
			cfg.DBPath = filepath.Join(dataDir, fc.DBPath)
		}
	}
	if fc.DefaultGoalMinutes > 0 {
		cfg.DefaultGoalMinutes = fc.DefaultGoalMinutes
	}
	if fc.Timezone != "" {
		loc, err := time.LoadLocation(fc.Timezone)
		if err != nil {
			return Config{}, fmt.Errorf("load timezone %q: %w", fc.Timezone, err)
		}
		cfg.Location = loc
	}
	return cfg, nil
}
