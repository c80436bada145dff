package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	Log      LogConfig      `yaml:"log"`
	Demo     DemoConfig     `yaml:"demo"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type FixturesConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type DemoConfig struct {
	ProgressPeriod time.Duration `yaml:"progress_period"`
	LeadPeriodMin  time.Duration `yaml:"lead_period_min"`
	LeadJitter     time.Duration `yaml:"lead_jitter"`
	LeadChance     float64       `yaml:"lead_chance"`
	Seed           int64         `yaml:"seed"`
}

// Load reads configuration from an optional YAML file and environment
// variables. A Seed of 0 means seed from the current time.
func Load() (Config, error) {
	cfg := Config{
		Storage: StorageConfig{
			Path: "crm.db",
		},
		Fixtures: FixturesConfig{
			Dir: "data",
		},
		Log: LogConfig{
			Level: "info",
		},
		Demo: DemoConfig{
			ProgressPeriod: 30 * time.Second,
			LeadPeriodMin:  45 * time.Second,
			LeadJitter:     45 * time.Second,
			LeadChance:     0.7,
		},
	}

	if path := os.Getenv("CRM_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if storagePath := os.Getenv("CRM_STORAGE_PATH"); storagePath != "" {
		cfg.Storage.Path = storagePath
	}
	if fixturesDir := os.Getenv("CRM_FIXTURES_DIR"); fixturesDir != "" {
		cfg.Fixtures.Dir = fixturesDir
	}
	if level := os.Getenv("CRM_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
