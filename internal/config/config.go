// ABOUTME: Fittrack configuration management.
// ABOUTME: JSON config file with environment overrides and a storage factory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"

	"github.com/fittrack/fittrack/internal/storage"
)

// Config stores fittrack configuration.
type Config struct {
	// DataDir is the root directory for data storage; fittrack.db lives here.
	// Supports ~ expansion. Defaults to ~/.local/share/fittrack.
	DataDir string `json:"data_dir,omitempty" env:"FITTRACK_DATA_DIR"`

	// DBPath overrides the full database path. Takes precedence over DataDir.
	DBPath string `json:"db_path,omitempty" env:"FITTRACK_DB"`
}

// GetDBPath returns the effective database path.
func (c *Config) GetDBPath() string {
	if c.DBPath != "" {
		return ExpandPath(c.DBPath)
	}
	if c.DataDir != "" {
		return filepath.Join(ExpandPath(c.DataDir), "fittrack.db")
	}
	return storage.DefaultDBPath()
}

// OpenStorage opens the configured store.
func (c *Config) OpenStorage() (storage.Repository, error) {
	return storage.Open(c.GetDBPath())
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fittrack", "config.json")
}

// Load reads config from disk, then applies environment overrides.
// A missing config file is not an error.
func Load() (*Config, error) {
	var cfg Config

	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
