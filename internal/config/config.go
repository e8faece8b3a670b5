// ABOUTME: Wellness configuration management with backend selection.
// ABOUTME: Handles settings, schema location, and storage backend factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/wellness/internal/charm"
	"github.com/harperreed/wellness/internal/storage"
)

// Config stores wellness tool configuration.
type Config struct {
	// Backend selects the storage backend: "csv" (default), "sqlite" or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// CSV puts wellness_data.csv here, SQLite puts wellness.db here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/wellness.
	DataDir string `json:"data_dir,omitempty"`

	// SchemaPath points at a YAML form schema. Empty means the built-in schema.
	SchemaPath string `json:"schema_path,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "csv".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "csv"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetSchemaPath returns the configured schema file path with ~ expanded,
// or "" when the built-in schema should be used.
func (c *Config) GetSchemaPath() string {
	return ExpandPath(c.SchemaPath)
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

// OpenStore creates a Store implementation based on the configured backend.
func (c *Config) OpenStore() (storage.Store, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case "csv":
		return storage.NewCSVStore(filepath.Join(dataDir, "wellness_data.csv"))
	case "sqlite":
		return storage.Open(filepath.Join(dataDir, "wellness.db"))
	case "charm":
		return charm.GetClient()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "wellness", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
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
