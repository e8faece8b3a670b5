// ABOUTME: Tests for wellness configuration management.
// ABOUTME: Covers load, save, defaults, backend selection, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "csv" {
		t.Errorf("GetBackend() = %q, want %q", got, "csv")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "sqlite"}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}

	// GetDataDir with empty DataDir should return storage.DataDir()
	got := cfg.GetDataDir()
	if got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/wellness-test"}
	if got := cfg.GetDataDir(); got != "/tmp/wellness-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/wellness-test")
	}
}

func TestGetSchemaPathEmpty(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetSchemaPath(); got != "" {
		t.Errorf("GetSchemaPath() = %q, want empty", got)
	}
}

func TestGetSchemaPathExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{SchemaPath: "~/wellness/schema.yaml"}
	want := filepath.Join(home, "wellness/schema.yaml")
	if got := cfg.GetSchemaPath(); got != want {
		t.Errorf("GetSchemaPath() = %q, want %q", got, want)
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~")
	if got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/wellness")
	want := filepath.Join(home, "data/wellness")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/wellness\") = %q, want %q", got, want)
	}
}

func TestExpandPathRelative(t *testing.T) {
	if got := ExpandPath("data/wellness"); got != "data/wellness" {
		t.Errorf("ExpandPath(\"data/wellness\") = %q, want %q", got, "data/wellness")
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/wellness-data"}
	got := cfg.GetDataDir()
	want := filepath.Join(home, "wellness-data")
	if got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	// Should return defaults
	if cfg.Backend != "" {
		t.Errorf("Expected empty Backend, got %q", cfg.Backend)
	}
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg := &Config{
		Backend:    "sqlite",
		DataDir:    "/tmp/wellness-data",
		SchemaPath: "/tmp/schema.yaml",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.Backend != "sqlite" {
		t.Errorf("Backend mismatch: got %q, want %q", loaded.Backend, "sqlite")
	}
	if loaded.DataDir != "/tmp/wellness-data" {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, "/tmp/wellness-data")
	}
	if loaded.SchemaPath != "/tmp/schema.yaml" {
		t.Errorf("SchemaPath mismatch: got %q, want %q", loaded.SchemaPath, "/tmp/schema.yaml")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	// Point to a non-existent subdirectory
	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg := &Config{Backend: "csv"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "wellness")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	configDir := filepath.Join(tmpDir, "wellness")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600)

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	got := GetConfigPath()
	want := filepath.Join(tmpDir, "wellness", "config.json")
	if got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &Config{
		Backend: "sqlite",
		DataDir: tmpDir,
	}

	store, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() for sqlite failed: %v", err)
	}
	defer store.Close()

	dbPath := filepath.Join(tmpDir, "wellness.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Expected wellness.db to be created")
	}
}

func TestOpenStoreCSV(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &Config{
		Backend: "csv",
		DataDir: tmpDir,
	}

	store, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() for csv failed: %v", err)
	}
	defer store.Close()

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on fresh csv store failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty store, got %d entries", len(entries))
	}
}

func TestOpenStoreInvalidBackend(t *testing.T) {
	cfg := &Config{
		Backend: "invalid",
		DataDir: "/tmp",
	}

	if _, err := cfg.OpenStore(); err == nil {
		t.Error("Expected error for invalid backend")
	}
}

func TestConfigJSONSerialization(t *testing.T) {
	cfg := &Config{
		Backend:    "charm",
		DataDir:    "~/wellness-data",
		SchemaPath: "~/schema.yaml",
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if loaded.Backend != cfg.Backend {
		t.Errorf("Backend mismatch: got %q, want %q", loaded.Backend, cfg.Backend)
	}
	if loaded.DataDir != cfg.DataDir {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, cfg.DataDir)
	}
	if loaded.SchemaPath != cfg.SchemaPath {
		t.Errorf("SchemaPath mismatch: got %q, want %q", loaded.SchemaPath, cfg.SchemaPath)
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	cfg := &Config{}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Empty config should result in "{}" since fields have omitempty
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}

func TestOpenStoreDefaultBackend(t *testing.T) {
	tmpDir := t.TempDir()

	// Empty backend should default to csv
	cfg := &Config{
		DataDir: tmpDir,
	}

	store, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() with default backend failed: %v", err)
	}
	defer store.Close()
}
