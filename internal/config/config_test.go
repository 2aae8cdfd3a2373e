// ABOUTME: Tests for ferro configuration management.
// ABOUTME: Covers load, save, defaults, env overrides, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}

	got := cfg.GetDataDir()
	if got == "" {
		t.Error("GetDataDir() returned empty string")
	}
	if filepath.Base(got) != "ferro" {
		t.Errorf("GetDataDir() = %q, want a ferro directory", got)
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/ferro-test"}
	if got := cfg.GetDataDir(); got != "/tmp/ferro-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/ferro-test")
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

	got := ExpandPath("~/data/ferro")
	want := filepath.Join(home, "data/ferro")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/ferro\") = %q, want %q", got, want)
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/ferro-data"}
	got := cfg.GetDataDir()
	want := filepath.Join(home, "ferro-data")
	if got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
	if cfg.Server != "" {
		t.Errorf("Expected empty Server, got %q", cfg.Server)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		DataDir: "/tmp/ferro-data",
		Server:  "https://sync.example.com",
		AnonKey: "anon-key",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.DataDir != "/tmp/ferro-data" {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, "/tmp/ferro-data")
	}
	if loaded.Server != "https://sync.example.com" {
		t.Errorf("Server mismatch: got %q", loaded.Server)
	}
	if loaded.AnonKey != "anon-key" {
		t.Errorf("AnonKey mismatch: got %q", loaded.AnonKey)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Server: "https://from-file.example.com"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	t.Setenv("FERRO_SERVER", "https://from-env.example.com")
	t.Setenv("FERRO_DATA_DIR", "/tmp/ferro-env")

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.Server != "https://from-env.example.com" {
		t.Errorf("Server = %q, env should win over file", loaded.Server)
	}
	if loaded.DataDir != "/tmp/ferro-env" {
		t.Errorf("DataDir = %q, want env value", loaded.DataDir)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	cfg := &Config{DataDir: "/tmp/ferro"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "ferro")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "ferro")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600)

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	got := GetConfigPath()
	want := filepath.Join(tmpDir, "ferro", "config.json")
	if got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestAdviceAPIKeyFromEnv(t *testing.T) {
	t.Setenv("FERRO_AI_KEY", "sk-test")

	cfg := &Config{}
	if got := cfg.AdviceAPIKey(); got != "sk-test" {
		t.Errorf("AdviceAPIKey() = %q, want %q", got, "sk-test")
	}
}

func TestOpenStore(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}

	st, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() failed: %v", err)
	}
	defer st.Close()

	if st == nil {
		t.Error("Expected non-nil store")
	}
}
