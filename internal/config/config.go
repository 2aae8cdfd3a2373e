// ABOUTME: Ferro configuration management and store factory.
// ABOUTME: JSON file under XDG config, with .env/environment overrides.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bmonteiro/ferro/internal/store"
)

// Config stores ferro settings. Every field has a working default so a
// fresh install runs with no config file at all.
type Config struct {
	// DataDir is the root directory for the local store. Supports ~
	// expansion for home directory. Defaults to ~/.local/share/ferro.
	DataDir string `json:"data_dir,omitempty"`

	// Server and AnonKey point at the cloud backend. Sync commands
	// refuse to run while they are unset.
	Server  string `json:"server,omitempty"`
	AnonKey string `json:"anon_key,omitempty"`

	// AI coaching endpoint settings. The API key is only read from the
	// environment, never persisted.
	AdviceURL   string `json:"advice_url,omitempty"`
	AdviceModel string `json:"advice_model,omitempty"`
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ferro")
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// AdviceAPIKey reads the AI key from the environment.
func (c *Config) AdviceAPIKey() string {
	return os.Getenv("FERRO_AI_KEY")
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

// OpenStore opens (and migrates) the local store at the configured path.
func (c *Config) OpenStore() (*store.Store, error) {
	return store.Open(c.GetDataDir())
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "ferro", "config.json")
}

// Load reads config from disk and applies environment overrides. A missing
// file yields defaults. A .env in the working directory is honored.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(GetConfigPath())
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if v := os.Getenv("FERRO_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("FERRO_SERVER"); v != "" {
		cfg.Server = v
	}
	if v := os.Getenv("FERRO_ANON_KEY"); v != "" {
		cfg.AnonKey = v
	}
	if v := os.Getenv("FERRO_AI_URL"); v != "" {
		cfg.AdviceURL = v
	}
	if v := os.Getenv("FERRO_AI_MODEL"); v != "" {
		cfg.AdviceModel = v
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
