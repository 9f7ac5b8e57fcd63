// Package config loads careplan configuration: defaults, then
// ~/.careplan/config.toml, then environment variables, each layer
// overriding the last.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all careplan configuration.
type Config struct {
	DataDir     string       `toml:"data_dir"`
	ServiceType string       `toml:"service_type"` // "facility" or "home"
	ExportDir   string       `toml:"export_dir"`
	Gemini      GeminiConfig `toml:"gemini"`
}

// GeminiConfig holds model access settings. The API key is environment
// only; it never lives in the config file.
type GeminiConfig struct {
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Default returns the default configuration.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		DataDir:     filepath.Join(homeDir, ".careplan", "data"),
		ServiceType: "facility",
		ExportDir:   ".",
		Gemini: GeminiConfig{
			Model:          "gemini-2.5-flash",
			TimeoutSeconds: 120,
		},
	}
}

// ConfigDir returns the careplan config directory path.
func ConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".careplan")
}

// Load reads configuration from the config file and applies environment
// overrides. A missing file is not an error; the defaults stand.
func Load() (*Config, error) {
	cfg := Default()

	configPath := filepath.Join(ConfigDir(), "config.toml")
	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		if len(cfg.DataDir) > 0 && cfg.DataDir[0] == '~' {
			cfg.DataDir = filepath.Join(homeDir, cfg.DataDir[1:])
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv layers environment variables over cfg. CAREPLAN_* vars win
// over the file; GEMINI_MODEL is shared with the client's own default
// chain.
func applyEnv(cfg *Config) {
	if v := os.Getenv("CAREPLAN_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CAREPLAN_SERVICE_TYPE"); v != "" {
		cfg.ServiceType = v
	}
	if v := os.Getenv("CAREPLAN_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	if err := os.MkdirAll(ConfigDir(), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(ConfigDir(), "config.toml"), data, 0644)
}
