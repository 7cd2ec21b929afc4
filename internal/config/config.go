package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig `yaml:"storage"`
	SeedFile    string        `yaml:"seed_file"`
	LogLevel    string        `yaml:"log_level"`
	HTTP        HTTPConfig    `yaml:"http"`
	Events      EventsConfig  `yaml:"events"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
}

// StorageConfig selects the repository backend
type StorageConfig struct {
	Backend string `yaml:"backend"` // "memory" or "sqlite"
	DSN     string `yaml:"dsn"`     // sqlite only; defaults to ":memory:"
}

// HTTPConfig configures the JSON API server
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// EventsConfig configures change event delivery
type EventsConfig struct {
	DebounceMS int `yaml:"debounce_ms"` // 0 uses the default
	QueueSize  int `yaml:"queue_size"`
}

// Debounce returns the batching window as a duration
func (e EventsConfig) Debounce() time.Duration {
	return time.Duration(e.DebounceMS) * time.Millisecond
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Fall back to defaults if we can't determine config path
		return build(&Config{})
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, falling back to defaults if it doesn't exist
func LoadFile(path string) (*Config, error) {
	var config Config

	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return build(&config)
	}

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return build(&config)
}

// build applies environment overrides, then defaults, then validates
func build(config *Config) (*Config, error) {
	config.applyEnv()
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(configPath, data, 0o644)
}

// Validate rejects values defaults cannot repair
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q (want %q or %q)", c.Storage.Backend, BackendMemory, BackendSQLite)
	}
	if c.Events.DebounceMS < 0 {
		return fmt.Errorf("events.debounce_ms must be >= 0, got %d", c.Events.DebounceMS)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "boards", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "boards", "config.yaml"), nil
}

// applyEnv overrides file values with BOARDS_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("BOARDS_STORAGE"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("BOARDS_SEED_FILE"); v != "" {
		c.SeedFile = v
	}
	if v := os.Getenv("BOARDS_HTTP_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv("BOARDS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("BOARDS_EVENT_DEBOUNCE_MS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Events.DebounceMS = parsed
		}
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendMemory
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = "127.0.0.1:8080"
	}
	if c.Events.DebounceMS == 0 {
		c.Events.DebounceMS = 100
	}
	if c.Events.QueueSize <= 0 {
		c.Events.QueueSize = 100
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
