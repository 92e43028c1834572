package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Poll    PollConfig    `mapstructure:"poll"`
	Sounds  SoundsConfig  `mapstructure:"sounds"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BackendConfig holds status backend configuration
type BackendConfig struct {
	URL    string `mapstructure:"url"`     // Backend base URL
	APIKey string `mapstructure:"api_key"` // Anon/service API key
}

// PollConfig holds refresh scheduler configuration
type PollConfig struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
}

// SoundsConfig holds notification sound configuration. Paths are the two
// fixed sound files; an empty command means auto-detect a system player.
type SoundsConfig struct {
	Command   string `mapstructure:"command"`
	Created   string `mapstructure:"created"`
	Completed string `mapstructure:"completed"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Poll: PollConfig{
			IntervalSeconds: 5,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "pulseboard", "pulseboard.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "pulseboard", "pulseboard.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "pulseboard")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "pulseboard")
	}
}

// DataDir returns the directory holding the durable store.
func DataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "pulseboard")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "pulseboard")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("PULSEBOARD")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to keep snake_case key names
	viper.Set("backend.url", cfg.Backend.URL)
	viper.Set("backend.api_key", cfg.Backend.APIKey)
	viper.Set("poll.interval_seconds", cfg.Poll.IntervalSeconds)
	viper.Set("sounds.command", cfg.Sounds.Command)
	viper.Set("sounds.created", cfg.Sounds.Created)
	viper.Set("sounds.completed", cfg.Sounds.Completed)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the backend URL and API key are set
func (c *Config) IsConfigured() bool {
	return c.Backend.URL != "" && c.Backend.APIKey != ""
}
