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
	Giphy   GiphyConfig   `mapstructure:"giphy"`
	Search  SearchConfig  `mapstructure:"search"`
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GiphyConfig holds the remote search API configuration
type GiphyConfig struct {
	BaseURL string `mapstructure:"base_url"` // API endpoint, defaults to the public one
	APIKey  string `mapstructure:"api_key"`
}

// SearchConfig holds search behavior configuration
type SearchConfig struct {
	Limit int `mapstructure:"limit"` // Max results per request
}

// HistoryConfig holds tag history configuration
type HistoryConfig struct {
	MaxEntries    int  `mapstructure:"max_entries"`
	ReplayOnStart bool `mapstructure:"replay_on_start"` // Re-run the most recent search at startup
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Giphy: GiphyConfig{
			BaseURL: "https://api.giphy.com",
			APIKey:  "",
		},
		Search: SearchConfig{
			Limit: 10,
		},
		History: HistoryConfig{
			MaxEntries:    10,
			ReplayOnStart: true,
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
		return filepath.Join(os.Getenv("APPDATA"), "gifdex", "gifdex.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "gifdex", "gifdex.log")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "gifdex")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gifdex")
	}
}

// defaultDataPath returns the default data directory path for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "gifdex")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "gifdex")
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
	viper.SetEnvPrefix("GIFDEX")
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

	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("giphy.base_url", cfg.Giphy.BaseURL)
	viper.Set("giphy.api_key", cfg.Giphy.APIKey)
	viper.Set("search.limit", cfg.Search.Limit)
	viper.Set("history.max_entries", cfg.History.MaxEntries)
	viper.Set("history.replay_on_start", cfg.History.ReplayOnStart)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the API key is set
func (c *Config) IsConfigured() bool {
	return c.Giphy.APIKey != ""
}

// DataPath returns the directory holding the history database
func DataPath() string {
	return defaultDataPath()
}
