package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Config holds all portscout configuration
type Config struct {
	// SNMP query settings
	Community string        `mapstructure:"community"`
	Port      int           `mapstructure:"port"`
	Timeout   time.Duration `mapstructure:"timeout"`

	// Output
	ShowProgress bool `mapstructure:"show_progress"`

	// Logging
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Port:         161,
		Timeout:      3 * time.Second,
		ShowProgress: true,
		LogLevel:     "warn",
	}
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Set config file locations
	viper.SetConfigName("portscout")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(getConfigDir())
	viper.AddConfigPath(".")

	// Environment variable support
	viper.SetEnvPrefix("PORTSCOUT")
	viper.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	// Unmarshal into struct
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Save writes the current configuration to disk
func (c *Config) Save() error {
	configDir := getConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "portscout.yaml")

	viper.Set("community", c.Community)
	viper.Set("port", c.Port)
	viper.Set("timeout", c.Timeout)
	viper.Set("show_progress", c.ShowProgress)
	viper.Set("log_level", c.LogLevel)
	viper.Set("log_file", c.LogFile)

	return viper.WriteConfigAs(configPath)
}

// getConfigDir returns the platform-specific config directory
func getConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("ProgramData"), "Portscout")
	case "darwin":
		return "/Library/Application Support/Portscout"
	default: // Linux and others
		return "/etc/portscout"
	}
}
