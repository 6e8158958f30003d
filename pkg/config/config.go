package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Provider string        `mapstructure:"provider"` // Selected provider: ollama for now
	Ollama   OllamaConfig  `mapstructure:"ollama"`
	Logging  LoggingConfig `mapstructure:"logging"`
	Tools    ToolsConfig   `mapstructure:"tools"`
}

// OllamaConfig holds Ollama-specific configuration
type OllamaConfig struct {
	URL     string        `mapstructure:"url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	LogFile  string `mapstructure:"log_file"`
	Preserve bool   `mapstructure:"preserve"`
	Level    string `mapstructure:"level"`
}

// ToolsConfig holds tool-related configuration
type ToolsConfig struct {
	Enabled []string `mapstructure:"enabled"` // tool names enabled at session start
}

// Global config instance
var cfg *Config

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		panic("config not initialized")
	}
	return cfg
}

// Load loads configuration from file and environment into the global instance
func Load(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./.loom")
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
	}

	viper.AutomaticEnv()

	// A missing config file is fine, defaults apply
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	loaded := &Config{}
	if err := viper.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg = loaded
	return cfg, nil
}

// setDefaults establishes default configuration values
func setDefaults() {
	viper.SetDefault("provider", "ollama")

	viper.SetDefault("ollama.url", "http://localhost:11434")
	viper.SetDefault("ollama.model", "qwen3:latest")
	viper.SetDefault("ollama.timeout", 90*time.Second)

	viper.SetDefault("logging.log_file", "./.loom/system.log")
	viper.SetDefault("logging.preserve", true)
	viper.SetDefault("logging.level", "info")

	viper.SetDefault("tools.enabled", []string{"bash", "file_read", "ripgrep"})
}

// BuildSettingsPath returns a path inside the settings directory
func BuildSettingsPath(filename string) string {
	return filepath.Join(".loom", filename)
}

// Reset clears the global config (useful for testing)
func Reset() {
	cfg = nil
	viper.Reset()
}
