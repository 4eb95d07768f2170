package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	UI      UIConfig      `mapstructure:"ui"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the movie API endpoint and the saved session
type ServerConfig struct {
	URL      string `mapstructure:"url"`      // Movie API base URL
	Token    string `mapstructure:"token"`    // Bearer token from the last login
	UserID   string `mapstructure:"user_id"`  // Session user id
	Username string `mapstructure:"username"` // Session display name
}

// UIConfig holds UI configuration
type UIConfig struct {
	Locale   string `mapstructure:"locale"`    // BCP 47 tag used for title collation
	PageSize int    `mapstructure:"page_size"` // Movies per dashboard page
}

// CacheConfig controls the on-disk snapshot cache
type CacheConfig struct {
	Dir string `mapstructure:"dir"` // Empty keeps the snapshot in memory only
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultPageSize is the number of movies shown per dashboard page
const DefaultPageSize = 4

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL: "http://localhost:5000/api",
		},
		UI: UIConfig{
			Locale:   "en",
			PageSize: DefaultPageSize,
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
		return filepath.Join(os.Getenv("APPDATA"), "marquee", "marquee.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee", "marquee.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "marquee")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return load(viper.GetViper(), defaultConfigPath())
}

func load(v *viper.Viper, dirs ...string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	// Every key needs a default so Unmarshal looks it up in the
	// environment, e.g. server.url from MARQUEE_SERVER_URL
	for key, value := range settings(cfg) {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix("MARQUEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.UI.PageSize <= 0 {
		cfg.UI.PageSize = DefaultPageSize
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	return save(viper.GetViper(), defaultConfigPath(), cfg)
}

func save(v *viper.Viper, dir string, cfg *Config) error {
	for key, value := range settings(cfg) {
		v.Set(key, value)
	}
	return write(v, dir)
}

// settings flattens cfg into viper keys, keeping snake_case names
func settings(cfg *Config) map[string]any {
	return map[string]any{
		"server.url":      cfg.Server.URL,
		"server.token":    cfg.Server.Token,
		"server.user_id":  cfg.Server.UserID,
		"server.username": cfg.Server.Username,
		"ui.locale":       cfg.UI.Locale,
		"ui.page_size":    cfg.UI.PageSize,
		"cache.dir":       cfg.Cache.Dir,
		"logging.file":    cfg.Logging.File,
		"logging.level":   cfg.Logging.Level,
	}
}

// SaveSession updates just the session fields in the configuration
func SaveSession(token, userID, username string) error {
	v := viper.GetViper()
	v.Set("server.token", token)
	v.Set("server.user_id", userID)
	v.Set("server.username", username)
	return write(v, defaultConfigPath())
}

// ClearSession removes the saved session while preserving other settings
func ClearSession() error {
	return SaveSession("", "", "")
}

func write(v *viper.Viper, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// HasSession returns true if a token from a previous login is saved
func (c *Config) HasSession() bool {
	return c.Server.Token != ""
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "marquee", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee", "cache")
	}
}

// GetCachePath returns the configured cache directory, or "" for memory-only mode.
// The special value "default" resolves to the per-OS cache location.
func (c *Config) GetCachePath() string {
	if c.Cache.Dir == "default" {
		return defaultCachePath()
	}
	return c.Cache.Dir
}
