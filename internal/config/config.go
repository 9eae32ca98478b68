package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Search  SearchConfig  `mapstructure:"search"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds remote catalog settings
type CatalogConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	RateLimit  float64       `mapstructure:"rate_limit"` // Requests per second
	RateBurst  int           `mapstructure:"rate_burst"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"` // 0 disables response caching
}

// SearchConfig holds session defaults
type SearchConfig struct {
	DefaultQuery string `mapstructure:"default_query"`
	PageSize     int    `mapstructure:"page_size"` // 6 or 12
}

// StorageConfig holds persistence settings
type StorageConfig struct {
	Dir          string `mapstructure:"dir"` // Empty = memory only
	WatchlistKey string `mapstructure:"watchlist_key"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:    "https://api.tvmaze.com",
			Timeout:    10 * time.Second,
			MaxRetries: 3,
			RateLimit:  2,
			RateBurst:  5,
			CacheTTL:   5 * time.Minute,
		},
		Search: SearchConfig{
			DefaultQuery: "friends",
			PageSize:     6,
		},
		Storage: StorageConfig{
			Dir:          defaultDataPath(),
			WatchlistKey: "watchlist",
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "tvshelf.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "tvshelf")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "tvshelf")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "tvshelf")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "tvshelf")
	}
}

// LoadConfig loads configuration from file and environment.
// An explicit path must exist; otherwise a missing config file is fine.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides (e.g. TVSHELF_CATALOG_BASE_URL)
	v.SetEnvPrefix("TVSHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Storage.Dir = expandHome(cfg.Storage.Dir)
	cfg.Logging.File = expandHome(cfg.Logging.File)
	return cfg, nil
}

// bindDefaults registers every key so AutomaticEnv can override keys that
// are absent from the config file.
func bindDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.base_url", cfg.Catalog.BaseURL)
	v.SetDefault("catalog.timeout", cfg.Catalog.Timeout)
	v.SetDefault("catalog.max_retries", cfg.Catalog.MaxRetries)
	v.SetDefault("catalog.rate_limit", cfg.Catalog.RateLimit)
	v.SetDefault("catalog.rate_burst", cfg.Catalog.RateBurst)
	v.SetDefault("catalog.cache_ttl", cfg.Catalog.CacheTTL)
	v.SetDefault("search.default_query", cfg.Search.DefaultQuery)
	v.SetDefault("search.page_size", cfg.Search.PageSize)
	v.SetDefault("storage.dir", cfg.Storage.Dir)
	v.SetDefault("storage.watchlist_key", cfg.Storage.WatchlistKey)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	return defaultConfigPath()
}
