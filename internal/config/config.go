// Package config loads the optional flowdeck.toml configuration file.
//
// Every setting has a default, so running without a config file is
// fully supported. Command-line flags override file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultListen is the default serve address.
const DefaultListen = ":8080"

// Config holds the application configuration.
type Config struct {
	// Listen is the address the HTTP server binds to.
	Listen string `toml:"listen"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the diagram cache backend.
type CacheConfig struct {
	// Disabled turns caching off entirely.
	Disabled bool `toml:"disabled"`
	// Dir is the file cache directory. Empty means the XDG cache dir.
	Dir string `toml:"dir"`
	// Redis is a redis address (host:port). When set, serve mode uses
	// redis instead of the file cache.
	Redis string `toml:"redis"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Listen: DefaultListen}
}

// Load reads the config file at path. A missing file yields the
// defaults; a present but unparsable file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%s: parse config: %w", path, err)
	}
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	return cfg, nil
}

// CacheDir resolves the file cache directory, preferring the
// configured one, then XDG_CACHE_HOME, then ~/.cache.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, "flowdeck"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "flowdeck"), nil
}
