package config

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zhubert/anonchat/internal/errors"
)

// DefaultBackendURL is used when no backend address is configured.
const DefaultBackendURL = "http://localhost:8000"

// BackendURLEnvVar overrides the configured backend address when set.
const BackendURLEnvVar = "ANONCHAT_BACKEND_URL"

// Config holds the application configuration
type Config struct {
	BackendURL      string `json:"backend_url,omitempty"`      // Chat backend base address
	DefaultNickname string `json:"default_nickname,omitempty"` // Pre-filled nickname for the join screen

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".anonchat"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Primarily for testing.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded config for values the client cannot work with.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.BackendURL != "" {
		u, err := url.Parse(c.BackendURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.ConfigInvalid("backend_url must be an absolute http(s) URL")
		}
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.filePath
	if path == "" {
		var err error
		path, err = configPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}

// ResolveBackendURL returns the backend base address the client should use.
// Precedence: explicit override (--backend flag) > environment variable >
// config file > built-in default. The result never has a trailing slash.
func (c *Config) ResolveBackendURL(override string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	candidates := []string{override, os.Getenv(BackendURLEnvVar), c.BackendURL, DefaultBackendURL}
	for _, u := range candidates {
		if u != "" {
			return strings.TrimRight(u, "/")
		}
	}
	return DefaultBackendURL
}

// GetDefaultNickname returns the saved nickname, if any.
func (c *Config) GetDefaultNickname() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DefaultNickname
}

// SetDefaultNickname updates the saved nickname.
func (c *Config) SetDefaultNickname(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DefaultNickname = name
}
