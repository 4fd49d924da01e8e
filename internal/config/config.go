package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// Vault is the root directory of the note collection.
	Vault string `yaml:"vault" json:"vault"`

	// Listen is the HTTP listen address for serve mode.
	Listen string `yaml:"listen" json:"listen"`

	// RefreshCron is a cron-style schedule (e.g. "*/5 * * * *") for
	// periodic rescans in serve mode.
	RefreshCron string `yaml:"refresh" json:"refresh"`

	// EventType, when non-empty, keeps only events of that type.
	EventType string `yaml:"event_type" json:"event_type"`

	// Folders restricts events to notes under these path prefixes.
	// Empty means the whole vault.
	Folders []string `yaml:"folders" json:"folders"`

	// ContentFilter is a regular expression applied to event titles.
	ContentFilter string `yaml:"content_filter" json:"content_filter"`

	// Ignore lists vault path prefixes excluded from note enumeration.
	Ignore []string `yaml:"ignore" json:"ignore"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Vault:       ".",
		Listen:      "127.0.0.1:8275",
		RefreshCron: "*/5 * * * *",
		Folders:     []string{},
		Ignore:      []string{".obsidian/", ".trash/", "templates/"},
		LogLevel:    "info",
	}
}

// Normalize fills in missing/zero values so partially-filled configs
// still behave correctly.
func (c *Config) Normalize() {
	if c.Vault == "" {
		c.Vault = "."
	}
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8275"
	}
	if c.RefreshCron == "" {
		c.RefreshCron = "*/5 * * * *"
	}
	if c.Folders == nil {
		c.Folders = []string{}
	}
	if c.Ignore == nil {
		c.Ignore = []string{".obsidian/", ".trash/", "templates/"}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, a default config is written there (parent
// directory created as needed, file mode 0600) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename) with 0600
// permissions, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".notecal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save delegates to the package-level Save for callers holding a Config.
func (c *Config) Save(path string) error {
	return Save(path, c)
}

// HasFilter reports whether the config expresses any event filter
// constraint.
func (c *Config) HasFilter() bool {
	return c.EventType != "" || c.ContentFilter != "" || len(c.Folders) > 0
}
