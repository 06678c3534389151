// Package config loads and saves spend's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all spend configuration.
type Config struct {
	Storage    StorageConfig    `toml:"storage"`
	Export     ExportConfig     `toml:"export"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// StorageConfig selects where the ledger lives.
type StorageConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path,omitempty"`
}

// ExportConfig holds CSV export defaults.
type ExportConfig struct {
	DefaultFile string `toml:"default_file"`
}

// AppearanceConfig holds theme and currency display settings.
type AppearanceConfig struct {
	Theme    string `toml:"theme"`
	Currency string `toml:"currency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
		},
		Export: ExportConfig{
			DefaultFile: "expenses.csv",
		},
		Appearance: AppearanceConfig{
			Theme:    "flexoki-dark",
			Currency: "USD",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spend")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spend")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the ledger.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "spend")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "spend")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's config location
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects unknown backends.
func (c Config) Validate() error {
	switch strings.ToLower(c.Storage.Backend) {
	case BackendJSON, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q (want %q or %q)", c.Storage.Backend, BackendJSON, BackendSQLite)
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is the user's config location
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// LedgerPath returns the ledger location: SPEND_DATA_FILE, then the configured
// path, then a backend-specific file in DataDir.
func LedgerPath(cfg Config) string {
	if p := os.Getenv("SPEND_DATA_FILE"); p != "" {
		return p
	}
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path
	}
	if strings.EqualFold(cfg.Storage.Backend, BackendSQLite) {
		return filepath.Join(DataDir(), "expenses.db")
	}
	return filepath.Join(DataDir(), "expenses.json")
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
