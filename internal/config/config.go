// Package config handles settings for the expenses application. Settings live
// in a TOML file; missing files fall back to defaults, and the ledger
// directory can be overridden through the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// UI color constants for the TUI (ANSI color codes).
const (
	// MainColorForeground is the primary accent color.
	MainColorForeground = "35"
	// MainColorBackground is the primary background color.
	MainColorBackground = "16"
	// MainColorBackgroundMute is a muted color for secondary text.
	MainColorBackgroundMute = "241"
	// AccentColor highlights amounts and totals.
	AccentColor = "178"
	// WarnColor flags an exceeded budget.
	WarnColor = "203"
)

// Default directory name for the ledger and log files.
const defaultDataDir = ".expenses"

// Config is the application configuration as stored on disk.
type Config struct {
	Currency CurrencyConfig `toml:"currency"`
	Ledger   LedgerConfig   `toml:"ledger"`
}

// CurrencyConfig controls how amounts are entered and rendered.
type CurrencyConfig struct {
	Code       string `toml:"code"`
	ShowCents  bool   `toml:"show_cents"`
	ShowSymbol bool   `toml:"show_symbol"`
}

// LedgerConfig controls the ledger itself.
type LedgerConfig struct {
	// MaxAmount caps a single recorded expense.
	MaxAmount float64 `toml:"max_amount"`
	// MonthlyBudget is compared against the running total in the UI.
	MonthlyBudget float64 `toml:"monthly_budget"`
	// DataDir holds the ledger and log files. Empty means the default
	// directory under the user's home.
	DataDir string `toml:"data_dir"`
}

// DefaultConfig returns the configuration used when no file exists yet.
func DefaultConfig() Config {
	return Config{
		Currency: CurrencyConfig{
			Code:       "USD",
			ShowCents:  false,
			ShowSymbol: true,
		},
		Ledger: LedgerConfig{
			MaxAmount:     1000000,
			MonthlyBudget: 2000,
		},
	}
}

// DefaultPath returns the location of the config file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "expenses", "config.toml")
}

// DataDir resolves the directory for the ledger and log files. The
// EXPENSES_DIR environment variable wins over the configured value, which
// wins over the default under the user's home directory.
func DataDir(cfg Config) string {
	if v := os.Getenv("EXPENSES_DIR"); v != "" {
		return v
	}
	if cfg.Ledger.DataDir != "" {
		return cfg.Ledger.DataDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "./" + defaultDataDir
	}
	return filepath.Join(home, defaultDataDir)
}

// Load reads the config at path. A missing file is not an error; the
// defaults come back instead.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory when needed. The file is
// written 0600: it is per-user configuration.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
