// Package config loads the pulse application config from
// ~/.pulse/config.json. The file supports single-line // comments for
// documentation purposes and is created with annotated defaults on first
// run.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nvaldez/pulse/internal/journal"
)

// Config is the root configuration for pulse.
type Config struct {
	// DataDir is where the SQLite database lives. Empty = ~/.pulse.
	DataDir string `json:"data_dir"`
	// EnergyWindowMinutes is the duplicate-detection lookback for energy
	// entries.
	EnergyWindowMinutes int `json:"energy_window_minutes"`
	// SleepWindowHours is the duplicate-detection lookback for sleep entries.
	SleepWindowHours int `json:"sleep_window_hours"`
	// SummaryWindowDays is the rolling window for summary statistics.
	SummaryWindowDays int `json:"summary_window_days"`
}

// Defaults mirror the built-in journal configuration.
const (
	DefaultEnergyWindowMinutes = 10
	DefaultSleepWindowHours    = 4
	DefaultSummaryWindowDays   = 7
)

// defaultConfig returns a Config pre-filled with built-in defaults.
func defaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir:             filepath.Join(home, ".pulse"),
		EnergyWindowMinutes: DefaultEnergyWindowMinutes,
		SleepWindowHours:    DefaultSleepWindowHours,
		SummaryWindowDays:   DefaultSummaryWindowDays,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON
// parsing, allowing human-readable documentation inside the file.
const configTemplate = `// pulse configuration – ~/.pulse/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise pulse behaviour.
{
  // Directory for the local database. Empty = ~/.pulse
  "data_dir": "",

  // Duplicate-detection lookback for energy entries, in minutes.
  // A new energy rating within this window of an existing one asks
  // replace-or-cancel instead of silently inserting.
  "energy_window_minutes": 10,

  // Duplicate-detection lookback for sleep entries, in hours.
  "sleep_window_hours": 4,

  // Rolling window for summary statistics, in days.
  "summary_window_days": 7
}
`

// configFilePath returns the path to ~/.pulse/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".pulse", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content
// starts with //. Only full-line comments are handled.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.pulse/config.json, creating it with annotated defaults on
// first run.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return LoadFile(path)
}

// LoadFile reads a config file from an explicit path, creating it with the
// annotated template when missing. Zero-value fields are filled with the
// built-in defaults so callers always get a usable Config.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	def := defaultConfig()
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.EnergyWindowMinutes <= 0 {
		cfg.EnergyWindowMinutes = def.EnergyWindowMinutes
	}
	if cfg.SleepWindowHours <= 0 {
		cfg.SleepWindowHours = def.SleepWindowHours
	}
	if cfg.SummaryWindowDays <= 0 {
		cfg.SummaryWindowDays = def.SummaryWindowDays
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// Journal converts the app config into the journal engine's configuration.
func (c Config) Journal() journal.Config {
	return journal.Config{
		DataDir:           c.DataDir,
		EnergyWindow:      time.Duration(c.EnergyWindowMinutes) * time.Minute,
		SleepWindow:       time.Duration(c.SleepWindowHours) * time.Hour,
		SummaryWindowDays: c.SummaryWindowDays,
	}
}
