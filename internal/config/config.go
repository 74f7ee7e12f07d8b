// Package config defines the MiniTuner configuration format and helpers for
// loading or saving it to disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/edward-ap/minituner/internal/feed"
	"github.com/edward-ap/minituner/internal/pitch"
)

const (
	// AppID is the stable application identifier used for config storage.
	AppID = "minituner"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "MiniTuner"
	// AppConfigName is the JSON file stored on disk.
	AppConfigName = "config.json"

	// DefaultWidth and DefaultHeight size the window on first launch.
	DefaultWidth  = 220
	DefaultHeight = 560
	// MinWindowHeight keeps every step tick at least a few pixels apart.
	MinWindowHeight = 260
	// DefaultMode is the feed selected when nothing is persisted.
	DefaultMode = string(feed.ModeStrings)
	// DefaultSweepSeconds is the duration of one 70 Hz to 1200 Hz sweep.
	DefaultSweepSeconds = 12
	// DefaultUpdateMillis matches a typical analysis frame rate.
	DefaultUpdateMillis = 50
	// DefaultTheme is the Fyne theme variant used by the window.
	DefaultTheme = "dark"
	// DefaultManualFrequency starts the manual slider at concert A.
	DefaultManualFrequency = pitch.ReferenceFrequency
)

// Config aggregates every user-facing preference persisted between sessions.
type Config struct {
	WindowW         int     `json:"windowW"`
	WindowH         int     `json:"windowH"`
	Mode            string  `json:"mode"`
	SweepSeconds    int     `json:"sweepSeconds"`
	UpdateMillis    int     `json:"updateMillis"`
	Theme           string  `json:"theme"`
	ManualFrequency float64 `json:"manualFrequency"`
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to config.json.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from disk. A missing file yields defaults, which are
// written back on a best-effort basis.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save persists the configuration to disk, creating directories as needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// FeedMode returns the configured feed mode, already validated on load.
func (c *Config) FeedMode() feed.Mode { return feed.Mode(c.Mode) }

// FeedOptions converts the persisted timings into feed options.
func (c *Config) FeedOptions() feed.Options {
	return feed.Options{
		SweepPeriod: secondsToDuration(c.SweepSeconds),
		DetuneCents: 25,
		Dwell:       3 * time.Second,
		Gap:         500 * time.Millisecond,
	}
}

// UpdateInterval is how often the feed is sampled.
func (c *Config) UpdateInterval() time.Duration {
	return time.Duration(c.UpdateMillis) * time.Millisecond
}

func secondsToDuration(s int) time.Duration { return time.Duration(s) * time.Second }

// Clone returns an independent copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Default builds an in-memory config populated with safe defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.applyRuntimeDefaults()
	return cfg
}

// applyRuntimeDefaults normalizes config values after a load or when defaults
// are constructed.
func (c *Config) applyRuntimeDefaults() {
	if c.WindowW <= 0 {
		c.WindowW = DefaultWidth
	}
	if c.WindowH <= 0 {
		c.WindowH = DefaultHeight
	}
	if c.WindowH < MinWindowHeight {
		c.WindowH = MinWindowHeight
	}
	if m, err := feed.ParseMode(c.Mode); err == nil {
		c.Mode = string(m)
	} else {
		c.Mode = DefaultMode
	}
	if c.SweepSeconds <= 0 {
		c.SweepSeconds = DefaultSweepSeconds
	}
	if c.UpdateMillis <= 0 {
		c.UpdateMillis = DefaultUpdateMillis
	}
	switch t := strings.ToLower(strings.TrimSpace(c.Theme)); t {
	case "light", "dark":
		c.Theme = t
	default:
		c.Theme = DefaultTheme
	}
	// the manual slider spans whole steps, so accept its full travel
	lo, hi := pitch.NewLayout(0).FrequencyRange()
	if !(c.ManualFrequency >= lo && c.ManualFrequency <= hi) {
		c.ManualFrequency = DefaultManualFrequency
	}
}
