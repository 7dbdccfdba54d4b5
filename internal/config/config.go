// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete helmdesk configuration.
type Config struct {
	// Version of the config schema.
	Version string `toml:"version"`

	// Widget appearance and language.
	Widget WidgetConfig `toml:"widget"`

	// Remote log sink configuration.
	Remote RemoteConfig `toml:"remote"`

	// Archive configuration for local transcript storage.
	Archive ArchiveConfig `toml:"archive"`

	// Log configuration for the diagnostic log file.
	Log LogConfig `toml:"log"`
}

// WidgetConfig contains appearance and language settings.
type WidgetConfig struct {
	// Position is where the widget anchors itself: "bottom-right",
	// "bottom-left", "top-right", "top-left" or "fullscreen".
	Position string `toml:"position"`
	// Theme is "dark", "light" or "auto" (detect from terminal).
	Theme string `toml:"theme"`
	// PrimaryColor is the accent color as "#RRGGBB".
	PrimaryColor string `toml:"primary_color"`
	// Language is a BCP-47 tag ("en", "es", "fr", "de", "it", "ru").
	// Unsupported tags resolve to the closest supported language.
	Language string `toml:"language"`
}

// RemoteConfig contains the chat log sink settings. Both fields must be
// set for remote logging to activate; either empty disables it.
type RemoteConfig struct {
	// Endpoint is the REST URL records are POSTed to.
	Endpoint string `toml:"endpoint"`
	// Key is the API key sent with every record.
	Key string `toml:"key"`
}

// ArchiveConfig controls the local SQLite transcript archive.
type ArchiveConfig struct {
	// Enabled turns archival on. Default: true.
	Enabled bool `toml:"enabled"`
	// Path is the database file (empty = ~/.helmdesk/transcripts.db).
	Path string `toml:"path"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	// Level is the minimum level: "debug", "info", "warn", "error".
	Level string `toml:"level"`
	// Path is the log file (empty = ~/.helmdesk/helmdesk.log).
	Path string `toml:"path"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Widget: WidgetConfig{
			Position:     "bottom-right",
			Theme:        "auto",
			PrimaryColor: "#1E3A8A",
			Language:     "en",
		},
		Archive: ArchiveConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATHS
// =============================================================================

// ConfigDir returns the helmdesk configuration directory (~/.helmdesk).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".helmdesk"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ArchivePath resolves the transcript database path, applying the default
// when unset.
func (c *Config) ArchivePath() (string, error) {
	if c.Archive.Path != "" {
		return c.Archive.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "transcripts.db"), nil
}

// LogPath resolves the diagnostic log path, applying the default when unset.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "helmdesk.log"), nil
}

// ensureSecurePermissions checks and fixes permissions on config files.
// SECURITY: Config files should be 0600 (owner read/write only) to protect
// the remote API key.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from ~/.helmdesk/config.toml, falling back to
// defaults when the file does not exist. Environment overrides are applied
// last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific TOML file with full
// validation.
func LoadFromPath(path string) (*Config, error) {
	// SECURITY: Check and fix file permissions if needed
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode TOML file %s: %w", path, err)
	}

	fillDefaults(cfg)
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.Widget.Position == "" {
		cfg.Widget.Position = defaults.Widget.Position
	}
	if cfg.Widget.Theme == "" {
		cfg.Widget.Theme = defaults.Widget.Theme
	}
	if cfg.Widget.PrimaryColor == "" {
		cfg.Widget.PrimaryColor = defaults.Widget.PrimaryColor
	}
	if cfg.Widget.Language == "" {
		cfg.Widget.Language = defaults.Widget.Language
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
}

// ApplyEnvOverrides applies HELMDESK_* environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("HELMDESK_LANGUAGE"); v != "" {
		c.Widget.Language = v
	}
	if v := os.Getenv("HELMDESK_THEME"); v != "" {
		c.Widget.Theme = v
	}
	if v := os.Getenv("HELMDESK_REMOTE_ENDPOINT"); v != "" {
		c.Remote.Endpoint = v
	}
	if v := os.Getenv("HELMDESK_REMOTE_KEY"); v != "" {
		c.Remote.Key = v
	}
	if v := os.Getenv("HELMDESK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
// SECURITY: Creates config files with 0600 permissions (owner read/write only).
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo saves the configuration to a specific TOML file.
func SaveTo(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	// SECURITY: Ensure permissions are correct even if file already existed
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	fmt.Fprintln(file, "# helmdesk configuration file")
	fmt.Fprintln(file, "# Generated by helmdesk - edit with care")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	validPositions := map[string]bool{
		"bottom-right": true, "bottom-left": true,
		"top-right": true, "top-left": true,
		"fullscreen": true,
	}
	if !validPositions[strings.ToLower(c.Widget.Position)] {
		errs = append(errs, ValidationError{
			Field:   "widget.position",
			Message: fmt.Sprintf("invalid position '%s', must be one of: bottom-right, bottom-left, top-right, top-left, fullscreen", c.Widget.Position),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.Widget.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "widget.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.Widget.Theme),
		})
	}

	if !hexColorRe.MatchString(c.Widget.PrimaryColor) {
		errs = append(errs, ValidationError{
			Field:   "widget.primary_color",
			Message: fmt.Sprintf("invalid color '%s', must be #RRGGBB", c.Widget.PrimaryColor),
		})
	}

	if _, err := language.Parse(c.Widget.Language); err != nil {
		errs = append(errs, ValidationError{
			Field:   "widget.language",
			Message: fmt.Sprintf("invalid language tag '%s'", c.Widget.Language),
		})
	}

	if c.Remote.Endpoint != "" {
		u, err := url.Parse(c.Remote.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "remote.endpoint",
				Message: fmt.Sprintf("invalid endpoint '%s', must be an http(s) URL", c.Remote.Endpoint),
			})
		}
	}

	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: trace, debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
