// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles the user configuration file: built-in defaults,
// overridden by ~/.config/iucli/config.yaml, overridden by IUCLI_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"iucli/internal/logger"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment variables that override configuration keys,
// e.g. IUCLI_DEFAULT_MANAGER=pnpm.
const EnvPrefix = "IUCLI_"

const (
	KeyDefaultProjectName = "default_project_name"
	KeyDefaultManager     = "default_manager"
	KeyTemplatesDir       = "templates_dir"
	KeyLogLevel           = "log_level"
	KeyRename             = "rename"
)

// Config represents the top-level application configuration
type Config struct {
	// DefaultProjectName is offered by the project name prompt
	DefaultProjectName string `koanf:"default_project_name" yaml:"default_project_name,omitempty"`

	// DefaultManager is used when no package manager user agent is set
	DefaultManager string `koanf:"default_manager" yaml:"default_manager,omitempty"`

	// TemplatesDir replaces the embedded templates when set (optional)
	TemplatesDir string `koanf:"templates_dir" yaml:"templates_dir,omitempty"`

	// LogLevel is one of debug, info, warn or error
	LogLevel string `koanf:"log_level" yaml:"log_level,omitempty"`

	// Rename maps template file names to project file names. Entries are
	// merged over the built-in table.
	Rename map[string]string `koanf:"rename" yaml:"rename,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DefaultProjectName: "my-iu-app",
		DefaultManager:     "npm",
		LogLevel:           "info",
		Rename:             map[string]string{"_gitignore": ".gitignore"},
	}
}

// Keys lists the settable configuration keys.
func Keys() []string {
	return []string{KeyDefaultProjectName, KeyDefaultManager, KeyTemplatesDir, KeyLogLevel, KeyRename}
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "iucli", "config.yaml"), nil
}

// Load reads the configuration from the default path.
func Load() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(configPath)
}

// LoadFrom layers defaults, the YAML file at configPath (if present) and the
// environment.
func LoadFrom(configPath string) (Config, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", configPath, err)
	}

	dir, err := ResolvePath(cfg.TemplatesDir)
	if err != nil {
		return Config{}, err
	}
	cfg.TemplatesDir = dir

	logger.Debug("Loaded configuration", "path", configPath, "keys", k.Keys())
	return cfg, nil
}

func loadDefaults(k *koanf.Koanf) {
	d := Defaults()
	k.Set(KeyDefaultProjectName, d.DefaultProjectName)
	k.Set(KeyDefaultManager, d.DefaultManager)
	k.Set(KeyTemplatesDir, d.TemplatesDir)
	k.Set(KeyLogLevel, d.LogLevel)
	for from, to := range d.Rename {
		k.Set(KeyRename+"."+from, to)
	}
}

// envTransform maps IUCLI_DEFAULT_MANAGER to default_manager.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// Validate rejects values the scaffolder cannot use.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DefaultProjectName) == "" {
		return fmt.Errorf("%s must not be empty", KeyDefaultProjectName)
	}
	if c.DefaultManager == "" || strings.ContainsAny(c.DefaultManager, " \t/") {
		return fmt.Errorf("%s %q is not a package manager name", KeyDefaultManager, c.DefaultManager)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	for from, to := range c.Rename {
		if from == "" || strings.ContainsRune(to, '/') || strings.ContainsRune(from, '/') {
			return fmt.Errorf("%s entry %q -> %q must map plain file names", KeyRename, from, to)
		}
	}
	return nil
}

// ReadFile returns only what the file at configPath sets, without defaults
// or environment overrides. A missing file yields an empty Config.
func ReadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yamlv3.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// SaveTo writes cfg to configPath, creating the directory if needed.
func SaveTo(configPath string, cfg Config) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil { // rwxr-x---
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	if err := os.WriteFile(configPath, data, 0640); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}
	return nil
}

// Get renders one key of cfg. Rename entries are addressed as rename.<from>.
func (c Config) Get(key string) (string, error) {
	switch key {
	case KeyDefaultProjectName:
		return c.DefaultProjectName, nil
	case KeyDefaultManager:
		return c.DefaultManager, nil
	case KeyTemplatesDir:
		return c.TemplatesDir, nil
	case KeyLogLevel:
		return c.LogLevel, nil
	case KeyRename:
		froms := make([]string, 0, len(c.Rename))
		for from := range c.Rename {
			froms = append(froms, from)
		}
		slices.Sort(froms)
		lines := make([]string, len(froms))
		for i, from := range froms {
			lines[i] = from + " -> " + c.Rename[from]
		}
		return strings.Join(lines, "\n"), nil
	}

	if from, ok := strings.CutPrefix(key, KeyRename+"."); ok && from != "" {
		return c.Rename[from], nil
	}
	return "", fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
}

// Set updates one key of cfg. An empty value for rename.<from> removes the
// entry.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyDefaultProjectName:
		c.DefaultProjectName = value
		return nil
	case KeyDefaultManager:
		c.DefaultManager = value
		return nil
	case KeyTemplatesDir:
		c.TemplatesDir = value
		return nil
	case KeyLogLevel:
		if _, err := logger.ParseLevel(value); err != nil {
			return err
		}
		c.LogLevel = value
		return nil
	case KeyRename:
		return fmt.Errorf("set rename entries with %s.<from> <to>", KeyRename)
	}

	if from, ok := strings.CutPrefix(key, KeyRename+"."); ok && from != "" {
		if value == "" {
			delete(c.Rename, from)
			return nil
		}
		if strings.Contains(from, ".") {
			return fmt.Errorf("rename source %q must not contain a dot", from)
		}
		if c.Rename == nil {
			c.Rename = make(map[string]string)
		}
		c.Rename[from] = value
		return nil
	}
	return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
}

// ResolvePath expands a leading ~/ to the user's home directory.
func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
