// Package config loads the optional featherweight.yaml of a project
// directory and resolves defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = "featherweight.yaml"

// Defaults for unset fields.
const (
	DefaultRootID    = "app"
	DefaultDemo      = "counter"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	defaultAppName   = "featherweight_app"
)

// Config represents the optional featherweight.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name   string `yaml:"name,omitempty"`
	RootID string `yaml:"root_id,omitempty"`
}

// RenderConfig selects what the CLI mounts.
type RenderConfig struct {
	Demo string `yaml:"demo,omitempty"`
	// Check installs the xor state-machine checker on every render.
	Check bool `yaml:"check,omitempty"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	File       string // path of the loaded file, or "" when absent
	ModulePath string // "" outside a Go module
	AppName    string
	RootID     string
	Demo       string
	Check      bool
	LogLevel   slog.Level
	LogFormat  string
}

// LoadOptional reads featherweight.yaml from dir if present. It reports
// whether the file existed.
func LoadOptional(dir string) (*Config, bool, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, true, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, true, nil
}

// Resolve loads featherweight.yaml (if present) from dir and resolves
// defaults. The app name defaults to the last element of the module path
// in dir's go.mod, or to the directory name outside a module.
func Resolve(dir string) (*Resolved, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	cfg, found, err := LoadOptional(abs)
	if err != nil {
		return nil, err
	}

	modulePath, err := modulePath(abs)
	if err != nil {
		return nil, err
	}

	res := &Resolved{
		Root:       abs,
		ModulePath: modulePath,
		AppName:    strings.TrimSpace(cfg.App.Name),
		RootID:     strings.TrimSpace(cfg.App.RootID),
		Demo:       strings.TrimSpace(cfg.Render.Demo),
		Check:      cfg.Render.Check,
		LogFormat:  strings.ToLower(strings.TrimSpace(cfg.Log.Format)),
	}
	if found {
		res.File = filepath.Join(abs, FileName)
	}
	if res.AppName == "" {
		res.AppName = appNameFor(modulePath, abs)
	}
	if res.RootID == "" {
		res.RootID = DefaultRootID
	}
	if res.Demo == "" {
		res.Demo = DefaultDemo
	}
	if res.LogFormat == "" {
		res.LogFormat = DefaultLogFormat
	}

	level := strings.TrimSpace(cfg.Log.Level)
	if level == "" {
		level = DefaultLogLevel
	}
	if res.LogLevel, err = ParseLevel(level); err != nil {
		return nil, err
	}
	if err := validateRootID(res.RootID); err != nil {
		return nil, err
	}
	if res.LogFormat != "text" && res.LogFormat != "json" {
		return nil, fmt.Errorf("log.format must be text or json (got %q)", cfg.Log.Format)
	}
	return res, nil
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level must be debug, info, warn or error (got %q)", s)
	}
	return level, nil
}

// modulePath returns the module path of dir/go.mod, or "" when there is
// none.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func appNameFor(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return defaultAppName
	}
	return base
}

func validateRootID(id string) error {
	for _, r := range id {
		if unicode.IsSpace(r) || r == '"' || r == '<' || r == '>' {
			return fmt.Errorf("app.root_id contains invalid character %q in %q", r, id)
		}
	}
	return nil
}
