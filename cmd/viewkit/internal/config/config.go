package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the optional project configuration file.
const FileName = "viewkit.yaml"

// DefaultMaxTurns bounds how many run loop turns a replay may take to settle.
const DefaultMaxTurns = 100

// Config represents the optional viewkit.yaml configuration.
type Config struct {
	App   AppConfig   `yaml:"app"`
	Trace TraceConfig `yaml:"trace"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// TraceConfig controls how lifecycle traces are printed.
type TraceConfig struct {
	// Color is auto, always or never.
	Color string `yaml:"color,omitempty"`
	// Verbose also prints phase advances and catch-up passes.
	Verbose bool `yaml:"verbose,omitempty"`
	// MaxTurns bounds run loop draining during replay.
	MaxTurns int `yaml:"max_turns,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Color      string
	Verbose    bool
	MaxTurns   int
}

// LoadOptional reads viewkit.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads viewkit.yaml (if present) and resolves defaults. dir need
// not be a Go module; without go.mod the app name falls back to the
// directory name.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	color := strings.ToLower(strings.TrimSpace(cfg.Trace.Color))
	if color == "" {
		color = "auto"
	}
	if err := validateColor(color); err != nil {
		return nil, err
	}

	maxTurns := cfg.Trace.MaxTurns
	if maxTurns < 0 {
		return nil, fmt.Errorf("trace.max_turns must not be negative (got %d)", maxTurns)
	}
	if maxTurns == 0 {
		maxTurns = DefaultMaxTurns
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Color:      color,
		Verbose:    cfg.Trace.Verbose,
		MaxTurns:   maxTurns,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod or
// viewkit.yaml. It falls back to the current directory.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := start
	for {
		for _, marker := range []string{"go.mod", FileName} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	return modfile.ModulePath(data), nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "viewkit_app"
	}
	return base
}

func validateColor(color string) error {
	switch color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("trace.color must be auto, always or never (got %q)", color)
	}
}
