package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DirName is the name of the directory created under the user's home.
	DirName = ".kembang"

	// FileName is the config file inside the kembang home.
	FileName = "config.yaml"

	defaultTimeout = 30 * time.Second
)

const defaultConfigYAML = `# kembang configuration
version: 1

# Backend base URL (including /api/v1).
api_url: ` + DefaultAPIURL + `

# Per-request HTTP timeout.
timeout: 30s

# debug | info | warn | error. Events go to logs/kembang.log.
log_level: info

# Colored output for non-interactive commands.
color: true
`

// File models <home>/config.yaml.
type File struct {
	Version  int    `yaml:"version"`
	APIURL   string `yaml:"api_url"`
	Timeout  string `yaml:"timeout"`
	LogLevel string `yaml:"log_level"`
	Color    *bool  `yaml:"color,omitempty"`
}

// Config holds the resolved runtime configuration.
type Config struct {
	Home     string
	APIURL   string
	Timeout  time.Duration
	LogLevel string
	Color    bool
}

// DefaultHome returns ~/.kembang, or KEMBANG_HOME when set.
func DefaultHome() (string, error) {
	if h := Env().Home; h != "" {
		return h, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DirName), nil
}

// EnsureHome creates the home directory and writes the default config file
// when none exists yet.
func EnsureHome(home string) error {
	if err := os.MkdirAll(home, 0o700); err != nil {
		return err
	}
	path := filepath.Join(home, FileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o600)
}

// Load reads <home>/config.yaml and applies environment overrides. A missing
// file yields the defaults.
func Load(home string) (Config, error) {
	cfg := Config{
		Home:     home,
		APIURL:   DefaultAPIURL,
		Timeout:  defaultTimeout,
		LogLevel: "info",
		Color:    true,
	}

	raw, err := os.ReadFile(filepath.Join(home, FileName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("config: read: %w", err)
	default:
		var f File
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", FileName, err)
		}
		if err := f.apply(&cfg); err != nil {
			return cfg, err
		}
	}

	e := Env()
	if e.APIURL != "" {
		cfg.APIURL = e.APIURL
	}
	if e.LogLevel != "" {
		cfg.LogLevel = e.LogLevel
	}
	if e.NoColor {
		cfg.Color = false
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return cfg, nil
}

func (f File) apply(cfg *Config) error {
	if f.APIURL != "" {
		cfg.APIURL = f.APIURL
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("config: timeout %q: %w", f.Timeout, err)
		}
		cfg.Timeout = d
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if f.Color != nil {
		cfg.Color = *f.Color
	}
	return nil
}
