// Package config manages the venvctl configuration file. A project-local
// .venvctl.yaml takes precedence over the per-user ~/.venvctl/config.yaml,
// so a repository can pin its own interpreter order and venv directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotFound means neither the project nor the home config file exists.
var ErrNotFound = errors.New("config file not found")

// LocalFile is the project-local config file name, looked up in the
// working directory.
const LocalFile = ".venvctl.yaml"

// DefaultVenvDir is the environment directory used when config is absent.
const DefaultVenvDir = "venv"

type Config struct {
	// Interpreters is the ordered list of interpreter invocation names
	// tried during provisioning. Empty means the per-OS defaults.
	Interpreters []string `yaml:"interpreters,omitempty"`
	Venv         Venv     `yaml:"venv"`

	source string // path the config was loaded from, empty for defaults
}

type Venv struct {
	Dir    string `yaml:"dir"`
	Prompt string `yaml:"prompt,omitempty"`
}

// Dir returns the per-user config directory path (~/.venvctl).
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".venvctl")
}

// Path returns the per-user config file path (~/.venvctl/config.yaml).
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// LocalPath returns the project-local config file path (./.venvctl.yaml).
func LocalPath() string {
	return LocalFile
}

// Exists checks if any config file exists.
func Exists() bool {
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

func searchPaths() []string {
	return []string{LocalPath(), Path()}
}

// Load reads the first config file found in search order (project, then
// home). Returns ErrNotFound if neither exists.
func Load() (*Config, error) {
	for _, path := range searchPaths() {
		cfg, err := loadFrom(path)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		return cfg, nil
	}
	return nil, ErrNotFound
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.source = path
	return &cfg, nil
}

// Source returns the path the config was loaded from, or "" for a config
// that never touched disk (Default, zero value).
func (c *Config) Source() string {
	return c.source
}

// VenvDir returns the configured environment directory, defaulting to
// DefaultVenvDir.
func (c *Config) VenvDir() string {
	if c == nil || c.Venv.Dir == "" {
		return DefaultVenvDir
	}
	return c.Venv.Dir
}

// Validate checks the config for values that would break provisioning.
func (c *Config) Validate() error {
	for _, name := range c.Interpreters {
		if name == "" {
			return fmt.Errorf("interpreters must not contain empty names")
		}
	}
	if c.Venv.Dir != "" {
		if c.Venv.Dir == "." || c.Venv.Dir == ".." {
			return fmt.Errorf("venv.dir %q is not a usable directory", c.Venv.Dir)
		}
	}
	return nil
}

// Save writes the config to the per-user file, creating the directory if
// needed.
func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return saveTo(Path(), cfg)
}

// SaveLocal writes the config to the project-local file.
func SaveLocal(cfg *Config) error {
	return saveTo(LocalPath(), cfg)
}

func saveTo(path string, cfg *Config) error {
	data, err := marshalConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func marshalConfig(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		Venv: Venv{Dir: DefaultVenvDir},
	}
}
