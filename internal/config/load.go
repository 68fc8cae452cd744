package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned by FindConfigFile when no config file exists.
var ErrConfigNotFound = errors.New("config file not found")

type loadOptions struct {
	target     string
	skipTarget bool
}

// LoadOption adjusts how Load builds the configuration.
type LoadOption func(*loadOptions)

// WithTargetOverride replaces the target network after file and environment
// values are applied. An empty name is ignored.
func WithTargetOverride(name string) LoadOption {
	return func(o *loadOptions) {
		o.target = name
	}
}

// WithoutTarget skips the target network requirement, for commands that
// only talk to the API.
func WithoutTarget() LoadOption {
	return func(o *loadOptions) {
		o.skipTarget = true
	}
}

// Load builds a validated configuration.
//
// If path is empty, the default config file is searched for with
// FindConfigFile; a missing default file is not an error because every
// setting can also come from the environment. Environment variables take
// precedence over file values, and a target override over both.
func Load(path string, opts ...LoadOption) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	cfg := &Config{}

	if path == "" {
		found, err := FindConfigFile()
		switch {
		case err == nil:
			path = found
		case !errors.Is(err, ErrConfigNotFound):
			return nil, err
		}
	}

	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	ApplyEnv(cfg, os.LookupEnv)
	if o.target != "" {
		cfg.TargetNetwork = o.target
	}
	cfg.Timeouts = LoadTimeouts()

	validate := cfg.Validate
	if o.skipTarget {
		validate = cfg.ValidateConnection
	}
	if err := validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadFile reads and parses the configuration from a YAML file.
// The result is not validated.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides config values with any set environment variables.
// Empty values are treated as unset.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		cfg.APIURL = v
	}
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		cfg.APIKey = v
	}
	if v, ok := lookup(EnvTargetNetwork); ok && v != "" {
		cfg.TargetNetwork = v
	}
}

// FindConfigFile searches for DefaultConfigFilename in the current directory
// and then in each parent directory.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return findConfigFileFrom(cwd)
}

func findConfigFileFrom(dir string) (string, error) {
	for {
		path := filepath.Join(dir, DefaultConfigFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}
		dir = parent
	}
}
