package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultNumber is the top-N size used when neither the config file nor the
// -n flag specifies one.
const DefaultNumber = 10

// Config is the top-level configuration for packagecount.
type Config struct {
	Number int      `yaml:"number"` // Default top-N size
	Ignore []string `yaml:"ignore"` // Packages excluded from the report
	All    bool     `yaml:"all"`    // Report the whole database, not only explicit installs
}

// Load reads and parses a configuration file, filling in defaults for
// omitted values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Config{Number: DefaultNumber}
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".packagecount.yaml",
		".packagecount.yml",
		"packagecount.yaml",
		"packagecount.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if cfg.Number < 1 {
		return fmt.Errorf("number must be a positive integer, got %d", cfg.Number)
	}
	return nil
}
