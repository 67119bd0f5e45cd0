package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/gitdata/domain"
)

// Config is the top-level configuration for gitdata.
type Config struct {
	Output   string            `yaml:"output"`   // "pretty" or "compact"
	Encoding string            `yaml:"encoding"` // default blob upload encoding
	Modes    map[string]string `yaml:"modes"`    // glob pattern -> file mode override
}

const (
	OutputPretty  = "pretty"
	OutputCompact = "compact"
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Output:   OutputPretty,
		Encoding: string(domain.EncodingBase64),
	}
}

// Load reads and parses a configuration file, filling unset fields with
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := Validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
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
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".gitdata.yaml",
		".gitdata.yml",
		"gitdata.yaml",
		"gitdata.yml",
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

// Validate checks for supported configuration values.
func Validate(cfg *Config) error {
	if cfg.Output != OutputPretty && cfg.Output != OutputCompact {
		return fmt.Errorf("output must be %q or %q, got %q", OutputPretty, OutputCompact, cfg.Output)
	}

	if _, err := domain.ParseEncoding(cfg.Encoding); err != nil {
		return fmt.Errorf("encoding must be %q or %q, got %q",
			domain.EncodingBase64, domain.EncodingUTF8, cfg.Encoding)
	}

	for pattern, mode := range cfg.Modes {
		if _, err := domain.ParseBlobMode(mode); err != nil {
			return fmt.Errorf(
				"modes[%q] must be %q or %q, got %q",
				pattern, domain.ModeFile, domain.ModeExecutable, mode,
			)
		}
	}

	return nil
}

// BlobModes converts the configured mode overrides to their typed form.
// Validate must have accepted the config first.
func (c *Config) BlobModes() map[string]domain.BlobMode {
	if len(c.Modes) == 0 {
		return nil
	}
	modes := make(map[string]domain.BlobMode, len(c.Modes))
	for pattern, raw := range c.Modes {
		mode, err := domain.ParseBlobMode(raw)
		if err != nil {
			continue
		}
		modes[pattern] = mode
	}
	return modes
}

// DefaultEncoding returns the configured upload encoding in its typed form.
func (c *Config) DefaultEncoding() domain.Encoding {
	enc, err := domain.ParseEncoding(c.Encoding)
	if err != nil {
		return domain.EncodingBase64
	}
	return enc
}
