package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the file name looked up in the working directory.
	DefaultConfigFile = ".barcodegen.yaml"

	// XDGConfigFile is the file name looked up in the XDG config directory.
	XDGConfigFile = "config.yaml"
)

// Load returns the defaults overlaid with the configuration file found by
// FindConfigFile. A missing file is not an error unless path was given
// explicitly, in which case ErrConfigNotFound is returned.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	found := FindConfigFile(path)
	if found == "" {
		if path != "" {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, nil
	}
	if err := cfg.LoadFile(found); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto c. Keys absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}
	if err := c.Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Decode overlays YAML from r onto c. Unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// FindConfigFile returns the configuration file to use, or "" when there
// is none:
// 1. configPath, if given and present
// 2. .barcodegen.yaml in the current directory
// 3. config.yaml in the XDG config directory
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	p := filepath.Join(XDGConfigDir(), XDGConfigFile)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
