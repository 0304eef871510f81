package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/gitauth/pkg/gitutil"
)

// LoadFromFile reads YAML configuration from the provided path.
// Unknown keys are rejected so typos surface instead of being ignored.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	config := New()
	if len(bytes.TrimSpace(data)) == 0 {
		return config, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return config, nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/gitauth/config.yaml, falling
// back to ~/.config/gitauth/config.yaml.
func DefaultConfigPath(lookup gitutil.LookupFunc) string {
	if lookup != nil {
		if dir, ok := lookup("XDG_CONFIG_HOME"); ok && dir != "" {
			return filepath.Join(dir, "gitauth", "config.yaml")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "gitauth", "config.yaml")
	}
	return filepath.Join(home, ".config", "gitauth", "config.yaml")
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
