package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "config.yaml"))
}

// SaveTo writes the config to a specific path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Persist writes the effective config when --save or --save-config was
// given and returns the path written. An explicit path wins over --save.
// It returns an empty path when neither flag is set.
func Persist(cfg *Config) (string, error) {
	var path string
	switch {
	case *flagSaveConfig != "":
		path = *flagSaveConfig
	case *flagSave:
		path = filepath.Join(ConfigDir(), "config.yaml")
	default:
		return "", nil
	}

	if err := cfg.SaveTo(path); err != nil {
		return "", fmt.Errorf("saving config to %s: %w", path, err)
	}
	return path, nil
}
