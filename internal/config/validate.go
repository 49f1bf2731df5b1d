package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateInstall(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	for _, entry := range []struct {
		key  string
		path string
	}{
		{"paths.prefix_dir", c.Paths.PrefixDir},
		{"paths.unit_dir", c.Paths.UnitDir},
		{"paths.lock_file", c.Paths.LockFile},
	} {
		if entry.path == "" {
			return fmt.Errorf("%s must be set", entry.key)
		}
		if !filepath.IsAbs(entry.path) {
			return fmt.Errorf("%s must be an absolute path, got %q", entry.key, entry.path)
		}
	}
	return nil
}

func (c *Config) validateInstall() error {
	if c.Install.WarmStartTimeoutSeconds < 0 {
		return errors.New("install.warm_start_timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
