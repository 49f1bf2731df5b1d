package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	var err error

	if strings.TrimSpace(c.Paths.PrefixDir) == "" {
		c.Paths.PrefixDir = defaultPrefixDir
	}
	if c.Paths.PrefixDir, err = expandPath(c.Paths.PrefixDir); err != nil {
		return fmt.Errorf("paths.prefix_dir: %w", err)
	}

	if strings.TrimSpace(c.Paths.UnitDir) == "" {
		c.Paths.UnitDir = defaultUnitDir
	}
	if c.Paths.UnitDir, err = expandPath(c.Paths.UnitDir); err != nil {
		return fmt.Errorf("paths.unit_dir: %w", err)
	}

	c.Paths.ArtifactsDir = strings.TrimSpace(c.Paths.ArtifactsDir)
	if c.Paths.ArtifactsDir != "" {
		if c.Paths.ArtifactsDir, err = expandPath(c.Paths.ArtifactsDir); err != nil {
			return fmt.Errorf("paths.artifacts_dir: %w", err)
		}
	}

	if strings.TrimSpace(c.Paths.LockFile) == "" {
		c.Paths.LockFile = defaultLockFile
	}
	if c.Paths.LockFile, err = expandPath(c.Paths.LockFile); err != nil {
		return fmt.Errorf("paths.lock_file: %w", err)
	}

	if c.Install.WarmStartTimeoutSeconds == 0 {
		c.Install.WarmStartTimeoutSeconds = defaultWarmTimeout
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	return nil
}
