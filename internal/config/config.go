package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"roomctl/internal/assets"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the filesystem layout the setup tool provisions.
type Paths struct {
	PrefixDir    string `toml:"prefix_dir"`
	UnitDir      string `toml:"unit_dir"`
	ArtifactsDir string `toml:"artifacts_dir"`
	LockFile     string `toml:"lock_file"`
}

// Install contains knobs for the install operation itself.
type Install struct {
	WarmStart               bool `toml:"warm_start"`
	WarmStartTimeoutSeconds int  `toml:"warm_start_timeout_seconds"`
}

// Logging contains log output configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates every setting roomctl-setup honours. The tool works
// with no config file at all; the defaults reproduce the standard roomctl
// layout exactly.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Install Install `toml:"install"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the system-wide configuration file location.
func DefaultConfigPath() string {
	return defaultConfigPath
}

// Load locates, parses, normalizes, and validates a configuration file. When
// no file exists the defaults are returned; the boolean reports whether a
// file was actually read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultConfigPath); err == nil && !info.IsDir() {
		return defaultConfigPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultConfigPath, false, nil
}

// ConfigDir returns the directory that receives the job script and schedule.
func (c *Config) ConfigDir() string {
	return filepath.Join(c.Paths.PrefixDir, "config")
}

// ScriptPath returns the installed location of the power-scheduler script.
func (c *Config) ScriptPath() string {
	return filepath.Join(c.ConfigDir(), assets.ScriptName)
}

// SchedulePath returns the location of the operator-owned schedule file.
func (c *Config) SchedulePath() string {
	return filepath.Join(c.ConfigDir(), assets.ScheduleName)
}

// ServiceUnitPath returns the installed location of the service unit.
func (c *Config) ServiceUnitPath() string {
	return filepath.Join(c.Paths.UnitDir, assets.ServiceUnit)
}

// TimerUnitPath returns the installed location of the timer unit.
func (c *Config) TimerUnitPath() string {
	return filepath.Join(c.Paths.UnitDir, assets.TimerUnit)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
