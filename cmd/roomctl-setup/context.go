package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"roomctl/internal/config"
	"roomctl/internal/installer"
	"roomctl/internal/logging"
	"roomctl/internal/systemd"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	// newManager and installerOptions are swapped out in tests so commands
	// run without systemctl or root.
	newManager       func() (systemd.Manager, error)
	installerOptions []installer.Option
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		newManager: func() (systemd.Manager, error) { return systemd.New() },
	}
}

// ensureConfig loads and validates the configuration once. It never touches
// the filesystem beyond reading the config file: mutating commands do their
// own privilege checks before any side effect.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) newInstaller(opts ...installer.Option) (*installer.Installer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	manager, err := c.newManager()
	if err != nil {
		return nil, err
	}
	return installer.New(cfg, logger, manager, append(c.installerOptions, opts...)...), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
