package config

const (
	defaultConfigPath  = "/etc/roomctl/roomctl-setup.toml"
	projectConfigName  = "roomctl-setup.toml"
	defaultPrefixDir   = "/opt/roomctl"
	defaultUnitDir     = "/etc/systemd/system"
	defaultLockFile    = "/run/roomctl-setup.lock"
	defaultWarmTimeout = 120
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with the standard roomctl layout.
func Default() Config {
	return Config{
		Paths: Paths{
			PrefixDir: defaultPrefixDir,
			UnitDir:   defaultUnitDir,
			LockFile:  defaultLockFile,
		},
		Install: Install{
			WarmStart:               true,
			WarmStartTimeoutSeconds: defaultWarmTimeout,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
