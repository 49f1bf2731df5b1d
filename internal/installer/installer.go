package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"roomctl/internal/assets"
	"roomctl/internal/config"
	"roomctl/internal/fileutil"
	"roomctl/internal/logging"
	"roomctl/internal/systemd"
)

// ErrRootRequired reports that the current process lacks the privileges the
// operation needs. Nothing has been touched when this is returned.
var ErrRootRequired = errors.New("root privileges required; re-run with sudo")

// Action describes what a provisioning step did to its target.
type Action string

const (
	ActionInstalled Action = "installed"
	ActionUpdated   Action = "updated"
	ActionUnchanged Action = "unchanged"
	ActionCreated   Action = "created"
	ActionExists    Action = "exists"
	ActionRemoved   Action = "removed"
	ActionAbsent    Action = "absent"
)

// Step records the outcome of one provisioning step.
type Step struct {
	Name   string
	Path   string
	Action Action
}

// Result captures an install or uninstall run.
type Result struct {
	RunID string
	Steps []Step

	// Warm start outcome. The error is informational: install succeeds
	// regardless.
	WarmStartRan bool
	WarmStartErr error
}

// Hint returns the command an operator can use to verify the installation.
func (r *Result) Hint() string {
	return "systemctl status " + assets.TimerUnit
}

// Installer provisions the roomctl power scheduler on the local host.
type Installer struct {
	cfg     *config.Config
	logger  *slog.Logger
	manager systemd.Manager
	stdout  io.Writer
	stderr  io.Writer
	euid    func() int
	runJob  func(ctx context.Context, script string) error
}

// Option customizes an Installer, mainly for tests.
type Option func(*Installer)

// WithEuid overrides the effective-uid lookup used by the privilege check.
func WithEuid(euid func() int) Option {
	return func(i *Installer) { i.euid = euid }
}

// WithJobRunner overrides how the job script is invoked.
func WithJobRunner(run func(ctx context.Context, script string) error) Option {
	return func(i *Installer) { i.runJob = run }
}

// WithOutput redirects the warm start's inherited stdout/stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(i *Installer) {
		i.stdout = stdout
		i.stderr = stderr
	}
}

// New constructs an Installer. A nil logger discards logs.
func New(cfg *config.Config, logger *slog.Logger, manager systemd.Manager, opts ...Option) *Installer {
	if logger == nil {
		logger = logging.NewNop()
	}
	inst := &Installer{
		cfg:     cfg,
		logger:  logger,
		manager: manager,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		euid:    os.Geteuid,
	}
	inst.runJob = inst.execJob
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

// Install provisions the power scheduler: artifacts in place, timer enabled
// and started, one best-effort warm start. Steps are fail-fast except the
// warm start, whose outcome is recorded but never propagated.
func (i *Installer) Install(ctx context.Context) (*Result, error) {
	if i.euid() != 0 {
		return nil, ErrRootRequired
	}

	unlock, err := i.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	result := &Result{RunID: uuid.NewString()}
	log := i.logger.With(logging.String("run_id", result.RunID))

	source, sourceDesc, err := assets.Source(i.cfg.Paths.ArtifactsDir)
	if err != nil {
		return nil, err
	}
	log.Info("installing power scheduler", logging.String("source", sourceDesc))

	if err := i.ensureConfigDir(result, log); err != nil {
		return nil, err
	}

	installs := []struct {
		name string
		path string
		mode os.FileMode
	}{
		{assets.ScriptName, i.cfg.ScriptPath(), 0o755},
		{assets.ServiceUnit, i.cfg.ServiceUnitPath(), 0o644},
		{assets.TimerUnit, i.cfg.TimerUnitPath(), 0o644},
	}
	for _, artifact := range installs {
		action, err := installArtifact(source, artifact.name, artifact.path, artifact.mode)
		if err != nil {
			return nil, fmt.Errorf("install %s: %w", artifact.name, err)
		}
		result.Steps = append(result.Steps, Step{Name: artifact.name, Path: artifact.path, Action: action})
		log.Info("artifact processed",
			logging.String("artifact", artifact.name),
			logging.String("path", artifact.path),
			logging.String("action", string(action)),
		)
	}

	if err := i.ensureScheduleFile(result, log); err != nil {
		return nil, err
	}

	if err := i.manager.DaemonReload(ctx); err != nil {
		return nil, fmt.Errorf("reload unit definitions: %w", err)
	}
	if err := i.manager.EnableNow(ctx, assets.TimerUnit); err != nil {
		return nil, fmt.Errorf("enable timer unit: %w", err)
	}
	log.Info("timer unit enabled", logging.String("unit", assets.TimerUnit))

	if i.cfg.Install.WarmStart {
		result.WarmStartRan = true
		// Fire and forget: the scheduler recomputes on the next timer tick
		// anyway, so a failed warm start must not fail the install.
		if err := i.runJob(ctx, i.cfg.ScriptPath()); err != nil {
			result.WarmStartErr = err
			log.Warn("warm start failed", logging.Error(err))
		} else {
			log.Info("warm start completed")
		}
	}

	return result, nil
}

// RunJob invokes the installed job script once and reports its real outcome.
func (i *Installer) RunJob(ctx context.Context) error {
	return i.runJob(ctx, i.cfg.ScriptPath())
}

func (i *Installer) execJob(ctx context.Context, script string) error {
	if timeout := i.cfg.Install.WarmStartTimeoutSeconds; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, script)
	cmd.Stdout = i.stdout
	cmd.Stderr = i.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", script, err)
	}
	return nil
}

func (i *Installer) acquireLock() (func(), error) {
	lock := flock.New(i.cfg.Paths.LockFile)
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire install lock %s: %w", i.cfg.Paths.LockFile, err)
	}
	if !acquired {
		return nil, fmt.Errorf("another roomctl-setup run holds %s", i.cfg.Paths.LockFile)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			i.logger.Warn("failed to release install lock", logging.Error(err))
		}
	}, nil
}

func (i *Installer) ensureConfigDir(result *Result, log *slog.Logger) error {
	dir := i.cfg.ConfigDir()
	action := ActionExists
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		action = ActionCreated
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory %q: %w", dir, err)
	}
	result.Steps = append(result.Steps, Step{Name: "config directory", Path: dir, Action: action})
	log.Info("config directory ready", logging.String("path", dir), logging.String("action", string(action)))
	return nil
}

// ensureScheduleFile creates the empty schedule placeholder. An existing
// file is operator data and is left byte-for-byte alone.
func (i *Installer) ensureScheduleFile(result *Result, log *slog.Logger) error {
	path := i.cfg.SchedulePath()
	created, err := fileutil.EnsureFile(path, 0o644)
	if err != nil {
		return fmt.Errorf("create schedule placeholder %q: %w", path, err)
	}
	action := ActionExists
	if created {
		action = ActionCreated
	}
	result.Steps = append(result.Steps, Step{Name: assets.ScheduleName, Path: path, Action: action})
	log.Info("schedule file ready", logging.String("path", path), logging.String("action", string(action)))
	return nil
}

func installArtifact(source fs.FS, name, path string, mode os.FileMode) (Action, error) {
	data, err := fs.ReadFile(source, name)
	if err != nil {
		return "", fmt.Errorf("read source artifact: %w", err)
	}

	same, err := fileutil.Equal(path, data)
	if err != nil {
		return "", err
	}
	if same {
		changed, err := fileutil.EnsureMode(path, mode)
		if err != nil {
			return "", err
		}
		if changed {
			return ActionUpdated, nil
		}
		return ActionUnchanged, nil
	}

	action := ActionInstalled
	if _, err := os.Stat(path); err == nil {
		action = ActionUpdated
	}
	if err := fileutil.WriteFileMode(path, data, mode); err != nil {
		return "", err
	}
	return action, nil
}
