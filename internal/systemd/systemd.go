package systemd

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// State is a unit state word as reported by systemctl.
type State string

const (
	StateEnabled  State = "enabled"
	StateDisabled State = "disabled"
	StateStatic   State = "static"
	StateMasked   State = "masked"
	StateActive   State = "active"
	StateInactive State = "inactive"
	StateFailed   State = "failed"
	StateNotFound State = "not-found"
	StateUnknown  State = "unknown"
)

// Manager abstracts the service-manager operations the setup tool issues.
// The installer and uninstaller depend on this interface so tests can record
// commands without a running systemd.
type Manager interface {
	DaemonReload(ctx context.Context) error
	EnableNow(ctx context.Context, unit string) error
	Disable(ctx context.Context, unit string) error
	Stop(ctx context.Context, unit string) error
	IsEnabled(ctx context.Context, unit string) (State, error)
	IsActive(ctx context.Context, unit string) (State, error)
}

// Runner executes a command and returns its combined output. Injected in
// tests to avoid shelling out.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Systemctl implements Manager by invoking the systemctl binary.
type Systemctl struct {
	path string
	run  Runner
}

// New locates systemctl on PATH and returns a Manager backed by it.
func New() (*Systemctl, error) {
	path, err := exec.LookPath("systemctl")
	if err != nil {
		return nil, fmt.Errorf("locate systemctl: %w", err)
	}
	return &Systemctl{path: path, run: defaultRunner}, nil
}

// NewWithRunner returns a Systemctl that executes through run instead of the
// real binary.
func NewWithRunner(run Runner) *Systemctl {
	return &Systemctl{path: "systemctl", run: run}
}

func defaultRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// DaemonReload reruns the systemd unit file generators so freshly copied
// units become visible.
func (s *Systemctl) DaemonReload(ctx context.Context) error {
	return s.exec(ctx, "daemon-reload")
}

// EnableNow enables the unit for boot persistence and starts it immediately.
func (s *Systemctl) EnableNow(ctx context.Context, unit string) error {
	return s.exec(ctx, "enable", "--now", unit)
}

// Disable removes the unit's install symlinks.
func (s *Systemctl) Disable(ctx context.Context, unit string) error {
	return s.exec(ctx, "disable", unit)
}

// Stop stops the unit if it is running.
func (s *Systemctl) Stop(ctx context.Context, unit string) error {
	return s.exec(ctx, "stop", unit)
}

// IsEnabled reports the unit file state. systemctl exits non-zero for
// disabled or missing units while still printing the state word, so a
// recognized word takes precedence over the exit status.
func (s *Systemctl) IsEnabled(ctx context.Context, unit string) (State, error) {
	return s.query(ctx, "is-enabled", unit)
}

// IsActive reports the unit's activation state.
func (s *Systemctl) IsActive(ctx context.Context, unit string) (State, error) {
	return s.query(ctx, "is-active", unit)
}

func (s *Systemctl) exec(ctx context.Context, args ...string) error {
	output, err := s.run(ctx, s.path, args...)
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("systemctl %s: %w: %s", strings.Join(args, " "), err, detail)
		}
		return fmt.Errorf("systemctl %s: %w", strings.Join(args, " "), err)
	}
	return nil
}

func (s *Systemctl) query(ctx context.Context, verb, unit string) (State, error) {
	output, err := s.run(ctx, s.path, verb, unit)
	if state, ok := parseState(string(output)); ok {
		return state, nil
	}
	if err != nil {
		if strings.Contains(string(output), "No such file or directory") {
			return StateNotFound, nil
		}
		return StateUnknown, fmt.Errorf("systemctl %s %s: %w: %s", verb, unit, err, strings.TrimSpace(string(output)))
	}
	return StateUnknown, nil
}

func parseState(output string) (State, bool) {
	word := output
	if idx := strings.IndexByte(word, '\n'); idx >= 0 {
		word = word[:idx]
	}
	switch State(strings.TrimSpace(word)) {
	case StateEnabled:
		return StateEnabled, true
	case StateDisabled:
		return StateDisabled, true
	case StateStatic:
		return StateStatic, true
	case StateMasked:
		return StateMasked, true
	case StateActive:
		return StateActive, true
	case StateInactive:
		return StateInactive, true
	case StateFailed:
		return StateFailed, true
	case StateNotFound:
		return StateNotFound, true
	default:
		return StateUnknown, false
	}
}
