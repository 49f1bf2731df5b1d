package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"roomctl/internal/assets"
	"roomctl/internal/config"
	"roomctl/internal/schedule"
)

// CheckPrivilege verifies the effective uid grants write access to system
// locations. Install and uninstall refuse to run without it; doctor only
// reports it, so the result is informational and never fails the verdict.
func CheckPrivilege(euid int) Result {
	const name = "Root privileges"
	if euid == 0 {
		return Result{Name: name, Passed: true, Informational: true, Detail: "running as root"}
	}
	return Result{
		Name:          name,
		Informational: true,
		Detail:        fmt.Sprintf("running as uid %d (install requires root)", euid),
	}
}

// CheckDirectoryWritable verifies that path, or its nearest existing
// ancestor, can be written. Install creates missing directories, so a
// missing path is fine as long as something above it is writable.
func CheckDirectoryWritable(name, path string) Result {
	target := path
	for {
		info, err := os.Stat(target)
		if err == nil {
			if !info.IsDir() {
				return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", target)}
			}
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", target, err)}
		}
		parent := filepath.Dir(target)
		if parent == target {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing ancestor)", path)}
		}
		target = parent
	}

	if err := unix.Access(target, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", target, err)}
	}
	if target == path {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created under %s)", path, target)}
}

// CheckArtifactSource verifies that every deployable artifact is readable
// from the configured source, catching a bad artifacts_dir before install.
func CheckArtifactSource(cfg *config.Config) Result {
	const name = "Artifact source"
	source, description, err := assets.Source(cfg.Paths.ArtifactsDir)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	for _, artifact := range assets.Names() {
		if _, err := fs.Stat(source, artifact); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s: missing %s", description, artifact)}
		}
	}
	return Result{Name: name, Passed: true, Detail: description}
}

// CheckScheduleFile verifies the operator schedule parses and validates. An
// absent or empty schedule passes; it is the expected state on a fresh host.
func CheckScheduleFile(path string) Result {
	const name = "Schedule file"
	sched, err := schedule.Load(path)
	if err != nil {
		if errors.Is(err, schedule.ErrNotConfigured) {
			return Result{Name: name, Passed: true, Detail: "empty (not configured yet)"}
		}
		return Result{Name: name, Detail: err.Error()}
	}
	if err := sched.Validate(); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: sched.Summary()}
}
