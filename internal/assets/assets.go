// Package assets bundles the deployable power-scheduler artifacts.
//
// The setup binary carries the job script and both systemd unit files so a
// bare binary can provision a host without a source checkout. Installing from
// a directory instead (paths.artifacts_dir) bypasses the embedded copies,
// which matters when an operator patches the job script locally.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// Unit and artifact names shared by the installer, uninstaller, and status
// reporting. The service name is fixed; the schedule file lives next to the
// job script and is owned by the operator UI after installation.
const (
	ServiceName  = "roomctl-power-scheduler"
	ServiceUnit  = ServiceName + ".service"
	TimerUnit    = ServiceName + ".timer"
	ScriptName   = "power_scheduler.py"
	ScheduleName = "power_schedule.yaml"
)

//go:embed artifacts
var embedded embed.FS

// FS returns the embedded artifact tree with the unit files and job script at
// its root, interchangeable with an os.DirFS over an artifacts directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "artifacts")
	if err != nil {
		// The artifacts directory is compiled in; a failure here means a
		// broken build, not a runtime condition.
		panic(fmt.Sprintf("embedded artifacts unavailable: %v", err))
	}
	return sub
}

// Names lists every artifact the installer deploys, in install order.
func Names() []string {
	return []string{ScriptName, ServiceUnit, TimerUnit}
}

// Source resolves the artifact source tree: the embedded copies when dir is
// empty, otherwise the given directory. The returned description is meant
// for logs and check output.
func Source(dir string) (fs.FS, string, error) {
	if dir == "" {
		return FS(), "embedded artifacts", nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, "", fmt.Errorf("artifacts directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, "", fmt.Errorf("artifacts directory %q: not a directory", dir)
	}
	return os.DirFS(dir), fmt.Sprintf("directory %s", dir), nil
}
