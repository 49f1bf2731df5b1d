package installer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"roomctl/internal/assets"
	"roomctl/internal/fileutil"
	"roomctl/internal/logging"
)

// Uninstall stops and disables the timer and removes the provisioned
// artifacts. The schedule file survives unless purge is set: it is operator
// data, not something the installer wrote.
func (i *Installer) Uninstall(ctx context.Context, purge bool) (*Result, error) {
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
	log.Info("uninstalling power scheduler", logging.Bool("purge", purge))

	// Stop and disable before removing the unit files. Failures here usually
	// mean the units were never installed, so they only warrant a debug line.
	if err := i.manager.Stop(ctx, assets.TimerUnit); err != nil {
		log.Debug("stop timer unit", logging.Error(err))
	}
	if err := i.manager.Disable(ctx, assets.TimerUnit); err != nil {
		log.Debug("disable timer unit", logging.Error(err))
	}

	removals := []struct {
		name string
		path string
	}{
		{assets.TimerUnit, i.cfg.TimerUnitPath()},
		{assets.ServiceUnit, i.cfg.ServiceUnitPath()},
		{assets.ScriptName, i.cfg.ScriptPath()},
	}
	for _, target := range removals {
		removed, err := fileutil.RemoveFile(target.path)
		if err != nil {
			return nil, fmt.Errorf("remove %s: %w", target.name, err)
		}
		action := ActionAbsent
		if removed {
			action = ActionRemoved
		}
		result.Steps = append(result.Steps, Step{Name: target.name, Path: target.path, Action: action})
		log.Info("artifact removed",
			logging.String("artifact", target.name),
			logging.String("path", target.path),
			logging.String("action", string(action)),
		)
	}

	if err := i.manager.DaemonReload(ctx); err != nil {
		return nil, fmt.Errorf("reload unit definitions: %w", err)
	}

	if purge {
		if err := i.purgeScheduleAndDirs(result, log); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (i *Installer) purgeScheduleAndDirs(result *Result, log *slog.Logger) error {
	path := i.cfg.SchedulePath()
	removed, err := fileutil.RemoveFile(path)
	if err != nil {
		return fmt.Errorf("remove schedule file: %w", err)
	}
	action := ActionAbsent
	if removed {
		action = ActionRemoved
	}
	result.Steps = append(result.Steps, Step{Name: assets.ScheduleName, Path: path, Action: action})
	log.Info("schedule file purged", logging.String("path", path), logging.String("action", string(action)))

	// Remove the directories only when empty; anything else in them is not
	// ours to delete.
	for _, dir := range []string{i.cfg.ConfigDir(), i.cfg.Paths.PrefixDir} {
		if err := os.Remove(dir); err != nil {
			log.Debug("directory left in place", logging.String("path", dir), logging.Error(err))
		}
	}
	return nil
}
