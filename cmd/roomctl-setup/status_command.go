package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roomctl/internal/assets"
	"roomctl/internal/config"
	"roomctl/internal/schedule"
	"roomctl/internal/systemd"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show scheduler units, artifacts, and schedule state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			manager, err := ctx.newManager()
			if err != nil {
				return err
			}

			fmt.Fprintln(stdout, sectionHeader("Timer", colorize))
			enabled, err := manager.IsEnabled(cmd.Context(), assets.TimerUnit)
			if err != nil {
				return fmt.Errorf("query timer enablement: %w", err)
			}
			fmt.Fprintln(stdout, statusLine("Enabled", enablementKind(enabled), string(enabled), colorize))
			active, err := manager.IsActive(cmd.Context(), assets.TimerUnit)
			if err != nil {
				return fmt.Errorf("query timer activation: %w", err)
			}
			fmt.Fprintln(stdout, statusLine("Active", activationKind(active), string(active), colorize))

			lastRun, err := manager.IsActive(cmd.Context(), assets.ServiceUnit)
			if err != nil {
				return fmt.Errorf("query service state: %w", err)
			}
			kind := statusNote
			if lastRun == systemd.StateFailed {
				kind = statusFail
			}
			fmt.Fprintln(stdout, statusLine("Last job run", kind, string(lastRun), colorize))
			fmt.Fprintln(stdout)

			fmt.Fprintln(stdout, sectionHeader("Artifacts", colorize))
			fmt.Fprintln(stdout, renderArtifactTable(cfg))
			fmt.Fprintln(stdout)

			fmt.Fprintln(stdout, sectionHeader("Schedule", colorize))
			fmt.Fprintln(stdout, scheduleLine(cfg.SchedulePath(), colorize))
			return nil
		},
	}
}

func enablementKind(state systemd.State) statusKind {
	switch state {
	case systemd.StateEnabled, systemd.StateStatic:
		return statusOK
	case systemd.StateNotFound:
		return statusFail
	default:
		return statusWarn
	}
}

func activationKind(state systemd.State) statusKind {
	switch state {
	case systemd.StateActive:
		return statusOK
	case systemd.StateFailed, systemd.StateNotFound:
		return statusFail
	default:
		return statusWarn
	}
}

func renderArtifactTable(cfg *config.Config) string {
	targets := []struct {
		name string
		path string
	}{
		{assets.ScriptName, cfg.ScriptPath()},
		{assets.ServiceUnit, cfg.ServiceUnitPath()},
		{assets.TimerUnit, cfg.TimerUnitPath()},
		{assets.ScheduleName, cfg.SchedulePath()},
	}

	rows := make([][]string, 0, len(targets))
	for _, target := range targets {
		mode := "-"
		present := false
		if info, err := os.Stat(target.path); err == nil {
			present = true
			mode = fmt.Sprintf("%04o", info.Mode().Perm())
		}
		rows = append(rows, []string{target.name, target.path, yesNo(present), mode})
	}
	return renderTable([]string{"Artifact", "Path", "Present", "Mode"}, rows)
}

func scheduleLine(path string, colorize bool) string {
	sched, err := schedule.Load(path)
	switch {
	case errors.Is(err, schedule.ErrNotConfigured):
		return statusLine("Schedule", statusNote, "not configured yet", colorize)
	case err != nil:
		return statusLine("Schedule", statusFail, err.Error(), colorize)
	}
	if err := sched.Validate(); err != nil {
		return statusLine("Schedule", statusFail, err.Error(), colorize)
	}
	return statusLine("Schedule", statusOK, sched.Summary(), colorize)
}
