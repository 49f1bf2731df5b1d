package preflight

import (
	"os"

	"roomctl/internal/config"
	"roomctl/internal/deps"
)

// Result reports the outcome of a single preflight check. Informational
// results describe host state worth surfacing without gating the overall
// verdict.
type Result struct {
	Name          string
	Passed        bool
	Informational bool
	Detail        string
}

// RunAll executes every applicable readiness check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckPrivilege(os.Geteuid()),
		CheckArtifactSource(cfg),
		CheckDirectoryWritable("Unit directory", cfg.Paths.UnitDir),
		CheckDirectoryWritable("Install prefix", cfg.Paths.PrefixDir),
		CheckScheduleFile(cfg.SchedulePath()),
	}
	return results
}

// CheckSystemDeps evaluates the binaries install and the provisioned job
// depend on. Both the doctor and status commands use this so the
// requirements list lives in one place.
func CheckSystemDeps() []deps.Status {
	requirements := []deps.Requirement{
		{
			Name:        "systemctl",
			Command:     "systemctl",
			Description: "Registers and drives the power-scheduler timer",
		},
		{
			Name:        "python3",
			Command:     "python3",
			Description: "Interpreter for the power-scheduler job script",
		},
		{
			Name:        "rtcwake",
			Command:     "rtcwake",
			Description: "Arms the RTC alarm for scheduled power-on",
			Optional:    true,
		},
		{
			Name:        "systemd-run",
			Command:     "systemd-run",
			Description: "Schedules transient power-off timers",
			Optional:    true,
		},
	}
	return deps.CheckBinaries(requirements)
}

// Passed reports whether every required check in results succeeded.
// Informational results never fail the verdict.
func Passed(results []Result, statuses []deps.Status) bool {
	for _, result := range results {
		if !result.Passed && !result.Informational {
			return false
		}
	}
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			return false
		}
	}
	return true
}
