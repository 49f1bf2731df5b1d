package main

import (
	"os"
	"strings"
	"testing"

	"roomctl/internal/assets"
	"roomctl/internal/systemd"
)

func TestStatusCommandRendersSections(t *testing.T) {
	env := setupCLITestEnv(t)
	env.manager.enabled = systemd.StateEnabled
	env.manager.active = map[string]systemd.State{
		assets.TimerUnit:   systemd.StateActive,
		assets.ServiceUnit: systemd.StateInactive,
	}

	output, err := runCommand(t, newStatusCommand(env.ctx))
	if err != nil {
		t.Fatalf("status: %v\n%s", err, output)
	}

	for _, want := range []string{
		"== Timer ==",
		"enabled",
		"active",
		"== Artifacts ==",
		assets.ScriptName,
		assets.TimerUnit,
		"== Schedule ==",
		"not configured yet",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("status output missing %q:\n%s", want, output)
		}
	}
}

func TestStatusCommandReportsConfiguredSchedule(t *testing.T) {
	env := setupCLITestEnv(t)
	cfg := env.ctx.configValue()
	if err := os.MkdirAll(cfg.ConfigDir(), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	schedule := "on_time: \"07:30\"\noff_time: \"22:00\"\ndays: [mon, tue]\nenabled: true\n"
	if err := os.WriteFile(cfg.SchedulePath(), []byte(schedule), 0o644); err != nil {
		t.Fatalf("write schedule: %v", err)
	}

	output, err := runCommand(t, newStatusCommand(env.ctx))
	if err != nil {
		t.Fatalf("status: %v\n%s", err, output)
	}
	if !strings.Contains(output, "07:30") {
		t.Errorf("status output should summarize the schedule:\n%s", output)
	}
}

func TestStatusCommandFlagsMissingUnit(t *testing.T) {
	env := setupCLITestEnv(t)
	env.manager.enabled = systemd.StateNotFound

	output, err := runCommand(t, newStatusCommand(env.ctx))
	if err != nil {
		t.Fatalf("status: %v\n%s", err, output)
	}
	if !strings.Contains(output, "not-found") {
		t.Errorf("status output should report the missing unit:\n%s", output)
	}
}
