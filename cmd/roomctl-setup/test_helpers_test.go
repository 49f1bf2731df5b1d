package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"roomctl/internal/installer"
	"roomctl/internal/systemd"
)

type fakeManager struct {
	calls    []string
	enabled  systemd.State
	active   map[string]systemd.State
	failWith error
}

func (m *fakeManager) record(call string) error {
	m.calls = append(m.calls, call)
	return m.failWith
}

func (m *fakeManager) DaemonReload(ctx context.Context) error {
	return m.record("daemon-reload")
}

func (m *fakeManager) EnableNow(ctx context.Context, unit string) error {
	return m.record("enable --now " + unit)
}

func (m *fakeManager) Disable(ctx context.Context, unit string) error {
	return m.record("disable " + unit)
}

func (m *fakeManager) Stop(ctx context.Context, unit string) error {
	return m.record("stop " + unit)
}

func (m *fakeManager) IsEnabled(ctx context.Context, unit string) (systemd.State, error) {
	if m.enabled == "" {
		return systemd.StateDisabled, nil
	}
	return m.enabled, nil
}

func (m *fakeManager) IsActive(ctx context.Context, unit string) (systemd.State, error) {
	if state, ok := m.active[unit]; ok {
		return state, nil
	}
	return systemd.StateInactive, nil
}

type cliTestEnv struct {
	ctx        *commandContext
	manager    *fakeManager
	configPath string
	prefixDir  string
	unitDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	prefixDir := filepath.Join(base, "opt", "roomctl")
	unitDir := filepath.Join(base, "units")
	if err := os.MkdirAll(unitDir, 0o755); err != nil {
		t.Fatalf("create unit dir: %v", err)
	}

	configPath := filepath.Join(base, "roomctl-setup.toml")
	content := fmt.Sprintf(`[paths]
prefix_dir = %q
unit_dir = %q
lock_file = %q

[install]
warm_start = false
`, prefixDir, unitDir, filepath.Join(base, "setup.lock"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	manager := &fakeManager{}
	configFlag := configPath
	ctx := newCommandContext(&configFlag)
	ctx.newManager = func() (systemd.Manager, error) { return manager, nil }
	ctx.installerOptions = []installer.Option{
		installer.WithEuid(func() int { return 0 }),
	}

	return &cliTestEnv{
		ctx:        ctx,
		manager:    manager,
		configPath: configPath,
		prefixDir:  prefixDir,
		unitDir:    unitDir,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}
