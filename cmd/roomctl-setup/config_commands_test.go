package main

import (
	"path/filepath"
	"strings"
	"testing"

	"roomctl/internal/config"
)

func TestConfigInitWritesLoadableSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "roomctl-setup.toml")

	output, err := runCommand(t, newConfigInitCommand(), "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, output)
	}
	if !strings.Contains(output, target) {
		t.Errorf("output should name the written file:\n%s", output)
	}

	if _, _, exists, err := config.Load(target); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	} else if !exists {
		t.Fatal("sample config should exist after init")
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "roomctl-setup.toml")

	if _, err := runCommand(t, newConfigInitCommand(), "--path", target); err != nil {
		t.Fatalf("first init: %v", err)
	}
	if _, err := runCommand(t, newConfigInitCommand(), "--path", target); err == nil {
		t.Fatal("second init without --overwrite should fail")
	}
	if _, err := runCommand(t, newConfigInitCommand(), "--path", target, "--overwrite"); err != nil {
		t.Fatalf("init with --overwrite: %v", err)
	}
}

func TestConfigValidateThroughRootCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	output, err := runCommand(t, newRootCommand(), "--config", env.configPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v\n%s", err, output)
	}
	if !strings.Contains(output, env.configPath) {
		t.Errorf("output should show the resolved config path:\n%s", output)
	}
	if !strings.Contains(output, "Configuration valid") {
		t.Errorf("output should confirm validity:\n%s", output)
	}
	if !strings.Contains(output, env.prefixDir) {
		t.Errorf("output should echo the configured prefix:\n%s", output)
	}
}

func TestConfigValidateRejectsBadConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	badPath := filepath.Join(filepath.Dir(env.configPath), "bad.toml")
	writeFile(t, badPath, "[logging]\nlevel = \"loud\"\n")

	if _, err := runCommand(t, newRootCommand(), "--config", badPath, "config", "validate"); err == nil {
		t.Fatal("validate should reject an invalid logging level")
	}
}
