package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"roomctl/internal/logging"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("artifact installed", logging.String("name", "power_scheduler.py"))

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level in output: %q", line)
	}
	if !strings.Contains(line, "artifact installed") {
		t.Fatalf("missing message in output: %q", line)
	}
	if !strings.Contains(line, "name=power_scheduler.py") {
		t.Fatalf("missing attribute in output: %q", line)
	}
}

func TestNewConsoleQuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Warn("warm start failed", logging.String("detail", "exit status 1"))

	if !strings.Contains(buf.String(), `detail="exit status 1"`) {
		t.Fatalf("expected quoted value: %q", buf.String())
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Debug("daemon reload", logging.Bool("ok", true))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "daemon reload" {
		t.Fatalf("unexpected msg field: %v", payload["msg"])
	}
	if payload["level"] != "debug" {
		t.Fatalf("unexpected level field: %v", payload["level"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("should be suppressed")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	// Must not panic and must report disabled at every level.
	logger.Info("ignored")
	logger.Error("ignored")
}
