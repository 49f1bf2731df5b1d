package schedule

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSchedule(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "power_schedule.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAbsentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "power_schedule.yaml")
	_, err := Load(path)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestLoadEmptyPlaceholder(t *testing.T) {
	path := writeSchedule(t, "")
	_, err := Load(path)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured for empty file, got %v", err)
	}

	path = writeSchedule(t, "   \n\n")
	if _, err := Load(path); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured for whitespace file, got %v", err)
	}
}

func TestLoadParsesDocument(t *testing.T) {
	path := writeSchedule(t, `
on_time: "07:30"
off_time: "19:00"
days: [mon, tue, wed, thu, fri]
enabled: true
`)

	sched, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if sched.OnTime != "07:30" || sched.OffTime != "19:00" {
		t.Fatalf("unexpected times: %q / %q", sched.OnTime, sched.OffTime)
	}
	if len(sched.Days) != 5 || sched.Days[0] != "mon" {
		t.Fatalf("unexpected days: %v", sched.Days)
	}
	if !sched.Enabled {
		t.Fatal("expected enabled schedule")
	}
	if err := sched.Validate(); err != nil {
		t.Fatalf("valid schedule rejected: %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeSchedule(t, "on_time: [unclosed\n")
	_, err := Load(path)
	if err == nil || errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if !strings.Contains(err.Error(), "parse schedule") {
		t.Fatalf("unexpected error wrapping: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		sched   Schedule
		wantErr string
	}{
		{
			name:  "valid",
			sched: Schedule{OnTime: "07:30", OffTime: "19:00", Days: []string{"mon", "fri"}},
		},
		{
			name:  "absent times fall back to job defaults",
			sched: Schedule{Days: []string{"mon"}, Enabled: true},
		},
		{
			name:  "only off_time set",
			sched: Schedule{OffTime: "22:00"},
		},
		{
			name:    "missing colon",
			sched:   Schedule{OnTime: "0730", OffTime: "19:00"},
			wantErr: "on_time",
		},
		{
			name:    "hour out of range",
			sched:   Schedule{OnTime: "24:00", OffTime: "19:00"},
			wantErr: "on_time",
		},
		{
			name:    "minute out of range",
			sched:   Schedule{OnTime: "07:30", OffTime: "19:75"},
			wantErr: "off_time",
		},
		{
			name:    "unknown day",
			sched:   Schedule{OnTime: "07:30", OffTime: "19:00", Days: []string{"monday"}},
			wantErr: "unknown day",
		},
		{
			name:    "duplicate day",
			sched:   Schedule{OnTime: "07:30", OffTime: "19:00", Days: []string{"mon", "mon"}},
			wantErr: "duplicate day",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sched.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	sched := Schedule{OnTime: "07:30", OffTime: "19:00", Days: []string{"mon", "tue"}, Enabled: true}
	summary := sched.Summary()
	for _, fragment := range []string{"enabled", "07:30", "19:00", "mon,tue"} {
		if !strings.Contains(summary, fragment) {
			t.Fatalf("summary %q missing %q", summary, fragment)
		}
	}

	empty := Schedule{OnTime: "07:30", OffTime: "19:00"}
	if !strings.Contains(empty.Summary(), "(no days)") {
		t.Fatalf("summary %q should flag missing days", empty.Summary())
	}
}

func TestSummaryMarksDefaultedTimes(t *testing.T) {
	sched := Schedule{Days: []string{"mon"}, Enabled: true}
	summary := sched.Summary()
	for _, fragment := range []string{DefaultOnTime + " (default)", DefaultOffTime + " (default)"} {
		if !strings.Contains(summary, fragment) {
			t.Fatalf("summary %q missing %q", summary, fragment)
		}
	}
}
