// Package schedule reads the operator-owned power_schedule.yaml for status
// and readiness reporting.
//
// The setup tool only ever reads this file. It is created empty at install
// time and written by the roomctl operator UI afterwards; computing the next
// power event from it is the deployed job script's business.
package schedule

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotConfigured reports that no schedule has been written yet, either
// because the file is absent or still the empty placeholder from install.
var ErrNotConfigured = errors.New("power schedule not configured")

// Schedule mirrors the YAML document written by the operator UI.
type Schedule struct {
	OnTime  string   `yaml:"on_time"`
	OffTime string   `yaml:"off_time"`
	Days    []string `yaml:"days"`
	Enabled bool     `yaml:"enabled"`
}

var validDays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// Times the job script substitutes when the operator leaves them unset.
const (
	DefaultOnTime  = "07:30"
	DefaultOffTime = "19:00"
)

// Load parses the schedule file at path. Absent or empty files return
// ErrNotConfigured; malformed YAML returns a parse error.
func Load(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrNotConfigured
	}

	var sched Schedule
	if err := yaml.Unmarshal(data, &sched); err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}
	return &sched, nil
}

// Validate checks the schedule for values the job script would reject:
// malformed hh:mm times, unknown day names, duplicate days. Absent times are
// fine; the job script falls back to DefaultOnTime/DefaultOffTime.
func (s *Schedule) Validate() error {
	if strings.TrimSpace(s.OnTime) != "" {
		if err := validateTime("on_time", s.OnTime); err != nil {
			return err
		}
	}
	if strings.TrimSpace(s.OffTime) != "" {
		if err := validateTime("off_time", s.OffTime); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(s.Days))
	for _, day := range s.Days {
		normalized := strings.ToLower(strings.TrimSpace(day))
		if !isValidDay(normalized) {
			return fmt.Errorf("days: unknown day %q (expected one of %s)", day, strings.Join(validDays, ", "))
		}
		if _, dup := seen[normalized]; dup {
			return fmt.Errorf("days: duplicate day %q", normalized)
		}
		seen[normalized] = struct{}{}
	}
	return nil
}

// Summary renders a one-line human-readable description for status output.
func (s *Schedule) Summary() string {
	state := "disabled"
	if s.Enabled {
		state = "enabled"
	}
	days := strings.Join(s.Days, ",")
	if days == "" {
		days = "(no days)"
	}
	return fmt.Sprintf("%s, on %s off %s, days %s",
		state, effectiveTime(s.OnTime, DefaultOnTime), effectiveTime(s.OffTime, DefaultOffTime), days)
}

func effectiveTime(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback + " (default)"
	}
	return value
}

func validateTime(field, value string) error {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("%s: expected hh:mm, got %q", field, value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("%s: hour out of range in %q", field, value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("%s: minute out of range in %q", field, value)
	}
	return nil
}

func isValidDay(day string) bool {
	for _, valid := range validDays {
		if day == valid {
			return true
		}
	}
	return false
}
