// Package config loads, normalizes, and validates roomctl-setup configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file. The tool is fully functional
// without any configuration: the defaults describe the fixed roomctl layout
// (/opt/roomctl, /etc/systemd/system) that the installer provisions.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths and clear validation errors.
package config
