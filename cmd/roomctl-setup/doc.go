// Package main hosts the roomctl-setup CLI entrypoint and command graph.
//
// The Cobra-based command tree provisions the power scheduler onto a host:
// install and uninstall drive the systemd units and artifacts, status and
// doctor report on the result, run invokes the job script directly, and
// config scaffolds and validates the tool's own configuration. Configuration
// resolution and systemctl access are centralized here so subcommands stay
// declarative while the actual work lives in the internal packages.
package main
