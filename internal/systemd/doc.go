// Package systemd wraps the systemctl invocations the setup tool performs:
// reloading unit definitions, enabling and starting the power-scheduler
// timer, and querying unit state for status reporting.
//
// The Manager interface is the seam between provisioning logic and the host
// service manager; production code uses the exec-backed Systemctl while tests
// substitute a recording fake.
package systemd
