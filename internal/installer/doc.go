// Package installer provisions and removes the roomctl power scheduler:
// the job script, its systemd service and timer units, and the schedule
// placeholder. All mutating operations require root and serialize through a
// file lock.
package installer
