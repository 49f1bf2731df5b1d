// Package preflight provides readiness checks for the filesystem paths and
// external binaries roomctl-setup depends on.
//
// These checks run in two contexts:
//   - The "doctor" command calls RunAll and CheckSystemDeps to tell an
//     operator whether an install would succeed before touching the host.
//   - The "status" command uses individual checks (CheckScheduleFile) to
//     display the state of an existing installation.
package preflight
