package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"roomctl/internal/deps"
	"roomctl/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check host readiness for installing the power scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			results := preflight.RunAll(cfg)
			statuses := preflight.CheckSystemDeps()

			fmt.Fprintln(stdout, sectionHeader("Host Checks", colorize))
			for _, result := range results {
				kind := statusOK
				if !result.Passed {
					kind = statusFail
					if result.Informational {
						kind = statusWarn
					}
				}
				fmt.Fprintln(stdout, statusLine(result.Name, kind, result.Detail, colorize))
			}
			fmt.Fprintln(stdout)

			fmt.Fprintln(stdout, sectionHeader("Dependencies", colorize))
			for _, status := range statuses {
				fmt.Fprintln(stdout, statusLine(status.Name, dependencyKind(status), status.Detail, colorize))
			}
			fmt.Fprintln(stdout)

			if !preflight.Passed(results, statuses) {
				return errors.New("host is not ready; fix the failed checks above")
			}
			fmt.Fprintln(stdout, "Host is ready for install")
			return nil
		},
	}
}

func dependencyKind(status deps.Status) statusKind {
	switch {
	case status.Available:
		return statusOK
	case status.Optional:
		return statusWarn
	default:
		return statusFail
	}
}
