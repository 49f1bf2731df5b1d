package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUninstallCommand(ctx *commandContext) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Stop the timer and remove the installed artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := ctx.newInstaller()
			if err != nil {
				return err
			}
			result, err := inst.Uninstall(cmd.Context(), purge)
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintln(stdout, renderStepTable(result.Steps))
			if !purge {
				fmt.Fprintf(stdout, "Schedule file left in place: %s (use --purge to remove it)\n", ctx.configValue().SchedulePath())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "Also remove the schedule file and empty install directories")
	return cmd
}
