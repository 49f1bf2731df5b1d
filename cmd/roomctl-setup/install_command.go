package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"roomctl/internal/installer"
)

func newInstallCommand(ctx *commandContext) *cobra.Command {
	var fromDir string
	var noWarmStart bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the power scheduler job, units, and schedule placeholder",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if dir := strings.TrimSpace(fromDir); dir != "" {
				cfg.Paths.ArtifactsDir = dir
			}
			if noWarmStart {
				cfg.Install.WarmStart = false
			}

			inst, err := ctx.newInstaller()
			if err != nil {
				return err
			}
			result, err := inst.Install(cmd.Context())
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintln(stdout, renderStepTable(result.Steps))
			if result.WarmStartRan {
				if result.WarmStartErr != nil {
					fmt.Fprintf(stdout, "Warm start failed (scheduler will recompute on the next timer run): %v\n", result.WarmStartErr)
				} else {
					fmt.Fprintln(stdout, "Warm start completed")
				}
			}
			fmt.Fprintf(stdout, "Check: %s\n", result.Hint())
			return nil
		},
	}

	cmd.Flags().StringVar(&fromDir, "from", "", "Install artifacts from a directory instead of the embedded copies")
	cmd.Flags().BoolVar(&noWarmStart, "no-warm-start", false, "Skip the initial scheduler invocation")
	return cmd
}

func renderStepTable(steps []installer.Step) string {
	rows := make([][]string, 0, len(steps))
	for _, step := range steps {
		rows = append(rows, []string{step.Name, string(step.Action), step.Path})
	}
	return renderTable([]string{"Target", "Action", "Path"}, rows)
}
