package main

import (
	"github.com/spf13/cobra"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Invoke the installed scheduler job once and report its outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := ctx.newInstaller()
			if err != nil {
				return err
			}
			// Unlike the install-time warm start, a direct run surfaces the
			// job's real exit status.
			return inst.RunJob(cmd.Context())
		},
	}
}
