package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/comptime/config"
)

func newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [dir]",
		Short: "Apply decorators and write the rewritten project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(cmd, dirArg(args), nil)
			if err != nil {
				return err
			}
			report, err := r.run(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d rewritten, %d written to %s\n",
				len(report.Files), report.Rewritten(), report.Written(), r.outDir())
			return err
		},
	}
	config.BindFlags(cmd.Flags())
	return cmd
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
