package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/viant/comptime/ast"
	"github.com/viant/comptime/inspector/typescript"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the declaration tree of a TypeScript file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			file, err := typescript.NewInspector(nil).InspectFile(cmd.Context(), location)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), ast.Dump(file))
			return err
		},
	}
}
