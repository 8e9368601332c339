package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "comptime",
		Short: "Compile-time decorators for TypeScript",
		Long: "comptime rewrites TypeScript classes, methods and properties annotated with decorators\n" +
			"implemented in Starlark scripts, before the sources are emitted.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	root.Version = version
	root.AddCommand(newTransformCmd(), newWatchCmd(), newDumpCmd(), newVersionCmd())
	return root
}
