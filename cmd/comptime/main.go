// comptime applies compile-time decorators to a TypeScript project.
//
// Usage:
//
//	comptime transform [dir] [--out-dir=dist] [--emit=ts|js] [--traversal=postorder|preorder]
//	comptime watch [dir] [--metrics-addr=:9464]
//	comptime dump <file>
//	comptime version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
