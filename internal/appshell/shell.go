// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs a tool with a context cancelled on SIGINT/SIGTERM and exits
// with the code it returns.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, run))
}

// Run is Main without the os.Exit; no arguments means "-h".
func Run(parent context.Context, argv []string, stdout, stderr io.Writer, run func(context.Context, []string, io.Writer, io.Writer) int) int {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
