// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature shared by every kmotif entry point.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs fn under a context cancelled by SIGINT/SIGTERM and exits with its
// code. With no arguments the help screen is shown.
func Main(fn RunFunc) {
	os.Exit(run(fn, os.Args[1:], os.Stdout, os.Stderr))
}

func run(fn RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := fn(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
