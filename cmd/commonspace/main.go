// Package main is the entry point for the commonspace CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/commonspace/commonspace/internal/app"
	"github.com/commonspace/commonspace/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the root command and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cwd, err := os.Getwd()
	if err != nil {
		cli.PrintError(stderr, fmt.Errorf("failed to get current directory: %w", err))
		return 1
	}

	rootCmd := cli.NewRootCommand(app.New(cwd), version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cli.PrintError(stderr, err)
		return cli.ExitCode(err)
	}
	return 0
}
