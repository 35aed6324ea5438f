package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/tablero/cmd"
	"github.com/thenoetrevino/tablero/internal/cli"
)

func main() {
	// Cancel in-flight commands on Ctrl-C; snapshot writes still complete
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()

	var exitErr *cli.ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		// Not yet reported: flag parsing and unknown subcommands
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCodeOf(err))
}
