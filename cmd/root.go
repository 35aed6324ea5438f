package cmd

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/board"
	"github.com/thenoetrevino/tablero/internal/cli/column"
	"github.com/thenoetrevino/tablero/internal/cli/invoke"
	"github.com/thenoetrevino/tablero/internal/cli/task"
)

// Version is set at build time with -ldflags "-X github.com/thenoetrevino/tablero/cmd.Version=..."
var Version = "dev"

// root owns the CLI instance created for one invocation
type root struct {
	opts     cli.GlobalOptions
	instance *cli.CLI
}

// NewRootCmd builds the tablero command tree. The returned close function
// releases the snapshot store opened for the invocation, if any.
func NewRootCmd() (*cobra.Command, func() error) {
	r := &root{}

	cmd := &cobra.Command{
		Use:   "tablero",
		Short: "Tablero - a Kanban board you drive from the terminal",
		Long: `Tablero keeps one Kanban board of columns and tasks, saved after every change.

Every command supports --json for scripts and agents and --quiet for
capturing IDs in shell variables.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}

	cli.AddGlobalFlags(cmd, &r.opts)

	cmd.AddCommand(board.BoardCmd())
	cmd.AddCommand(column.ColumnCmd())
	cmd.AddCommand(task.TaskCmd())
	cmd.AddCommand(invoke.InvokeCmd())
	cmd.AddCommand(versionCmd())

	return cmd, r.close
}

// setup creates the CLI for commands that touch the board
func (r *root) setup(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return nil
	}
	if _, err := cli.GetCLIFromContext(cmd.Context()); err == nil {
		return nil
	}

	instance, err := cli.NewCLI(cmd.Context(), r.opts)
	if err != nil {
		return cli.FormatterFor(cmd).Fail(err)
	}
	r.instance = instance

	cmd.SetContext(cli.WithCLI(cmd.Context(), instance))
	return nil
}

func (r *root) close() error {
	if r.instance == nil {
		return nil
	}
	err := r.instance.Close()
	r.instance = nil
	return err
}

// Execute runs the command tree with args, writing to stdout and stderr
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd, closeFn := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, closeFn())
}
