package invoke

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// InvokeCmd returns the invoke command
func InvokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke <command> [json-args]",
		Short: "Run a board command by name with JSON arguments",
		Long: `Run one of the named board commands the way a UI would, passing its
arguments as a JSON object. On success the whole board is printed; on
failure the command's error message is reported.

Argument names are camelCase. Pass - to read the arguments from stdin.

Examples:
  tablero invoke get_board
  tablero invoke add_task '{"columnId":"todo","content":"Fix login bug"}'
  tablero invoke move_task '{"sourceColId":"todo","destColId":"done","sourceIndex":0,"destIndex":0}' --json
  echo '{"title":"Review"}' | tablero invoke add_column -
  tablero invoke --list
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list, _ := cmd.Flags().GetBool("list"); list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		RunE: runInvoke,
	}

	cmd.Flags().Bool("list", false, "List the available command names")

	return cmd
}

func runInvoke(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	registry := cliInstance.App.Commands

	if list, _ := cmd.Flags().GetBool("list"); list {
		names := registry.Names()
		return formatter.Success(names, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, strings.Join(names, "\n"))
			return err
		})
	}

	var raw json.RawMessage
	if len(args) == 2 {
		value, err := cli.ReadValue(cmd, args[1])
		if err != nil {
			return formatter.Fail(err)
		}
		raw = json.RawMessage(value)
	}

	board, err := registry.Dispatch(cmd.Context(), args[0], raw)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(board, func(w io.Writer) error {
		return cli.PrintBoard(w, board)
	})
}
