package board

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show every column and its tasks",
		Long: `Render the board with one box per column, tasks listed top to bottom.

Examples:
  tablero board show
  tablero board show --json | jq '.data.columns[].title'
`,
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	board := cliInstance.App.BoardService.GetBoard(cmd.Context())

	return formatter.Success(board, func(w io.Writer) error {
		return cli.PrintBoard(w, board)
	})
}
