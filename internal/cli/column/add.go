package column

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a column to the end of the board",
		Long: `Add a new, empty column to the right-hand end of the board.

Examples:
  # Human-readable output
  tablero column add --title="Review"

  # JSON output for agents (prints the whole board)
  tablero column add --title="Review" --json

  # Quiet mode for bash capture
  COLUMN_ID=$(tablero column add --title="Review" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Column title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")

	board := cliInstance.App.BoardService.AddColumn(cmd.Context(), title)
	created := board.Columns[len(board.Columns)-1]

	if formatter.Quiet {
		_, err := fmt.Fprintln(formatter.Out, created.ID)
		return err
	}

	return formatter.Success(board, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s\n  ID: %s\n",
			styles.Success("Column '%s' created successfully", created.Title),
			created.ID)
		return err
	})
}
