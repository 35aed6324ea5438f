package column

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a column and every task in it",
		Long: `Delete a column together with all of its tasks.

Deleting a column that does not exist is not an error.

Examples:
  tablero column delete --id=doing
  tablero column delete --id=doing --json
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	columnID, _ := cmd.Flags().GetString("id")

	before := cliInstance.App.BoardService.GetBoard(cmd.Context())
	existing, existed := cli.FindColumn(before, columnID)

	board := cliInstance.App.BoardService.DeleteColumn(cmd.Context(), columnID)

	return formatter.Success(board, func(w io.Writer) error {
		if !existed {
			_, err := fmt.Fprintf(w, "Column %s not found, nothing deleted\n", columnID)
			return err
		}
		_, err := fmt.Fprintf(w, "%s (%d tasks removed)\n",
			styles.Success("Column '%s' deleted", existing.Title),
			len(existing.Tasks))
		return err
	})
}
