package task

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long: `Delete a task from whichever column holds it.

Deleting a task that does not exist is not an error.

Examples:
  tablero task delete --id=<task-id>
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
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

	taskID, _ := cmd.Flags().GetString("id")

	before := cliInstance.App.BoardService.GetBoard(cmd.Context())
	existing, column, existed := cli.FindTask(before, taskID)

	board := cliInstance.App.BoardService.DeleteTask(cmd.Context(), taskID)

	if formatter.Quiet {
		return nil
	}

	return formatter.Success(board, func(w io.Writer) error {
		if !existed {
			_, err := fmt.Fprintf(w, "Task %s not found, nothing deleted\n", taskID)
			return err
		}
		_, err := fmt.Fprintln(w, styles.Success("Task '%s' deleted from %s", existing.Content, column.Title))
		return err
	})
}
