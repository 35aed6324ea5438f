package task

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace a task's content",
		Long: `Replace the content of a task.

Updating a task that does not exist is not an error; the board is left as is.
Use "task details" to change the description, due date or labels.

Examples:
  tablero task update --id=<task-id> --content="Fix login bug on Safari"
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("content", "", "New content (required, use - for stdin)")
	if err := cmd.MarkFlagRequired("content"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	taskID, _ := cmd.Flags().GetString("id")
	content, _ := cmd.Flags().GetString("content")

	content, err = cli.ReadValue(cmd, content)
	if err != nil {
		return formatter.Fail(err)
	}

	board := cliInstance.App.BoardService.UpdateTask(cmd.Context(), taskID, content)

	if formatter.Quiet {
		_, err := fmt.Fprintln(formatter.Out, taskID)
		return err
	}

	return formatter.Success(board, func(w io.Writer) error {
		if _, _, ok := cli.FindTask(board, taskID); !ok {
			_, err := fmt.Fprintf(w, "Task %s not found, nothing updated\n", taskID)
			return err
		}
		_, err := fmt.Fprintln(w, styles.Success("Task %s updated", taskID))
		return err
	})
}
