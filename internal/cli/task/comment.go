package task

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// CommentCmd returns the task comment subcommand
func CommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Add a comment to a task",
		Long: `Append a comment to a task. Comments cannot be edited or removed.

Examples:
  tablero task comment --id=<task-id> --message="Need to follow up with team"

  # Quiet mode for bash capture
  COMMENT_ID=$(tablero task comment --id=<task-id> --message="Fixed" --quiet)
`,
		RunE: runComment,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("message", "", "Comment message (required, use - for stdin)")
	if err := cmd.MarkFlagRequired("message"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	return cmd
}

func runComment(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	taskID, _ := cmd.Flags().GetString("id")
	message, _ := cmd.Flags().GetString("message")

	message, err = cli.ReadValue(cmd, message)
	if err != nil {
		return formatter.Fail(err)
	}

	board, err := cliInstance.App.BoardService.AddComment(cmd.Context(), taskID, message)
	if err != nil {
		return formatter.Fail(err)
	}

	task, _, _ := cli.FindTask(board, taskID)
	comment := task.Comments[len(task.Comments)-1]

	if formatter.Quiet {
		_, err := fmt.Fprintln(formatter.Out, comment.ID)
		return err
	}

	return formatter.Success(board, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s\n  Message: %s\n  Comment ID: %s\n",
			styles.Success("Comment added to task '%s'", task.Content),
			comment.Content,
			comment.ID)
		return err
	})
}
