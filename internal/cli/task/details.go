package task

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
)

// DetailsCmd returns the task details subcommand
func DetailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details",
		Short: "Update a task's content, description, due date or labels",
		Long: `Update any subset of a task's fields. Flags that are not given are left unchanged.

Labels replace the whole list: pass --label once per label, or --clear-labels
to remove them all.

Examples:
  # Set a description from a file
  tablero task details --id=<task-id> --description=- < notes.md

  # Set due date and labels
  tablero task details --id=<task-id> --due=2026-11-30 --label=bug --label=p1

  # Remove every label
  tablero task details --id=<task-id> --clear-labels
`,
		RunE: runDetails,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("content", "", "New content")
	cmd.Flags().String("description", "", "New description, markdown (use - for stdin)")
	cmd.Flags().String("due", "", "New due date (free-form, e.g. 2026-11-30)")
	cmd.Flags().StringArray("label", nil, "Label (repeatable; replaces all labels)")
	cmd.Flags().Bool("clear-labels", false, "Remove all labels")
	cmd.MarkFlagsMutuallyExclusive("label", "clear-labels")

	return cmd
}

func runDetails(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	req := boardservice.UpdateTaskDetailsRequest{}
	req.TaskID, _ = cmd.Flags().GetString("id")

	if cmd.Flags().Changed("content") {
		content, _ := cmd.Flags().GetString("content")
		req.Content = &content
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		description, err = cli.ReadValue(cmd, description)
		if err != nil {
			return formatter.Fail(err)
		}
		req.Description = &description
	}
	if cmd.Flags().Changed("due") {
		due, _ := cmd.Flags().GetString("due")
		req.DueDate = &due
	}
	if cmd.Flags().Changed("label") {
		req.Labels, _ = cmd.Flags().GetStringArray("label")
	}
	if clear, _ := cmd.Flags().GetBool("clear-labels"); clear {
		req.Labels = []string{}
	}

	board, err := cliInstance.App.BoardService.UpdateTaskDetails(cmd.Context(), req)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		_, err := fmt.Fprintln(formatter.Out, req.TaskID)
		return err
	}

	return formatter.Success(board, func(w io.Writer) error {
		task, column, _ := cli.FindTask(board, req.TaskID)
		_, err := fmt.Fprintf(w, "%s\n%s\n",
			styles.Success("Task %s updated", req.TaskID),
			styles.RenderTaskDetail(task, column.Title))
		return err
	})
}
