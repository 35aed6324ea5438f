package task

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to the bottom of a column",
		Long: `Add a new task to the bottom of a column.

Examples:
  # Simple task (human-readable output)
  tablero task add --column=todo --content="Fix login bug"

  # JSON output for agents (prints the whole board)
  tablero task add --column=todo --content="Fix login bug" --json

  # Quiet mode for bash capture
  TASK_ID=$(tablero task add --column=todo --content="Fix login bug" --quiet)

  # Content from stdin
  echo "Write changelog" | tablero task add --column=todo --content=-
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("column", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("content", "", "Task content (required, use - for stdin)")
	if err := cmd.MarkFlagRequired("content"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	columnID, _ := cmd.Flags().GetString("column")
	content, _ := cmd.Flags().GetString("content")

	content, err = cli.ReadValue(cmd, content)
	if err != nil {
		return formatter.Fail(err)
	}

	board, err := cliInstance.App.BoardService.AddTask(cmd.Context(), columnID, content)
	if err != nil {
		return formatter.Fail(err)
	}

	created, _ := cli.LastTask(board, columnID)
	if formatter.Quiet {
		_, err := fmt.Fprintln(formatter.Out, created.ID)
		return err
	}

	return formatter.Success(board, func(w io.Writer) error {
		column, _ := cli.FindColumn(board, columnID)
		_, err := fmt.Fprintf(w, "%s\n  ID: %s\n  Column: %s (position %d)\n",
			styles.Success("Task '%s' created successfully", created.Content),
			created.ID,
			column.Title,
			len(column.Tasks)-1)
		return err
	})
}
