package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// taskDetail is the JSON shape of task show
type taskDetail struct {
	models.Task
	ColumnID    string `json:"column_id"`
	ColumnTitle string `json:"column_title"`
	Position    int    `json:"position"`
}

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task including its markdown description, comments and attachments.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	// Parse task ID from positional arg or flag
	taskID, _ := cmd.Flags().GetString("id")
	if len(args) > 0 {
		taskID = args[0]
	}
	if taskID == "" {
		return formatter.FailUsage(fmt.Errorf("task ID is required"),
			"Usage: tablero task show <id> or tablero task show --id=<id>")
	}

	board := cliInstance.App.BoardService.GetBoard(cmd.Context())
	task, column, ok := cli.FindTask(board, taskID)
	if !ok {
		return formatter.Fail(fmt.Errorf("task %s: %w", taskID, models.ErrTaskNotFound))
	}

	position := 0
	for i, t := range column.Tasks {
		if t.ID == taskID {
			position = i
		}
	}

	detail := taskDetail{Task: task, ColumnID: column.ID, ColumnTitle: column.Title, Position: position}
	return formatter.Success(detail, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, styles.RenderTaskDetail(task, column.Title))
		return err
	})
}
