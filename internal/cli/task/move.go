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

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task by position",
		Long: `Move the task at a position in one column to a position in another (or the same) column.

Positions start at 0. A destination position past the end of the column
appends. For a move within one column, the destination position counts the
column with the task already taken out, so moving position 0 to 2 in
[A, B, C] gives [B, C, A].

Examples:
  # Top of To Do to the top of Doing
  tablero task move --from=todo --from-index=0 --to=doing --to-index=0

  # Send to the bottom of Done
  tablero task move --from=doing --from-index=1 --to=done --to-index=999
`,
		RunE: runMove,
	}

	cmd.Flags().String("from", "", "Source column ID (required)")
	cmd.Flags().String("to", "", "Destination column ID (required)")
	cmd.Flags().Int("from-index", 0, "Position in the source column (required)")
	cmd.Flags().Int("to-index", 0, "Position in the destination column (required)")
	for _, name := range []string{"from", "to", "from-index", "to-index"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	req := boardservice.MoveTaskRequest{}
	req.SourceColumnID, _ = cmd.Flags().GetString("from")
	req.DestColumnID, _ = cmd.Flags().GetString("to")
	req.SourceIndex, _ = cmd.Flags().GetInt("from-index")
	req.DestIndex, _ = cmd.Flags().GetInt("to-index")

	board, err := cliInstance.App.BoardService.MoveTask(cmd.Context(), req)
	if err != nil {
		return formatter.Fail(err)
	}

	dest, _ := cli.FindColumn(board, req.DestColumnID)
	position := req.DestIndex
	if position > len(dest.Tasks)-1 {
		position = len(dest.Tasks) - 1
	}
	moved := dest.Tasks[position]

	if formatter.Quiet {
		_, err := fmt.Fprintln(formatter.Out, moved.ID)
		return err
	}

	return formatter.Success(board, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s\n",
			styles.Success("Task '%s' moved to %s (position %d)", moved.Content, dest.Title, position))
		return err
	})
}
