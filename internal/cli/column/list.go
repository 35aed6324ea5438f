package column

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// columnSummary is the JSON shape of one listed column
type columnSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TaskCount int    `json:"task_count"`
}

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List columns in board order",
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	board := cliInstance.App.BoardService.GetBoard(cmd.Context())

	summaries := make([]columnSummary, 0, len(board.Columns))
	for _, col := range board.Columns {
		summaries = append(summaries, columnSummary{ID: col.ID, Title: col.Title, TaskCount: len(col.Tasks)})
	}

	if formatter.Quiet {
		for _, s := range summaries {
			if _, err := fmt.Fprintln(formatter.Out, s.ID); err != nil {
				return err
			}
		}
		return nil
	}

	return formatter.Success(summaries, func(w io.Writer) error {
		for _, s := range summaries {
			if _, err := fmt.Fprintf(w, "%s %s %s\n",
				styles.TitleStyle.Render(s.Title),
				styles.SubtitleStyle.Render(s.ID),
				styles.ValueStyle.Render(fmt.Sprintf("(%d tasks)", s.TaskCount))); err != nil {
				return err
			}
		}
		return nil
	})
}
