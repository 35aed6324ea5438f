package board

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/events"
	"golang.org/x/sync/errgroup"
)

// stressResult is the JSON shape of a stress run
type stressResult struct {
	Column    string                 `json:"column"`
	Workers   int                    `json:"workers"`
	Requested int                    `json:"requested"`
	Added     int                    `json:"added"`
	Before    int                    `json:"before"`
	After     int                    `json:"after"`
	Elapsed   string                 `json:"elapsed"`
	Events    int                    `json:"events"`
	Metrics   events.MetricsSnapshot `json:"metrics"`
}

// StressCmd returns the board stress subcommand
func StressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Add tasks from concurrent workers and check none were lost",
		Long: `Start --workers goroutines that each add --tasks tasks to one column, then
compare the column's task count with the number of adds. Every add is
persisted, so this also exercises the storage backend.

Examples:
  tablero board stress --workers=8 --tasks=50
  tablero board stress --column=done --json
`,
		RunE: runStress,
	}

	cmd.Flags().Int("workers", 4, "Number of concurrent workers")
	cmd.Flags().Int("tasks", 25, "Tasks added by each worker")
	cmd.Flags().String("column", "", "Column ID (default: first column)")

	return cmd
}

func runStress(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	perWorker, _ := cmd.Flags().GetInt("tasks")
	columnID, _ := cmd.Flags().GetString("column")

	if workers < 1 || perWorker < 0 {
		return formatter.FailUsage(fmt.Errorf("workers must be at least 1 and tasks at least 0"),
			"Use e.g. --workers=4 --tasks=25")
	}

	svc := cliInstance.App.BoardService
	board := svc.GetBoard(cmd.Context())
	if columnID == "" {
		if len(board.Columns) == 0 {
			return formatter.FailUsage(fmt.Errorf("board has no columns"),
				"Create one with: tablero column add --title=<title>")
		}
		columnID = board.Columns[0].ID
	}
	column, _ := cli.FindColumn(board, columnID)
	before := len(column.Tasks)

	// Sized so no board-changed event is dropped during the run
	changes, unsubscribe := cliInstance.App.Events().Subscribe(workers*perWorker + 1)
	defer unsubscribe()

	start := time.Now()
	g, ctx := errgroup.WithContext(cmd.Context())
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				if _, err := svc.AddTask(ctx, columnID, fmt.Sprintf("stress w%d #%d", w, i)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return formatter.Fail(err)
	}
	elapsed := time.Since(start)

	column, _ = cli.FindColumn(svc.GetBoard(cmd.Context()), columnID)
	result := stressResult{
		Column:    columnID,
		Workers:   workers,
		Requested: workers * perWorker,
		Added:     len(column.Tasks) - before,
		Before:    before,
		After:     len(column.Tasks),
		Elapsed:   elapsed.Round(time.Millisecond).String(),
		Events:    len(changes),
		Metrics:   cliInstance.App.Metrics().Snapshot(),
	}

	if result.Added != result.Requested {
		return formatter.Fail(fmt.Errorf("lost updates: requested %d adds, column grew by %d",
			result.Requested, result.Added))
	}

	if formatter.Quiet {
		_, err := fmt.Fprintln(formatter.Out, result.Added)
		return err
	}

	return formatter.Success(result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Added %d tasks to %s from %d workers in %s (%d -> %d)\n"+
			"Events: %d board changes observed\n"+
			"Commands: %d total, %d failed, %d mutations, %d persist failures\n",
			result.Added, column.Title, result.Workers, result.Elapsed, result.Before, result.After,
			result.Events,
			result.Metrics.CommandsTotal, result.Metrics.CommandsFailed,
			result.Metrics.Mutations, result.Metrics.PersistFailures)
		return err
	})
}
