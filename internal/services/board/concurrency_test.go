package board

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentAddTask_NoLostUpdates(t *testing.T) {
	svc, rec := newTestService(t)
	ctx := context.Background()

	const workers = 8
	const perWorker = 25

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				if _, err := svc.AddTask(gctx, "todo", fmt.Sprintf("w%d-%d", w, i)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	b := svc.GetBoard(ctx)
	assert.Equal(t, workers*perWorker, b.TaskCount())
	assert.NoError(t, b.Validate(), "ids stay unique")
	assert.Equal(t, workers*perWorker, rec.saveCount())
	assert.Equal(t, b, rec.last(), "last snapshot matches final board")
}

func TestConcurrentMixedCommands_BoardStaysConsistent(t *testing.T) {
	svc, rec := newTestService(t)
	ctx := context.Background()
	seedTasks(t, svc, "todo", "a", "b", "c", "d")

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < 4; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < 20; i++ {
				switch i % 4 {
				case 0:
					if _, err := svc.AddTask(gctx, "doing", "new"); err != nil {
						return err
					}
				case 1:
					// moves may miss when another worker emptied the column
					_, _ = svc.MoveTask(gctx, MoveTaskRequest{SourceColumnID: "doing", DestColumnID: "done", DestIndex: 0})
				case 2:
					svc.AddColumn(gctx, fmt.Sprintf("col-%d-%d", w, i))
				case 3:
					svc.GetBoard(gctx)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	b := svc.GetBoard(ctx)
	assert.NoError(t, b.Validate())
	assert.Len(t, b.Columns, 3+4*5)
	assert.Equal(t, 4+4*5, b.TaskCount(), "moves never create or lose tasks")
	assert.Equal(t, b, rec.last())
}
