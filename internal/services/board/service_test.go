package board

import (
	"bytes"
	"context"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// newTestService creates a service over the default board backed by a recording store
func newTestService(t *testing.T, opts ...Option) (Service, *recordingStore) {
	t.Helper()
	rec := &recordingStore{}
	opts = append([]Option{WithIDGenerator(sequentialIDs())}, opts...)
	return NewService(models.DefaultBoard(), rec, opts...), rec
}

// seedTasks adds tasks with the given contents to a column and returns their ids
func seedTasks(t *testing.T, svc Service, columnID string, contents ...string) []string {
	t.Helper()
	var ids []string
	for _, c := range contents {
		b, err := svc.AddTask(context.Background(), columnID, c)
		require.NoError(t, err)
		col := findColumn(t, b, columnID)
		ids = append(ids, col.Tasks[len(col.Tasks)-1].ID)
	}
	return ids
}

func findColumn(t *testing.T, b *models.Board, id string) models.Column {
	t.Helper()
	for _, c := range b.Columns {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("column %s not found", id)
	return models.Column{}
}

func findTask(t *testing.T, b *models.Board, id string) models.Task {
	t.Helper()
	for _, c := range b.Columns {
		for _, task := range c.Tasks {
			if task.ID == id {
				return task
			}
		}
	}
	t.Fatalf("task %s not found", id)
	return models.Task{}
}

func contents(col models.Column) []string {
	out := make([]string, 0, len(col.Tasks))
	for _, task := range col.Tasks {
		out = append(out, task.Content)
	}
	return out
}

func allTaskIDs(b *models.Board) []string {
	var ids []string
	for _, c := range b.Columns {
		ids = append(ids, c.TaskIDs()...)
	}
	sort.Strings(ids)
	return ids
}

// ============================================================================
// GET BOARD
// ============================================================================

func TestGetBoard_ReturnsCopy(t *testing.T) {
	svc, rec := newTestService(t)
	ctx := context.Background()

	b := svc.GetBoard(ctx)
	require.Len(t, b.Columns, 3)
	b.Columns[0].Title = "mutated"

	assert.Equal(t, "To Do", svc.GetBoard(ctx).Columns[0].Title)
	assert.Equal(t, 0, rec.saveCount(), "reads never persist")
}

// ============================================================================
// COLUMNS
// ============================================================================

func TestAddColumn(t *testing.T) {
	svc, rec := newTestService(t)

	b := svc.AddColumn(context.Background(), "Review")

	require.Len(t, b.Columns, 4)
	col := b.Columns[3]
	assert.Equal(t, "id-1", col.ID)
	assert.Equal(t, "Review", col.Title)
	assert.NotNil(t, col.Tasks)
	assert.Empty(t, col.Tasks)
	assert.Equal(t, b, rec.last(), "snapshot equals returned board")
}

func TestDeleteColumn_RemovesItsTasksOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	todo := seedTasks(t, svc, "todo", "a", "b")
	done := seedTasks(t, svc, "done", "c")

	b := svc.DeleteColumn(ctx, "todo")

	require.Len(t, b.Columns, 2)
	assert.Equal(t, "doing", b.Columns[0].ID)
	assert.Equal(t, done, allTaskIDs(b))
	for _, id := range todo {
		assert.NotContains(t, allTaskIDs(b), id)
	}
}

func TestDeleteColumn_MissingIsNoOp(t *testing.T) {
	svc, rec := newTestService(t)

	b := svc.DeleteColumn(context.Background(), "does-not-exist")

	assert.Equal(t, models.DefaultBoard(), b)
	assert.Equal(t, 1, rec.saveCount(), "no-op delete still persists")
}

// ============================================================================
// TASKS
// ============================================================================

func TestAddTask(t *testing.T) {
	svc, rec := newTestService(t)

	b, err := svc.AddTask(context.Background(), "doing", "write tests")
	require.NoError(t, err)

	col := findColumn(t, b, "doing")
	require.Len(t, col.Tasks, 1)
	task := col.Tasks[0]
	assert.Equal(t, "id-1", task.ID)
	assert.Equal(t, "write tests", task.Content)
	assert.Nil(t, task.Description)
	assert.Nil(t, task.DueDate)
	assert.Equal(t, []string{}, task.Labels)
	assert.Equal(t, []models.Comment{}, task.Comments)
	assert.Equal(t, []models.Attachment{}, task.Attachments)
	assert.Equal(t, 1, rec.saveCount())
}

func TestAddTask_AppendsInOrder(t *testing.T) {
	svc, _ := newTestService(t)
	seedTasks(t, svc, "todo", "first", "second", "third")

	b := svc.GetBoard(context.Background())
	assert.Equal(t, []string{"first", "second", "third"}, contents(findColumn(t, b, "todo")))
}

func TestAddTask_ColumnNotFound(t *testing.T) {
	svc, rec := newTestService(t)

	b, err := svc.AddTask(context.Background(), "nope", "x")

	assert.ErrorIs(t, err, models.ErrColumnNotFound)
	assert.Nil(t, b)
	assert.Equal(t, 0, rec.saveCount(), "failed commands do not persist")
	assert.Equal(t, 0, svc.GetBoard(context.Background()).TaskCount())
}

func TestUpdateTask(t *testing.T) {
	svc, rec := newTestService(t)
	ids := seedTasks(t, svc, "todo", "old")

	b := svc.UpdateTask(context.Background(), ids[0], "new")

	assert.Equal(t, "new", findTask(t, b, ids[0]).Content)
	assert.Equal(t, 2, rec.saveCount())
}

func TestUpdateTask_MissingIsTolerated(t *testing.T) {
	svc, rec := newTestService(t)
	seedTasks(t, svc, "todo", "keep")
	before := svc.GetBoard(context.Background())

	b := svc.UpdateTask(context.Background(), "ghost", "x")

	assert.Equal(t, before, b)
	assert.Equal(t, 2, rec.saveCount())
}

func TestUpdateTaskDetails(t *testing.T) {
	svc, _ := newTestService(t)
	ids := seedTasks(t, svc, "todo", "original")
	ctx := context.Background()

	content := "renamed"
	desc := "longer description"
	due := "2026-12-31"
	b, err := svc.UpdateTaskDetails(ctx, UpdateTaskDetailsRequest{
		TaskID:      ids[0],
		Content:     &content,
		Description: &desc,
		DueDate:     &due,
		Labels:      []string{"bug", "p1"},
	})
	require.NoError(t, err)

	task := findTask(t, b, ids[0])
	assert.Equal(t, "renamed", task.Content)
	require.NotNil(t, task.Description)
	assert.Equal(t, "longer description", *task.Description)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-12-31", *task.DueDate)
	assert.Equal(t, []string{"bug", "p1"}, task.Labels)
}

func TestUpdateTaskDetails_PartialLeavesOthers(t *testing.T) {
	svc, _ := newTestService(t)
	ids := seedTasks(t, svc, "todo", "original")
	ctx := context.Background()

	desc := "kept"
	_, err := svc.UpdateTaskDetails(ctx, UpdateTaskDetailsRequest{
		TaskID:      ids[0],
		Description: &desc,
		Labels:      []string{"a"},
	})
	require.NoError(t, err)

	due := "tomorrow"
	b, err := svc.UpdateTaskDetails(ctx, UpdateTaskDetailsRequest{TaskID: ids[0], DueDate: &due})
	require.NoError(t, err)

	task := findTask(t, b, ids[0])
	assert.Equal(t, "original", task.Content)
	assert.Equal(t, "kept", *task.Description)
	assert.Equal(t, "tomorrow", *task.DueDate)
	assert.Equal(t, []string{"a"}, task.Labels)
}

func TestUpdateTaskDetails_EmptyLabelsClears(t *testing.T) {
	svc, _ := newTestService(t)
	ids := seedTasks(t, svc, "todo", "x")
	ctx := context.Background()

	_, err := svc.UpdateTaskDetails(ctx, UpdateTaskDetailsRequest{TaskID: ids[0], Labels: []string{"a", "b"}})
	require.NoError(t, err)
	b, err := svc.UpdateTaskDetails(ctx, UpdateTaskDetailsRequest{TaskID: ids[0], Labels: []string{}})
	require.NoError(t, err)

	assert.Equal(t, []string{}, findTask(t, b, ids[0]).Labels)
}

func TestUpdateTaskDetails_NoFieldsStillPersists(t *testing.T) {
	svc, rec := newTestService(t)
	ids := seedTasks(t, svc, "todo", "x")
	ctx := context.Background()
	before := findTask(t, svc.GetBoard(ctx), ids[0])
	saves := rec.saveCount()

	b, err := svc.UpdateTaskDetails(ctx, UpdateTaskDetailsRequest{TaskID: ids[0]})
	require.NoError(t, err)

	assert.Equal(t, before, findTask(t, b, ids[0]))
	assert.Equal(t, saves+1, rec.saveCount())
}

func TestUpdateTaskDetails_TaskNotFound(t *testing.T) {
	svc, rec := newTestService(t)

	content := "x"
	_, err := svc.UpdateTaskDetails(context.Background(), UpdateTaskDetailsRequest{TaskID: "ghost", Content: &content})

	assert.ErrorIs(t, err, models.ErrTaskNotFound)
	assert.Equal(t, 0, rec.saveCount())
}

func TestUpdateTaskDetails_CallerCannotAliasLabels(t *testing.T) {
	svc, _ := newTestService(t)
	ids := seedTasks(t, svc, "todo", "x")
	ctx := context.Background()

	labels := []string{"a"}
	_, err := svc.UpdateTaskDetails(ctx, UpdateTaskDetailsRequest{TaskID: ids[0], Labels: labels})
	require.NoError(t, err)
	labels[0] = "changed"

	assert.Equal(t, []string{"a"}, findTask(t, svc.GetBoard(ctx), ids[0]).Labels)
}

func TestDeleteTask(t *testing.T) {
	svc, rec := newTestService(t)
	ids := seedTasks(t, svc, "todo", "a", "b", "c")

	b := svc.DeleteTask(context.Background(), ids[1])

	assert.Equal(t, []string{"a", "c"}, contents(findColumn(t, b, "todo")))
	assert.Equal(t, 4, rec.saveCount())
}

func TestDeleteTask_MissingIsNoOp(t *testing.T) {
	svc, rec := newTestService(t)
	seedTasks(t, svc, "todo", "a")
	before := svc.GetBoard(context.Background())

	b := svc.DeleteTask(context.Background(), "ghost")

	assert.Equal(t, before, b)
	assert.Equal(t, 2, rec.saveCount())
}

func TestAddDeleteSequence_TaskSetMatches(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	live := map[string]bool{}
	columns := []string{"todo", "doing", "done"}
	for i := 0; i < 30; i++ {
		ids := seedTasks(t, svc, columns[i%3], "task")
		live[ids[0]] = true
		if i%4 == 3 {
			// delete an older task
			for id := range live {
				svc.DeleteTask(ctx, id)
				delete(live, id)
				break
			}
		}
	}

	var want []string
	for id := range live {
		want = append(want, id)
	}
	sort.Strings(want)
	assert.Equal(t, want, allTaskIDs(svc.GetBoard(ctx)))
}

// ============================================================================
// COMMENTS & ATTACHMENTS
// ============================================================================

func TestAddComment(t *testing.T) {
	at := time.Date(2026, 10, 15, 9, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	svc, _ := newTestService(t, WithClock(fixedClock(at)))
	ids := seedTasks(t, svc, "todo", "x")

	b, err := svc.AddComment(context.Background(), ids[0], "looks good")
	require.NoError(t, err)

	comments := findTask(t, b, ids[0]).Comments
	require.Len(t, comments, 1)
	assert.Equal(t, "id-2", comments[0].ID)
	assert.Equal(t, "User", comments[0].Author)
	assert.Equal(t, "looks good", comments[0].Content)
	assert.Equal(t, "2026-10-15T07:30:00Z", comments[0].CreatedAt)
}

func TestAddComment_AppendsAndCustomAuthor(t *testing.T) {
	svc, _ := newTestService(t, WithCommentAuthor("ana"))
	ids := seedTasks(t, svc, "todo", "x")
	ctx := context.Background()

	_, err := svc.AddComment(ctx, ids[0], "one")
	require.NoError(t, err)
	b, err := svc.AddComment(ctx, ids[0], "two")
	require.NoError(t, err)

	comments := findTask(t, b, ids[0]).Comments
	require.Len(t, comments, 2)
	assert.Equal(t, "one", comments[0].Content)
	assert.Equal(t, "two", comments[1].Content)
	assert.Equal(t, "ana", comments[1].Author)
	_, err = time.Parse(time.RFC3339, comments[0].CreatedAt)
	assert.NoError(t, err)
}

func TestAddComment_TaskNotFound(t *testing.T) {
	svc, rec := newTestService(t)

	_, err := svc.AddComment(context.Background(), "ghost", "x")

	assert.ErrorIs(t, err, models.ErrTaskNotFound)
	assert.Equal(t, 0, rec.saveCount())
}

func TestAddAttachment(t *testing.T) {
	svc, _ := newTestService(t)
	ids := seedTasks(t, svc, "todo", "x")

	b, err := svc.AddAttachment(context.Background(), AddAttachmentRequest{
		TaskID:   ids[0],
		FileName: "design.pdf",
		FilePath: "/nonexistent/design.pdf",
		MimeType: "application/pdf",
	})
	require.NoError(t, err)

	atts := findTask(t, b, ids[0]).Attachments
	require.Len(t, atts, 1)
	assert.Equal(t, models.Attachment{
		ID:       "id-2",
		FileName: "design.pdf",
		FilePath: "/nonexistent/design.pdf",
		MimeType: "application/pdf",
	}, atts[0])
}

func TestAddAttachment_TaskNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddAttachment(context.Background(), AddAttachmentRequest{TaskID: "ghost"})
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

// ============================================================================
// PERSISTENCE & EVENTS
// ============================================================================

func TestPersistFailure_IsLoggedNotReturned(t *testing.T) {
	var logs bytes.Buffer
	metrics := events.NewMetrics()
	svc, rec := newTestService(t,
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		WithMetrics(metrics))
	rec.setFailing(true)

	b, err := svc.AddTask(context.Background(), "todo", "survives")

	require.NoError(t, err)
	assert.Equal(t, []string{"survives"}, contents(findColumn(t, b, "todo")))
	assert.Equal(t, []string{"survives"}, contents(findColumn(t, svc.GetBoard(context.Background()), "todo")))
	assert.Equal(t, int64(1), metrics.PersistFailures.Load())
	assert.Contains(t, logs.String(), "failed to persist board")
	assert.Contains(t, logs.String(), "disk full")
}

func TestPersist_CancelledContextStillWrites(t *testing.T) {
	svc, rec := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AddTask(ctx, "todo", "x")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.saveCount())
}

func TestNilSnapshotStore(t *testing.T) {
	svc := NewService(nil, nil)

	b, err := svc.AddTask(context.Background(), "todo", "x")
	require.NoError(t, err)
	assert.Equal(t, 1, b.TaskCount())

	_, err = svc.Reload(context.Background())
	assert.Error(t, err)
}

func TestEvents_PublishedAfterMutation(t *testing.T) {
	bus := events.NewBus(nil, nil)
	defer bus.Close()
	ch, unsub := bus.Subscribe(10)
	defer unsub()

	svc, _ := newTestService(t, WithEventPublisher(bus))
	ctx := context.Background()

	svc.AddColumn(ctx, "Review")
	_, err := svc.AddTask(ctx, "nope", "x")
	require.Error(t, err)
	svc.GetBoard(ctx)

	ev := <-ch
	assert.Equal(t, events.EventBoardChanged, ev.Type)
	assert.Equal(t, CmdAddColumn, ev.Command)

	select {
	case extra := <-ch:
		t.Fatalf("unexpected event %+v", extra)
	default:
	}
}

func TestMetrics_CountCommands(t *testing.T) {
	metrics := events.NewMetrics()
	svc, _ := newTestService(t, WithMetrics(metrics))
	ctx := context.Background()

	svc.GetBoard(ctx)
	svc.AddColumn(ctx, "x")
	_, _ = svc.AddTask(ctx, "missing", "x")

	assert.Equal(t, int64(3), metrics.CommandsTotal.Load())
	assert.Equal(t, int64(1), metrics.CommandsFailed.Load())
	assert.Equal(t, int64(1), metrics.Mutations.Load())
}

func TestReload(t *testing.T) {
	bus := events.NewBus(nil, nil)
	defer bus.Close()
	ch, unsub := bus.Subscribe(10)
	defer unsub()

	rec := &recordingStore{}
	persisted := models.DefaultBoard()
	persisted.Columns = persisted.Columns[:1]
	require.NoError(t, rec.Save(context.Background(), persisted))

	svc := NewService(models.DefaultBoard(), rec, WithEventPublisher(bus))

	b, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Len(t, b.Columns, 1)
	assert.Len(t, svc.GetBoard(context.Background()).Columns, 1)

	ev := <-ch
	assert.Equal(t, events.EventBoardReloaded, ev.Type)
}

func TestReload_FailureKeepsBoard(t *testing.T) {
	svc, _ := newTestService(t)
	seedTasks(t, svc, "todo", "keep")

	svc2 := NewService(svc.GetBoard(context.Background()), &recordingStore{})
	_, err := svc2.Reload(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, svc2.GetBoard(context.Background()).TaskCount())
}
