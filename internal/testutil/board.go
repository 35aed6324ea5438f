package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// SetupTestApp creates an application over a JSON snapshot in a temp dir.
// The app is closed by test cleanup.
func SetupTestApp(t *testing.T) (*app.App, database.SnapshotStore) {
	t.Helper()

	store, err := database.NewJSONStore(filepath.Join(t.TempDir(), database.JSONFileName))
	if err != nil {
		t.Fatalf("Failed to create snapshot store: %v", err)
	}

	a, err := app.New(context.Background(), store, app.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	return a, store
}

// CreateTestColumn appends a column and returns its ID
func CreateTestColumn(t *testing.T, svc board.Service, title string) string {
	t.Helper()
	b := svc.AddColumn(context.Background(), title)
	return b.Columns[len(b.Columns)-1].ID
}

// CreateTestTask appends a task to a column and returns its ID
func CreateTestTask(t *testing.T, svc board.Service, columnID, content string) string {
	t.Helper()
	b, err := svc.AddTask(context.Background(), columnID, content)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	for _, col := range b.Columns {
		if col.ID == columnID {
			return col.Tasks[len(col.Tasks)-1].ID
		}
	}
	t.Fatalf("column %s missing after add", columnID)
	return ""
}
