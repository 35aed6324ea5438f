package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// :memory: databases are per-connection
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupSQLiteStore returns a migrated in-memory snapshot store
func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStoreFromDB(context.Background(), setupTestDB(t))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

// sampleBoard builds a board exercising every field of the schema
func sampleBoard() *models.Board {
	desc := "Write the **design** doc"
	due := "2026-11-01"

	first := models.NewTask("task-1", "Design")
	first.Description = &desc
	first.DueDate = &due
	first.Labels = []string{"docs", "urgent"}
	first.Comments = []models.Comment{
		{ID: "c-1", Author: "User", Content: "started", CreatedAt: "2026-10-15T10:00:00+00:00"},
		{ID: "c-2", Author: "User", Content: "halfway", CreatedAt: "2026-10-15T12:30:00+00:00"},
	}
	first.Attachments = []models.Attachment{
		{ID: "a-1", FileName: "sketch.png", FilePath: "/tmp/sketch.png", MimeType: "image/png"},
	}

	b := models.DefaultBoard()
	b.Columns[0].Tasks = append(b.Columns[0].Tasks, first, models.NewTask("task-2", "Build"))
	b.Columns[2].Tasks = append(b.Columns[2].Tasks, models.NewTask("task-3", "Ship"))
	b.Columns = append(b.Columns, models.Column{ID: "extra", Title: "Backlog", Tasks: []models.Task{}})
	return b
}
