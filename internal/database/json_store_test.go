package database

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStore_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "board.json"))
	require.NoError(t, err)

	original := sampleBoard()
	require.NoError(t, store.Save(ctx, original))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestJSONStore_PrettyPrinted(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "board.json")
	store, err := NewJSONStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), sampleBoard()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"columns\": ["), "snapshot should be indented")
	assert.True(t, json.Valid(data))
	assert.Contains(t, string(data), `"file_name": "sketch.png"`)
	assert.Contains(t, string(data), `"due_date": "2026-11-01"`)
}

func TestJSONStore_CreatesParentDirectory(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "board.json")
	store, err := NewJSONStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), sampleBoard()))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestJSONStore_LoadMissing(t *testing.T) {
	t.Parallel()
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "board.json"))
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestJSONStore_LoadMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"not json", "this is not json"},
		{"truncated", `{"columns": [`},
		{"wrong shape", `{"columns": "todo"}`},
		{"missing columns", `{}`},
		{"duplicate column ids", `{"columns":[{"id":"a","title":"A","tasks":[]},{"id":"a","title":"B","tasks":[]}]}`},
		{"duplicate task ids", `{"columns":[{"id":"a","title":"A","tasks":[{"id":"t","content":"x"}]},{"id":"b","title":"B","tasks":[{"id":"t","content":"y"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "board.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			store, err := NewJSONStore(path)
			require.NoError(t, err)

			_, err = store.Load(context.Background())
			assert.ErrorIs(t, err, ErrMalformedSnapshot)
		})
	}
}

func TestJSONStore_LoadToleratesMissingCollections(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "board.json")
	content := `{"columns":[{"id":"a","title":"A","tasks":[{"id":"t","content":"x"}]},{"id":"b","title":"B"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	store, err := NewJSONStore(path)
	require.NoError(t, err)

	board, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Columns, 2)
	assert.NotNil(t, board.Columns[0].Tasks[0].Labels)
	assert.NotNil(t, board.Columns[0].Tasks[0].Comments)
	assert.NotNil(t, board.Columns[0].Tasks[0].Attachments)
	assert.NotNil(t, board.Columns[1].Tasks)
}

func TestJSONStore_SaveFailureKeepsPreviousSnapshot(t *testing.T) {
	t.Parallel()
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "board.json")
	store, err := NewJSONStore(path)
	require.NoError(t, err)

	original := sampleBoard()
	require.NoError(t, store.Save(ctx, original))

	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	changed := sampleBoard()
	changed.Columns = changed.Columns[:1]
	assert.Error(t, store.Save(ctx, changed))

	require.NoError(t, os.Chmod(dir, 0o755))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestJSONStore_NoTempFilesLeftBehind(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store, err := NewJSONStore(filepath.Join(dir, "board.json"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(context.Background(), sampleBoard()))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "board.json", entries[0].Name())
}
