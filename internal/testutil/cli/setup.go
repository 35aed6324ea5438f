package cli

import (
	"testing"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

// SetupCLITest returns an App over a temp-dir JSON snapshot and the store behind it.
// It lives in a separate package to avoid import cycles when service tests
// import testutil.
func SetupCLITest(t *testing.T) (*app.App, database.SnapshotStore) {
	t.Helper()
	return testutil.SetupTestApp(t)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, a *app.App, columnID, content string) string {
	t.Helper()
	return testutil.CreateTestTask(t, a.BoardService, columnID, content)
}

// CreateTestColumn wraps testutil.CreateTestColumn for CLI tests
func CreateTestColumn(t *testing.T, a *app.App, title string) string {
	t.Helper()
	return testutil.CreateTestColumn(t, a.BoardService, title)
}
