package invoke

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/testutil"
	clitest "github.com/thenoetrevino/tablero/internal/testutil/cli"
)

func TestInvoke_Positive(t *testing.T) {
	app, _ := clitest.SetupCLITest(t)

	t.Run("add_task returns the board", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, InvokeCmd(),
			[]string{"add_task", `{"columnId":"todo","content":"From a UI"}`, "--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		columns := result["data"].(map[string]any)["columns"].([]any)
		todo := columns[0].(map[string]any)
		tasks := todo["tasks"].([]any)
		require.Len(t, tasks, 1)
		assert.Equal(t, "From a UI", tasks[0].(map[string]any)["content"])
	})

	t.Run("get_board needs no arguments", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, InvokeCmd(), []string{"get_board"})
		require.NoError(t, err)
		assert.Contains(t, output, "From a UI")
	})

	t.Run("move_task", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, InvokeCmd(),
			[]string{"move_task", `{"sourceColId":"todo","destColId":"done","sourceIndex":0,"destIndex":0}`})
		require.NoError(t, err)

		done, _ := cli.FindColumn(app.BoardService.GetBoard(context.Background()), "done")
		require.Len(t, done.Tasks, 1)
		assert.Equal(t, "From a UI", done.Tasks[0].Content)
	})

	t.Run("List command names", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, InvokeCmd(), []string{"--list"})
		require.NoError(t, err)
		for _, name := range []string{"get_board", "add_column", "delete_column", "add_task", "update_task",
			"update_task_details", "add_comment", "add_attachment", "delete_task", "move_task"} {
			assert.Contains(t, output, name)
		}
	})
}

func TestInvoke_Negative(t *testing.T) {
	app, _ := clitest.SetupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		message  string
		code     string
		exitCode int
	}{
		{
			name:     "unknown command",
			args:     []string{"archive_task", `{}`},
			message:  "Unknown command: archive_task",
			code:     "UNKNOWN_COMMAND",
			exitCode: cli.ExitUsage,
		},
		{
			name:     "missing column",
			args:     []string{"add_task", `{"columnId":"nope","content":"x"}`},
			message:  "Column not found",
			code:     "COLUMN_NOT_FOUND",
			exitCode: cli.ExitNotFound,
		},
		{
			name:     "dest column missing",
			args:     []string{"move_task", `{"sourceColId":"todo","destColId":"nope","sourceIndex":0,"destIndex":0}`},
			message:  "Dest column not found",
			code:     "COLUMN_NOT_FOUND",
			exitCode: cli.ExitNotFound,
		},
		{
			name:     "malformed arguments",
			args:     []string{"add_column", `{"title":`},
			code:     "INVALID_ARGUMENTS",
			exitCode: cli.ExitDataErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := clitest.ExecuteCLICommand(t, app, InvokeCmd(), append(tt.args, "--json"))

			require.Error(t, err)
			assert.Equal(t, tt.exitCode, cli.ExitCodeOf(err))

			errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
			assert.Equal(t, tt.code, errData["code"])
			if tt.message != "" {
				assert.Equal(t, tt.message, errData["message"])
			}
		})
	}

	t.Run("Command name is required", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, InvokeCmd(), nil)
		assert.Error(t, err)
	})
}
