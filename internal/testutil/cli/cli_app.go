package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/app"
	tablerocli "github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The command is mounted under a root carrying the global flags and the
// app is injected into the command context, so no config or data
// directories are touched.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	root := &cobra.Command{Use: "tablero"}
	var opts tablerocli.GlobalOptions
	tablerocli.AddGlobalFlags(root, &opts)
	root.AddCommand(cmd)

	testutil.SetupCobraCommand(root, append([]string{cmd.Name()}, args...))

	ctxWithApp := tablerocli.WithCLI(ctx, tablerocli.NewCLIFromApp(testApp, nil))

	var output string
	var executeErr error

	output = testutil.CaptureOutput(t, func() {
		executeErr = root.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}
