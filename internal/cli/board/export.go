package board

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportCmd returns the board export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board as JSON or YAML",
		Long: `Write the whole board to stdout. The JSON form is the same document the
json backend stores, so it can be copied over board.json.

Examples:
  tablero board export > backup.json
  tablero board export --format yaml
`,
		RunE: runExport,
	}

	cmd.Flags().String("format", FormatJSON, "Output format: json or yaml")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format != FormatJSON && format != FormatYAML {
		return formatter.FailUsage(fmt.Errorf("unknown export format %q", format),
			"Use --format=json or --format=yaml")
	}

	board := cliInstance.App.BoardService.GetBoard(cmd.Context())
	return writeBoard(formatter.Out, board, format)
}

// writeBoard encodes b in the given format
func writeBoard(w io.Writer, b *models.Board, format string) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("failed to encode board as yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("failed to encode board as json: %w", err)
	}
	return nil
}
