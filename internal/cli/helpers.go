package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Setup returns the CLI from the command context and a formatter built from
// the global --json and --quiet flags. A missing CLI is reported through the
// formatter.
func Setup(cmd *cobra.Command) (*CLI, *OutputFormatter, error) {
	formatter := FormatterFor(cmd)

	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			return nil, nil, fmtErr
		}
		return nil, nil, &ExitCodeError{Code: ExitError, Err: err}
	}

	styles.Init(cliInstance.Config.ColorScheme)
	return cliInstance, formatter, nil
}

// FormatterFor builds an output formatter writing to the command's streams
func FormatterFor(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// ReadValue returns value, or the command's stdin when value is "-"
func ReadValue(cmd *cobra.Command, value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// FindTask locates a task and the column holding it
func FindTask(b *models.Board, taskID string) (models.Task, models.Column, bool) {
	for _, col := range b.Columns {
		for _, task := range col.Tasks {
			if task.ID == taskID {
				return task, col, true
			}
		}
	}
	return models.Task{}, models.Column{}, false
}

// FindColumn locates a column by id
func FindColumn(b *models.Board, columnID string) (models.Column, bool) {
	for _, col := range b.Columns {
		if col.ID == columnID {
			return col, true
		}
	}
	return models.Column{}, false
}

// LastTask returns the bottom task of a column, which is where new tasks land
func LastTask(b *models.Board, columnID string) (models.Task, bool) {
	col, ok := FindColumn(b, columnID)
	if !ok || len(col.Tasks) == 0 {
		return models.Task{}, false
	}
	return col.Tasks[len(col.Tasks)-1], true
}

// PrintBoard writes the rendered board
func PrintBoard(w io.Writer, b *models.Board) error {
	_, err := fmt.Fprintln(w, styles.RenderBoard(b))
	return err
}
