package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/tablero/internal/commands"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success outputs successful operation result.
// human renders the non-JSON form; it is skipped in quiet mode.
func (f *OutputFormatter) Success(data any, human func(w io.Writer) error) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.out(), idGetter.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if human == nil {
		return f.prettyPrint(data)
	}
	return human(f.out())
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns an *ExitCodeError with the matching exit code
func (f *OutputFormatter) Fail(err error) error {
	code, exit := Classify(err)
	if fmtErr := f.Error(code, Message(err)); fmtErr != nil {
		return fmtErr
	}
	return &ExitCodeError{Code: exit, Err: err}
}

// FailUsage reports a usage problem with a suggestion
func (f *OutputFormatter) FailUsage(err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion("USAGE", err.Error(), suggestion); fmtErr != nil {
		return fmtErr
	}
	return &ExitCodeError{Code: ExitUsage, Err: err}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// Classify maps an error to a machine-readable code and an exit code
func Classify(err error) (string, int) {
	switch {
	case errors.Is(err, models.ErrColumnNotFound):
		return "COLUMN_NOT_FOUND", ExitNotFound
	case errors.Is(err, models.ErrTaskNotFound):
		return "TASK_NOT_FOUND", ExitNotFound
	case errors.Is(err, models.ErrIndexOutOfBounds):
		return "INDEX_OUT_OF_BOUNDS", ExitValidation
	case errors.Is(err, commands.ErrUnknownCommand):
		return "UNKNOWN_COMMAND", ExitUsage
	case errors.Is(err, commands.ErrInvalidArguments):
		return "INVALID_ARGUMENTS", ExitDataErr
	case errors.Is(err, database.ErrMalformedSnapshot):
		return "MALFORMED_SNAPSHOT", ExitDataErr
	case errors.Is(err, database.ErrUnknownBackend), errors.Is(err, config.ErrInvalidConfig):
		return "INVALID_CONFIG", ExitValidation
	default:
		return "ERROR", ExitError
	}
}

// Message returns the user-facing text for err
func Message(err error) string {
	var ce *commands.CommandError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}
