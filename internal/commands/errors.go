package commands

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Messages returned across the command boundary
const (
	MsgColumnNotFound    = "Column not found"
	MsgSourceColumn      = "Source column not found"
	MsgDestColumn        = "Dest column not found"
	MsgTaskNotFound      = "Task not found"
	MsgSourceIndexBounds = "Source index out of bounds"
	msgUnknownCommand    = "Unknown command: %s"
	msgInvalidArguments  = "Invalid arguments: %s"
)

// ErrUnknownCommand is wrapped by errors for unregistered command names
var ErrUnknownCommand = errors.New("unknown command")

// ErrInvalidArguments is wrapped by errors for undecodable or incomplete arguments
var ErrInvalidArguments = errors.New("invalid arguments")

// CommandError is the failure shape seen by a dispatcher: a command name and
// the plain message shown to the user. The underlying error stays available
// through errors.Is and errors.As.
type CommandError struct {
	Command string `json:"command"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// newCommandError maps a domain error to its user-facing message
func newCommandError(command string, err error) *CommandError {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce
	}
	return &CommandError{Command: command, Message: messageFor(err), Err: err}
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, models.ErrSourceColumnNotFound):
		return MsgSourceColumn
	case errors.Is(err, models.ErrDestColumnNotFound):
		return MsgDestColumn
	case errors.Is(err, models.ErrColumnNotFound):
		return MsgColumnNotFound
	case errors.Is(err, models.ErrTaskNotFound):
		return MsgTaskNotFound
	case errors.Is(err, models.ErrIndexOutOfBounds):
		return MsgSourceIndexBounds
	default:
		return err.Error()
	}
}

func unknownCommand(name string) *CommandError {
	return &CommandError{
		Command: name,
		Message: fmt.Sprintf(msgUnknownCommand, name),
		Err:     fmt.Errorf("%w: %s", ErrUnknownCommand, name),
	}
}

func invalidArguments(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Message: fmt.Sprintf(msgInvalidArguments, err),
		Err:     fmt.Errorf("%w: %w", ErrInvalidArguments, err),
	}
}
