// Package commands exposes the board operations by name, taking JSON
// arguments and returning plain error messages, for dispatchers that sit
// outside the Go type system (a desktop shell, the invoke CLI command).
package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// HandlerFunc runs one named command against the board service
type HandlerFunc func(ctx context.Context, svc board.Service, args json.RawMessage) (*models.Board, error)

// Registry maps command names to handlers
type Registry struct {
	svc      board.Service
	handlers map[string]HandlerFunc
	logger   *slog.Logger
}

// NewRegistry creates a registry with every board command registered
func NewRegistry(svc board.Service, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		svc:      svc,
		handlers: make(map[string]HandlerFunc),
		logger:   logger,
	}

	r.Register(board.CmdGetBoard, getBoard)
	r.Register(board.CmdAddColumn, addColumn)
	r.Register(board.CmdDeleteColumn, deleteColumn)
	r.Register(board.CmdAddTask, addTask)
	r.Register(board.CmdUpdateTask, updateTask)
	r.Register(board.CmdUpdateTaskDetails, updateTaskDetails)
	r.Register(board.CmdAddComment, addComment)
	r.Register(board.CmdAddAttachment, addAttachment)
	r.Register(board.CmdDeleteTask, deleteTask)
	r.Register(board.CmdMoveTask, moveTask)

	return r
}

// Register adds or replaces a handler
func (r *Registry) Register(name string, h HandlerFunc) {
	r.handlers[name] = h
}

// Names returns the registered command names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named command. Every failure is a *CommandError.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) (*models.Board, error) {
	h, ok := r.handlers[name]
	if !ok {
		r.logger.Warn("unknown command", "command", name)
		return nil, unknownCommand(name)
	}

	b, err := h(ctx, r.svc, args)
	if err != nil {
		ce := newCommandError(name, err)
		r.logger.Debug("command failed", "command", name, "error", err)
		return nil, ce
	}
	return b, nil
}
