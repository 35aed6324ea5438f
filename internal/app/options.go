package app

import (
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger      *slog.Logger
	metrics     *events.Metrics
	strictLoad  bool
	serviceOpts []board.Option
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithMetrics shares a metrics collector with the application
func WithMetrics(m *events.Metrics) Option {
	return func(cfg *appConfig) {
		cfg.metrics = m
	}
}

// WithStrictLoad makes an unreadable or malformed snapshot fail New
func WithStrictLoad(strict bool) Option {
	return func(cfg *appConfig) {
		cfg.strictLoad = strict
	}
}

// WithServiceOptions passes extra options to the board service
func WithServiceOptions(opts ...board.Option) Option {
	return func(cfg *appConfig) {
		cfg.serviceOpts = append(cfg.serviceOpts, opts...)
	}
}
