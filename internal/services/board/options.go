package board

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Option is a functional option for configuring the service
type Option func(*serviceConfig)

// serviceConfig holds the configuration for service initialization
type serviceConfig struct {
	events  events.EventPublisher
	metrics *events.Metrics
	logger  *slog.Logger
	newID   func() string
	now     func() time.Time
	author  string
}

func defaultConfig() *serviceConfig {
	return &serviceConfig{
		metrics: events.NewMetrics(),
		logger:  slog.Default(),
		newID:   uuid.NewString,
		now:     time.Now,
		author:  models.DefaultCommentAuthor,
	}
}

// WithEventPublisher sets the publisher notified after every change
func WithEventPublisher(ep events.EventPublisher) Option {
	return func(cfg *serviceConfig) {
		cfg.events = ep
	}
}

// WithMetrics sets the metrics collector
func WithMetrics(m *events.Metrics) Option {
	return func(cfg *serviceConfig) {
		if m != nil {
			cfg.metrics = m
		}
	}
}

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *serviceConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithIDGenerator overrides identifier generation (UUID v4 by default)
func WithIDGenerator(fn func() string) Option {
	return func(cfg *serviceConfig) {
		if fn != nil {
			cfg.newID = fn
		}
	}
}

// WithClock overrides the time source used for comment timestamps
func WithClock(now func() time.Time) Option {
	return func(cfg *serviceConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithCommentAuthor overrides the author recorded on new comments
func WithCommentAuthor(author string) Option {
	return func(cfg *serviceConfig) {
		if author != "" {
			cfg.author = author
		}
	}
}
