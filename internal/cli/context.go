package cli

import (
	"context"
	"errors"
)

// ErrNoCLI is returned when a command runs without an initialized CLI in its context
var ErrNoCLI = errors.New("cli not initialized")

type cliKey struct{}

// WithCLI returns a context carrying the CLI instance
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
