package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/paths"
	"github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/user"
)

// GlobalOptions holds the values of the root persistent flags
type GlobalOptions struct {
	ConfigDir string
	DataDir   string
	Backend   string
	JSON      bool
	Quiet     bool
}

// CLI represents the CLI application context
type CLI struct {
	App     *app.App // Application container with services
	Config  *config.Config
	DataDir string
	owned   bool // App was built by NewCLI and is closed by Close
}

// NewCLI resolves configuration and directories, sets up logging, opens the
// snapshot store and restores the board.
func NewCLI(ctx context.Context, opts GlobalOptions) (*CLI, error) {
	configDir, err := paths.ResolveConfigDir(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config dir: %w", err)
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Backend != "" {
		cfg.Backend = opts.Backend
	}

	dataDir, err := paths.ResolveDataDir(opts.DataDir, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data dir: %w", err)
	}

	if err := logging.Init(dataDir, cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	store, err := database.Open(ctx, cfg.Backend, dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open board store: %w", err)
	}

	application, err := app.New(ctx, store,
		app.WithLogger(slog.Default()),
		app.WithStrictLoad(cfg.StrictLoad),
		app.WithServiceOptions(board.WithCommentAuthor(user.ResolveAuthor(cfg.CommentAuthor))))
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	slog.Debug("cli initialized",
		"config_dir", configDir,
		"data_dir", dataDir,
		"backend", cfg.Backend)

	return &CLI{
		App:     application,
		Config:  cfg,
		DataDir: dataDir,
		owned:   true,
	}, nil
}

// NewCLIFromApp wraps an existing application; Close leaves it open
func NewCLIFromApp(a *app.App, cfg *config.Config) *CLI {
	if cfg == nil {
		cfg = config.Default()
	}
	return &CLI{App: a, Config: cfg}
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// AddGlobalFlags registers the persistent flags shared by every command
func AddGlobalFlags(cmd *cobra.Command, opts *GlobalOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	flags.StringVar(&opts.DataDir, "data-dir", "", "data directory holding the board snapshot and logs")
	flags.StringVar(&opts.Backend, "backend", "", "snapshot backend: json or sqlite (overrides config)")

	// Agent-friendly flags
	flags.BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	flags.BoolVar(&opts.Quiet, "quiet", false, "Minimal output (ID only)")
}
