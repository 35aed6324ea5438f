package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/thenoetrevino/tablero/internal/config/colors"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file inside the config directory
	FileName = "config.yaml"

	configName = "config"
	configType = "yaml"

	// EnvPrefix prefixes environment overrides (TABLERO_BACKEND, ...)
	EnvPrefix = "TABLERO"

	// EnvThemeFile names a YAML file whose theme section is merged over the config
	EnvThemeFile = "TABLERO_THEME_FILE"

	keyBackend    = "backend"
	keyDataDir    = "data_dir"
	keyLogLevel   = "log_level"
	keyStrictLoad = "strict_load"
	keyAuthor     = "comment_author"
	keyTheme      = "theme"

	defaultBackend  = "json"
	defaultLogLevel = "info"
)

// ErrInvalidConfig is returned when a config value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	// Backend selects the snapshot store: "json" or "sqlite"
	Backend string `yaml:"backend" mapstructure:"backend"`

	// DataDir overrides the platform data directory when set
	DataDir string `yaml:"data_dir,omitempty" mapstructure:"data_dir"`

	LogLevel string `yaml:"log_level" mapstructure:"log_level"`

	// StrictLoad makes an unreadable or malformed snapshot a startup error
	// instead of falling back to the default board
	StrictLoad bool `yaml:"strict_load" mapstructure:"strict_load"`

	// CommentAuthor is recorded on new comments; "$USER" means the login name
	CommentAuthor string `yaml:"comment_author,omitempty" mapstructure:"comment_author"`

	ColorScheme colors.ColorScheme `yaml:"theme" mapstructure:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Backend:     defaultBackend,
		LogLevel:    defaultLogLevel,
		ColorScheme: DefaultColorScheme(),
	}
}

// Load reads config.yaml from configDir, writing a default file on first run.
// Environment variables TABLERO_BACKEND, TABLERO_LOG_LEVEL,
// TABLERO_STRICT_LOAD and TABLERO_COMMENT_AUTHOR override file values.
func Load(configDir string) (*Config, error) {
	if err := ensureDefaultFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(keyBackend, defaultBackend)
	v.SetDefault(keyDataDir, "")
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyStrictLoad, false)
	v.SetDefault(keyAuthor, "")
	v.SetDefault(keyTheme+".preset", "")
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(configDir)

	// data_dir has its own env precedence, handled by paths.ResolveDataDir
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{keyBackend, keyLogLevel, keyStrictLoad, keyAuthor} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	loadThemeFile(&cfg)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	switch c.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("%w: backend %q (want json or sqlite)", ErrInvalidConfig, c.Backend)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Save writes the config to configDir/config.yaml
func (c *Config) Save(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, FileName), data, 0o644)
}

// ensureDefaultFile creates a default config.yaml if none exists
func ensureDefaultFile(configDir string) error {
	path := filepath.Join(configDir, FileName)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return Default().Save(configDir)
}

// loadThemeFile merges the theme from TABLERO_THEME_FILE when it is set and readable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Backend == "" {
		c.Backend = defaultBackend
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.ColorScheme.ApplyDefaults()
}
