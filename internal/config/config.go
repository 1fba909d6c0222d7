// Package config loads datefield CLI settings from defaults, an optional
// YAML file and DATEFIELD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName names the config directory and file.
	AppName = "datefield"
	// EnvPrefix prefixes environment overrides, e.g. DATEFIELD_GRAMMAR_DIR.
	EnvPrefix = "DATEFIELD"

	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrInvalidOutputFormat is returned for output formats other than text or json.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidLogLevel is returned for unknown log levels.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidSuggestLimit is returned when suggest.limit is not positive.
	ErrInvalidSuggestLimit = errors.New("invalid suggest limit")
	// ErrConfigNotFound is returned when an explicit config path does not exist.
	ErrConfigNotFound = errors.New("config file not found")
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config is the resolved CLI configuration.
type Config struct {
	// GrammarDir holds extra *.yaml grammar files to register as field types.
	GrammarDir string        `mapstructure:"grammar_dir"`
	Log        LogConfig     `mapstructure:"log"`
	Output     OutputConfig  `mapstructure:"output"`
	Suggest    SuggestConfig `mapstructure:"suggest"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type SuggestConfig struct {
	Limit int `mapstructure:"limit"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Log:     LogConfig{Level: "info"},
		Output:  OutputConfig{Format: FormatText},
		Suggest: SuggestConfig{Limit: 5},
	}
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	var errs []error
	if c.Output.Format != FormatText && c.Output.Format != FormatJSON {
		errs = append(errs, fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidOutputFormat, c.Output.Format, FormatText, FormatJSON))
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidLogLevel, c.Log.Level, strings.Join(logLevels, ", ")))
	}
	if c.Suggest.Limit <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidSuggestLimit, c.Suggest.Limit))
	}
	return errors.Join(errs...)
}

// LoadOptions controls where Load looks.
type LoadOptions struct {
	// ConfigFilePath, when set, is the only file read and must exist.
	ConfigFilePath string
	// SearchPaths are directories searched for datefield.yaml when
	// ConfigFilePath is empty. Defaults to "." and the user config dir.
	SearchPaths []string
}

// Load resolves configuration and returns it with the path of the file
// used, or "" when only defaults and environment applied. The result is not
// validated: callers apply their own overrides first, then call Validate.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("grammar_dir", defaults.GrammarDir)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("suggest.limit", defaults.Suggest.Limit)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ConfigFilePath)
		}
		v.SetConfigFile(opts.ConfigFilePath)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		paths := opts.SearchPaths
		if paths == nil {
			paths = defaultSearchPaths()
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
	}

	resolved := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("read config: %w", err)
		}
	} else {
		resolved = v.ConfigFileUsed()
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, resolved, fmt.Errorf("decode config: %w", err)
	}
	return cfg, resolved, nil
}

func defaultSearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, AppName))
	}
	return paths
}
