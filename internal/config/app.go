package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

// Location selects which screen the picker runs
type Location string

const (
	LocationField  Location = "field"
	LocationConfig Location = "config"
)

// AppConfig holds process-level settings, read from FAPICKER_* variables and then flags
type AppConfig struct {
	Location  Location `env:"LOCATION" envDefault:"field"`
	StateDir  string   `env:"STATE_DIR"`
	FieldID   string   `env:"FIELD_ID" envDefault:"icon"`
	IconsPath string   `env:"ICONS_PATH"`
	LogFile   string   `env:"LOG_FILE" envDefault:"fapicker.log"`
	LogLevel  string   `env:"LOG_LEVEL" envDefault:"info"`
	Ephemeral bool     `env:"EPHEMERAL"`
	E2E       bool     `env:"E2E_TEST"`
}

// LoadAppConfig parses the environment and then args; flags win over variables
func LoadAppConfig(args []string) (*AppConfig, error) {
	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "FAPICKER_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	flags := pflag.NewFlagSet("fapicker", pflag.ContinueOnError)
	flags.StringVarP(&cfg.StateDir, "state-dir", "d", cfg.StateDir, "directory holding installation.toml and entry.toml")
	flags.StringVarP(&cfg.FieldID, "field", "f", cfg.FieldID, "id of the entry field edited by the field screen")
	flags.StringVar(&cfg.IconsPath, "icons", cfg.IconsPath, "load icon metadata from this YAML file instead of the built-in table")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file path")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.BoolVar(&cfg.Ephemeral, "ephemeral", cfg.Ephemeral, "keep host state in memory only")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: fapicker [field|config] [flags]\n\n")
		fmt.Fprintf(flags.Output(), "Runs the Font Awesome icon picker field editor or its configuration screen.\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if flags.NArg() > 0 {
		cfg.Location = Location(flags.Arg(0))
	}
	switch cfg.Location {
	case LocationField, LocationConfig:
	default:
		return nil, fmt.Errorf("unknown location %q (want %q or %q)", cfg.Location, LocationField, LocationConfig)
	}

	if cfg.StateDir == "" {
		dir, err := defaultStateDir()
		if err != nil {
			return nil, err
		}
		cfg.StateDir = dir
	}
	abs, err := filepath.Abs(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("resolve state dir: %w", err)
	}
	cfg.StateDir = abs

	return &cfg, nil
}

func defaultStateDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("locate config dir: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "fapicker"), nil
}
