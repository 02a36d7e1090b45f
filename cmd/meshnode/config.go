package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/meshnode/meshnode-go/pkg/scan"
)

// Settings backends.
const (
	SettingsMemory = "memory"
	SettingsFile   = "file"
	SettingsSQLite = "sqlite"
)

// Reset modes.
const (
	ResetSimulate = "simulate"
	ResetReexec   = "reexec"
)

// Config holds the node configuration. Values come from an optional YAML
// file; flags given on the command line override them.
type Config struct {
	ConfigFile   string        `yaml:"-"`
	StateDir     string        `yaml:"state_dir"`
	Settings     string        `yaml:"settings"`
	LogLevel     string        `yaml:"log_level"`
	Trace        string        `yaml:"trace"`
	AutoStart    bool          `yaml:"auto_start"`
	Interactive  bool          `yaml:"interactive"`
	Interface    string        `yaml:"interface"`
	ScanDuration time.Duration `yaml:"scan_duration"`
	ResetMode    string        `yaml:"reset_mode"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		StateDir:     ".",
		Settings:     SettingsFile,
		LogLevel:     "info",
		Interactive:  true,
		ScanDuration: scan.DefaultActiveScanDuration,
		ResetMode:    ResetSimulate,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Settings {
	case SettingsMemory, SettingsFile, SettingsSQLite:
	default:
		return fmt.Errorf("unknown settings backend: %s (use memory, file, sqlite)", c.Settings)
	}
	switch c.ResetMode {
	case ResetSimulate, ResetReexec:
	default:
		return fmt.Errorf("unknown reset mode: %s (use simulate, reexec)", c.ResetMode)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.ScanDuration <= 0 {
		return fmt.Errorf("scan duration must be positive, got %s", c.ScanDuration)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// parseConfig builds the configuration from defaults, the YAML file named
// by -config and the remaining flags, in increasing precedence.
func parseConfig(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("meshnode", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var flags Config
	fs.StringVar(&flags.ConfigFile, "config", "", "Configuration file path (YAML)")
	fs.StringVar(&flags.StateDir, "state-dir", ".", "Directory for persistent settings")
	fs.StringVar(&flags.Settings, "settings", SettingsFile, "Settings backend: memory, file, sqlite")
	fs.StringVar(&flags.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&flags.Trace, "trace", "", "Write a CBOR event trace to this file")
	fs.BoolVar(&flags.AutoStart, "auto-start", false, "Bring up the interface and protocol at start")
	fs.BoolVar(&flags.Interactive, "interactive", true, "Run the interactive shell")
	fs.StringVar(&flags.Interface, "interface", "", "Network interface for mDNS scans (default: all)")
	fs.DurationVar(&flags.ScanDuration, "scan-duration", scan.DefaultActiveScanDuration, "Active scan duration")
	fs.StringVar(&flags.ResetMode, "reset-mode", ResetSimulate, "Platform reset: simulate (re-init in process) or reexec")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if flags.ConfigFile != "" {
		if err := loadConfigFile(flags.ConfigFile, &cfg); err != nil {
			return Config{}, err
		}
		cfg.ConfigFile = flags.ConfigFile
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "state-dir":
			cfg.StateDir = flags.StateDir
		case "settings":
			cfg.Settings = flags.Settings
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "trace":
			cfg.Trace = flags.Trace
		case "auto-start":
			cfg.AutoStart = flags.AutoStart
		case "interactive":
			cfg.Interactive = flags.Interactive
		case "interface":
			cfg.Interface = flags.Interface
		case "scan-duration":
			cfg.ScanDuration = flags.ScanDuration
		case "reset-mode":
			cfg.ResetMode = flags.ResetMode
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
