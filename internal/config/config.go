package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all passpredict configuration.
type Config struct {
	// ModelPath is the fixed local path of the classifier artifact.
	ModelPath string `yaml:"model_path"`

	// ReportDir is where the terminal UI saves reports.
	ReportDir string `yaml:"report_dir"`

	// Addr is the listen address of the web UI.
	Addr string `yaml:"addr"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
	File   string `yaml:"file"`   // empty: stderr (or nowhere for the TUI)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ModelPath: "ML_MODEL/knn_model.json",
		ReportDir: ".",
		Addr:      ":8501",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// PathFromEnv returns the config file named by PASSPREDICT_CONFIG.
func PathFromEnv() string {
	return os.Getenv("PASSPREDICT_CONFIG")
}

// FromEnv returns the defaults overridden by PASSPREDICT_* variables.
func FromEnv() Config {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// Load builds a Config from defaults, then the optional YAML file at path,
// then PASSPREDICT_* environment variables.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		cfg, err = LoadFile(path, cfg)
		if err != nil {
			return Config{}, err
		}
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// LoadFile overlays the YAML document at path on base. Keys absent from the
// file keep their base values.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any PASSPREDICT_* variables that are set.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("PASSPREDICT_MODEL"); v != "" {
		cfg.ModelPath = v
	}
	if v := os.Getenv("PASSPREDICT_REPORT_DIR"); v != "" {
		cfg.ReportDir = v
	}
	if v := os.Getenv("PASSPREDICT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PASSPREDICT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PASSPREDICT_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("PASSPREDICT_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// Validate checks the values that cannot be defaulted.
func (c Config) Validate() error {
	if c.ModelPath == "" {
		return errors.New("model path is required")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.Log.Format)
	}
	return nil
}
