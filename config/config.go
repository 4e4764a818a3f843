package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"seqlist/logger"
	"seqlist/model"
)

const (
	FormatBracket = "bracket"
	FormatTree    = "tree"
	FormatFields  = "fields"
)

// Config drives cmd/seqdemo. Empty Data means the built-in fixtures; empty
// Where/Apply mean the Go predicates and mutators from package model.
type Config struct {
	LogLevel      string  `yaml:"log-level,omitempty"`
	LogDir        string  `yaml:"log-dir,omitempty"`
	LogStdout     bool    `yaml:"log-stdout,omitempty"`
	Format        string  `yaml:"format,omitempty"`
	Data          string  `yaml:"data,omitempty"`
	Where         string  `yaml:"where,omitempty"`
	Apply         string  `yaml:"apply,omitempty"`
	ExpensiveOver float64 `yaml:"expensive-over,omitempty"`
}

func Default() *Config {
	return &Config{
		LogLevel:      logger.INFO,
		Format:        FormatBracket,
		ExpensiveOver: model.DefaultExpensiveOver,
	}
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case FormatBracket, FormatTree, FormatFields:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.ExpensiveOver < 0 {
		return fmt.Errorf("expensive-over must not be negative, got %v", c.ExpensiveOver)
	}
	return nil
}

// LoggerOptions maps the log settings onto logger.Options.
func (c *Config) LoggerOptions() logger.Options {
	lvl, _ := logger.ParseLevel(c.LogLevel)
	return logger.Options{
		Dir:    c.LogDir,
		Level:  lvl,
		Stdout: c.LogStdout,
	}
}
