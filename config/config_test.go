package config

import (
	"os"
	"path/filepath"
	"testing"

	"seqlist/logger"
)

func write(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seqdemo.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, "log-level: warn\nformat: tree\nwhere: e.age > 20\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatTree || cfg.Where != "e.age > 20" {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.ExpensiveOver != 50 {
		t.Errorf("default expensive-over lost: %v", cfg.ExpensiveOver)
	}
	if opt := cfg.LoggerOptions(); opt.Level != logger.WarnLevel {
		t.Errorf("level = %v", opt.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"bad format", func(c *Config) { c.Format = "xml" }, true},
		{"fields", func(c *Config) { c.Format = "FIELDS" }, false},
		{"negative threshold", func(c *Config) { c.ExpensiveOver = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
