package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Generator.Preset != "alphanumeric" {
		t.Errorf("default preset = %q, want alphanumeric", cfg.Generator.Preset)
	}
	if cfg.Generator.Length != 42 {
		t.Errorf("default length = %d, want 42", cfg.Generator.Length)
	}
	if cfg.Generator.Count != 1 {
		t.Errorf("default count = %d, want 1", cfg.Generator.Count)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	content := `
[generator]
preset = "hex"
length = 16
prefix = "tok_"

[server]
addr = ":9090"
read_timeout = "5s"

[audit]
samples = 5000
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Generator.Preset != "hex" || cfg.Generator.Length != 16 || cfg.Generator.Prefix != "tok_" {
		t.Errorf("Load() generator = %+v, want hex/16/tok_", cfg.Generator)
	}
	if cfg.Server.Addr != "localhost:9090" {
		t.Errorf("Load() addr = %q, want localhost:9090 (normalized)", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("Load() read_timeout = %v, want 5s", cfg.Server.ReadTimeout.Duration)
	}
	// Untouched sections keep defaults.
	if cfg.Server.WriteTimeout.Duration != 3*time.Second {
		t.Errorf("Load() write_timeout = %v, want default 3s", cfg.Server.WriteTimeout.Duration)
	}
	if cfg.Audit.Samples != 5000 {
		t.Errorf("Load() audit samples = %d, want 5000", cfg.Audit.Samples)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() of a missing file should error")
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}, wantErr: false},
		{name: "negative length", mutate: func(c *Config) { c.Generator.Length = -1 }, wantErr: true},
		{name: "negative count", mutate: func(c *Config) { c.Generator.Count = -2 }, wantErr: true},
		{name: "unknown preset", mutate: func(c *Config) { c.Generator.Preset = "bogus" }, wantErr: true},
		{name: "literal alphabet beats preset", mutate: func(c *Config) {
			c.Generator.Preset = "bogus"
			c.Generator.Alphabet = "abc"
		}, wantErr: false},
		{name: "empty addr", mutate: func(c *Config) { c.Server.Addr = "" }, wantErr: true},
		{name: "bad port", mutate: func(c *Config) { c.Server.Addr = ":notaport" }, wantErr: true},
		{name: "zero samples", mutate: func(c *Config) { c.Audit.Samples = 0 }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			err := Validate(cfg)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
