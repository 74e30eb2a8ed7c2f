package config

import (
	"time"
)

// Config is the full application configuration, loadable from a TOML file.
// Every section has workable defaults; a missing file is not an error for
// the CLI, which falls back to NewDefaultConfig.
type Config struct {
	Generator Generator `toml:"generator"`
	Server    Server    `toml:"server"`
	Audit     Audit     `toml:"audit"`
}

// Generator is the default key profile used when flags or request fields
// do not override it. Alphabet, when set, wins over Preset.
type Generator struct {
	Preset   string `toml:"preset"`
	Alphabet string `toml:"alphabet"`
	Length   int    `toml:"length"`
	Prefix   string `toml:"prefix"`
	Suffix   string `toml:"suffix"`
	Count    int    `toml:"count"`
}

// Server configures the HTTP API.
type Server struct {
	Addr                    string   `toml:"addr"`
	ReadTimeout             Duration `toml:"read_timeout"`
	ReadHeaderTimeout       Duration `toml:"read_header_timeout"`
	WriteTimeout            Duration `toml:"write_timeout"`
	IdleTimeout             Duration `toml:"idle_timeout"`
	ShutdownGracefulTimeout Duration `toml:"shutdown_graceful_timeout"`
}

// Audit configures the symbol-frequency audit.
type Audit struct {
	Samples  int    `toml:"samples"`
	Top      int    `toml:"top"`
	TickSize uint64 `toml:"tick_size"`
	Workers  int    `toml:"workers"`
}

// Duration wraps time.Duration so TOML files can say "15s" or "2m".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler so configs round-trip.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
