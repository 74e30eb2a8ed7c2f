package config

import (
	"time"

	"github.com/razkarizaldi/tinygenkey/keys"
)

// NewDefaultConfig creates a Config with sensible defaults: a bare
// alphanumeric 42-character key profile and conservative server timeouts.
func NewDefaultConfig() *Config {
	return &Config{
		Generator: Generator{
			Preset: string(keys.PresetAlphanumeric),
			Length: keys.DefaultLength,
			Count:  1,
		},
		Server: Server{
			Addr:                    ":8080",
			ReadTimeout:             Duration{Duration: 2 * time.Second},
			ReadHeaderTimeout:       Duration{Duration: 2 * time.Second},
			WriteTimeout:            Duration{Duration: 3 * time.Second},
			IdleTimeout:             Duration{Duration: 1 * time.Minute},
			ShutdownGracefulTimeout: Duration{Duration: 15 * time.Second},
		},
		Audit: Audit{
			Samples:  100000,
			Top:      10,
			TickSize: 1000,
			Workers:  4,
		},
	}
}
