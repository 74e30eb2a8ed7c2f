package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/razkarizaldi/tinygenkey/keys"
)

func Validate(cfg *Config) error {
	if err := validateGenerator(&cfg.Generator); err != nil {
		return fmt.Errorf("generator config validation failed: %w", err)
	}
	if err := validateServer(&cfg.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	if err := validateAudit(&cfg.Audit); err != nil {
		return fmt.Errorf("audit config validation failed: %w", err)
	}
	return nil
}

func validateGenerator(gen *Generator) error {
	if gen.Length < 0 {
		return fmt.Errorf("length cannot be negative, got %d", gen.Length)
	}
	if gen.Count < 0 {
		return fmt.Errorf("count cannot be negative, got %d", gen.Count)
	}
	// A literal alphabet overrides the preset, so only an actually-used
	// preset has to resolve.
	if gen.Alphabet == "" && gen.Preset != "" {
		if _, err := keys.Preset(gen.Preset).Alphabet(); err != nil {
			return err
		}
	}
	return nil
}

// validateServer checks the Server configuration section. It ensures Addr
// contains a valid host:port or :port form; a bare ":port" gets the host
// defaulted to "localhost".
func validateServer(server *Server) error {
	if server.Addr == "" {
		return fmt.Errorf("server address (Addr) cannot be empty")
	}

	host, port, err := net.SplitHostPort(server.Addr)
	if err != nil {
		if strings.HasPrefix(server.Addr, ":") {
			port = strings.TrimPrefix(server.Addr, ":")
			host = "localhost"
		} else {
			return fmt.Errorf("invalid server address format '%s': %w", server.Addr, err)
		}
	}

	if port == "" {
		return fmt.Errorf("server address '%s' must include a port", server.Addr)
	}

	server.Addr = net.JoinHostPort(host, port)

	if _, err := net.LookupPort("tcp", port); err != nil {
		return fmt.Errorf("invalid port '%s' in server address '%s': %w", port, server.Addr, err)
	}

	return nil
}

func validateAudit(audit *Audit) error {
	if audit.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", audit.Samples)
	}
	if audit.Top <= 0 {
		return fmt.Errorf("top must be positive, got %d", audit.Top)
	}
	if audit.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", audit.Workers)
	}
	return nil
}
