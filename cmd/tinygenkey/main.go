package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	phuslog "github.com/phuslu/log"

	"github.com/razkarizaldi/tinygenkey/config"
)

// defaultLoggerOptions removes the time attribute so log lines stay
// stable across runs.
var defaultLoggerOptions = &slog.HandlerOptions{
	Level: slog.LevelInfo,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	},
}

// newLogger configures slog with phuslu/log's JSON handler.
func newLogger() *slog.Logger {
	return slog.New(phuslog.SlogNewJSONHandler(os.Stderr, defaultLoggerOptions))
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, output io.Writer) error {
	fs := flag.NewFlagSet("tinygenkey", flag.ContinueOnError)
	fs.SetOutput(output)

	// Global flags
	configPathFlag := fs.String("config", "", "Path to a TOML config file (optional; defaults apply without it)")

	fs.Usage = func() {
		help := CommandHelp{
			Usage:       "tinygenkey [global options] <command> [command-specific options]",
			Description: "Generate and verify random keys: API tokens, secrets, nonces.",
			Subcommands: []Subcommand{
				{"generate", "Generate one or more keys with custom parameters"},
				{"quick", "Generate a single key with the default profile"},
				{"verify", "Verify keys against structural rules and print a report"},
				{"presets", "List the built-in alphabets"},
				{"audit", "Sample the secure selector and report symbol frequencies"},
				{"serve", "Start the HTTP API"},
				{"help", "Show help for a specific command"},
			},
			GlobalOptions: fs,
			Examples: []string{
				"tinygenkey generate -preset hex -length 16 -prefix tok_",
				"tinygenkey verify -preset safe -prefix sk_ sk_N7wQf2...",
				"tinygenkey audit -alphabet abcde -samples 100000",
			},
		}
		help.Print(output)
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	cfg := config.NewDefaultConfig()
	if *configPathFlag != "" {
		loaded, err := config.Load(*configPathFlag)
		if err != nil {
			fmt.Fprintf(output, "Error: %v\n", err)
			return fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
		cfg = loaded
	}

	cmdArgs := fs.Args()
	if len(cmdArgs) < 1 {
		fs.Usage()
		return nil // Successfully show usage and exit.
	}

	command := cmdArgs[0]
	commandArgs := cmdArgs[1:]

	switch command {
	case "generate":
		handleGenerateCommand(cfg, commandArgs)
	case "quick":
		handleQuickCommand(cfg)
	case "verify":
		handleVerifyCommand(commandArgs)
	case "presets":
		handlePresetsCommand(commandArgs)
	case "audit":
		handleAuditCommand(cfg, commandArgs)
	case "serve":
		handleServeCommand(cfg)
	case "help":
		handleHelpCommand(commandArgs, fs.Usage)
	default:
		fs.Usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
	return nil
}
