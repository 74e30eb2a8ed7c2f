package main

import (
	"fmt"
	"io"
	"os"

	"github.com/razkarizaldi/tinygenkey/config"
	"github.com/razkarizaldi/tinygenkey/keys"
)

func printQuickHelp(output io.Writer) {
	help := CommandHelp{
		Usage:       "tinygenkey quick",
		Description: "Generate a single key from the configured generator profile.\nTakes no options; use generate for one-off overrides.",
		Examples: []string{
			"tinygenkey quick",
			"tinygenkey -config tinygenkey.toml quick",
		},
	}
	help.Print(output)
}

func handleQuickCommand(cfg *config.Config) {
	if err := quickCommand(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// quickCommand prints a single key from the configured profile with no
// further options.
func quickCommand(stdout io.Writer, cfg *config.Config) error {
	alphabet := cfg.Generator.Alphabet
	if alphabet == "" {
		resolved, err := keys.Preset(cfg.Generator.Preset).Alphabet()
		if err != nil {
			return err
		}
		alphabet = resolved
	}

	k, err := keys.Generate(alphabet, cfg.Generator.Length, cfg.Generator.Prefix, cfg.Generator.Suffix)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(stdout, k); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
