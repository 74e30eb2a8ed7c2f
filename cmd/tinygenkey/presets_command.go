package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/razkarizaldi/tinygenkey/keys"
)

func printPresetsHelp(output io.Writer) {
	help := CommandHelp{
		Usage:       "tinygenkey presets [options]",
		Description: "List the built-in preset alphabets.",
		Examples: []string{
			"tinygenkey presets",
			"tinygenkey presets -v",
		},
	}
	help.Print(output)
}

func handlePresetsCommand(args []string) {
	if err := presetsCommand(os.Stdout, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func presetsCommand(stdout io.Writer, args []string) error {
	fs := flag.NewFlagSet("presets", flag.ContinueOnError)
	fs.SetOutput(stdout)
	verbose := fs.Bool("v", false, "Also print each preset's alphabet")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	for _, p := range keys.Presets() {
		if *verbose {
			alphabet, err := p.Alphabet()
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(stdout, "%-14s %s\n", p, alphabet); err != nil {
				return fmt.Errorf("%w: %v", ErrWriteOutput, err)
			}
			continue
		}
		if _, err := fmt.Fprintln(stdout, p); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	return nil
}
