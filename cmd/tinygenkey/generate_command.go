package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/razkarizaldi/tinygenkey/config"
	"github.com/razkarizaldi/tinygenkey/keys"
)

type generateOptions struct {
	preset   string
	alphabet string
	prefix   string
	suffix   string
	sep      string
	length   int
	count    int
	group    int
}

func generateFlags(cfg *config.Config, opts *generateOptions) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.StringVar(&opts.preset, "preset", cfg.Generator.Preset, "Preset alphabet to draw from")
	fs.StringVar(&opts.alphabet, "alphabet", cfg.Generator.Alphabet, "Literal alphabet (overrides -preset)")
	fs.IntVar(&opts.length, "length", cfg.Generator.Length, "Core length in characters")
	fs.StringVar(&opts.prefix, "prefix", cfg.Generator.Prefix, "Literal prefix for every key")
	fs.StringVar(&opts.suffix, "suffix", cfg.Generator.Suffix, "Literal suffix for every key")
	fs.IntVar(&opts.count, "count", cfg.Generator.Count, "Number of keys to generate")
	fs.IntVar(&opts.group, "group", 0, "Display keys in groups of this many characters (0 disables)")
	fs.StringVar(&opts.sep, "sep", "-", "Group separator used with -group")
	return fs
}

func printGenerateHelp(output io.Writer) {
	var opts generateOptions
	help := CommandHelp{
		Usage:       "tinygenkey generate [options]",
		Description: "Generate one or more keys of the form prefix + core + suffix,\nwith the core drawn from a preset or literal alphabet.",
		Options:     generateFlags(config.NewDefaultConfig(), &opts),
		Examples: []string{
			"tinygenkey generate -preset hex -length 16",
			"tinygenkey generate -alphabet 01 -length 64 -count 5",
			"tinygenkey generate -length 16 -group 4 -sep -",
		},
	}
	help.Print(output)
}

// handleGenerateCommand is the command-level wrapper. It executes the core
// logic and handles exiting the process on error.
func handleGenerateCommand(cfg *config.Config, args []string) {
	if err := generateCommand(os.Stdout, cfg, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// generateCommand contains the testable core logic.
func generateCommand(stdout io.Writer, cfg *config.Config, args []string) error {
	var opts generateOptions
	fs := generateFlags(cfg, &opts)
	fs.SetOutput(stdout)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	if opts.length < 0 || opts.count < 0 {
		return fmt.Errorf("%w: length and count must not be negative", ErrInvalidFlag)
	}

	alphabet := opts.alphabet
	if alphabet == "" {
		resolved, err := keys.Preset(opts.preset).Alphabet()
		if err != nil {
			return err
		}
		alphabet = resolved
	}

	list, err := keys.GenerateMany(opts.count, alphabet, opts.length, opts.prefix, opts.suffix)
	if err != nil {
		return err
	}

	for _, k := range list {
		if opts.group > 0 {
			k = keys.FormatGroups(k, opts.group, opts.sep)
		}
		if _, err := fmt.Fprintln(stdout, k); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	return nil
}
