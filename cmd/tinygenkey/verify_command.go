package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/razkarizaldi/tinygenkey/keys"
)

type verifyOptions struct {
	preset   string
	alphabet string
	prefix   string
	suffix   string
	min      int
	max      int
}

func verifyFlags(opts *verifyOptions) *flag.FlagSet {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.StringVar(&opts.preset, "preset", "", "Preset alphabet the core must match")
	fs.StringVar(&opts.alphabet, "alphabet", "", "Literal alphabet the core must match (overrides -preset)")
	fs.StringVar(&opts.prefix, "prefix", "", "Prefix the key must carry")
	fs.StringVar(&opts.suffix, "suffix", "", "Suffix the key must carry")
	fs.IntVar(&opts.min, "min", -1, "Minimum core length (-1 disables)")
	fs.IntVar(&opts.max, "max", -1, "Maximum core length (-1 disables)")
	return fs
}

func printVerifyHelp(output io.Writer) {
	var opts verifyOptions
	help := CommandHelp{
		Usage:       "tinygenkey verify [options] <key> [key...]",
		Description: "Check keys against structural rules and print a JSON report per key.\nExit status is 1 when any key fails.",
		Options:     verifyFlags(&opts),
		Examples: []string{
			"tinygenkey verify -preset hex -min 16 deadbeefcafe1234",
			"tinygenkey verify -prefix sk_ -suffix _v1 sk_abc123_v1",
		},
	}
	help.Print(output)
}

func handleVerifyCommand(args []string) {
	err := verifyCommand(os.Stdout, args)
	if err == nil {
		return
	}
	if errors.Is(err, ErrKeyInvalid) {
		// Reports already printed; the exit status carries the verdict.
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func verifyCommand(stdout io.Writer, args []string) error {
	var opts verifyOptions
	fs := verifyFlags(&opts)
	fs.SetOutput(stdout)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	list := fs.Args()
	if len(list) == 0 {
		printVerifyHelp(stdout)
		return fmt.Errorf("%w: at least one key is required", ErrInvalidFlag)
	}

	// An explicitly passed empty -alphabet is a real constraint that
	// rejects every character, so presence matters, not just the value.
	var alphabetSet bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "alphabet" {
			alphabetSet = true
		}
	})

	var charset keys.Charset
	switch {
	case alphabetSet:
		charset = keys.CharsetLiteral(opts.alphabet)
	case opts.preset != "":
		charset = keys.CharsetPreset(keys.Preset(opts.preset))
	}

	params := keys.VerifyParams{
		Charset: charset,
		Prefix:  opts.prefix,
		Suffix:  opts.suffix,
	}
	if opts.min >= 0 {
		params.MinLength = &opts.min
	}
	if opts.max >= 0 {
		params.MaxLength = &opts.max
	}

	reports, err := keys.VerifyAll(list, params)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	allValid := true
	for _, report := range reports {
		if len(list) == 1 {
			report.KeyNumber = ""
		}
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !report.Valid {
			allValid = false
		}
	}
	if !allValid {
		return ErrKeyInvalid
	}
	return nil
}
