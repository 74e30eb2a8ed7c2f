package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/razkarizaldi/tinygenkey/config"
	"github.com/razkarizaldi/tinygenkey/freq"
	"github.com/razkarizaldi/tinygenkey/keys"
)

type auditOptions struct {
	preset   string
	alphabet string
	samples  int
	top      int
	workers  int
}

func auditFlags(cfg *config.Config, opts *auditOptions) *flag.FlagSet {
	fs := flag.NewFlagSet("audit", flag.ContinueOnError)
	fs.StringVar(&opts.preset, "preset", cfg.Generator.Preset, "Preset alphabet to sample")
	fs.StringVar(&opts.alphabet, "alphabet", cfg.Generator.Alphabet, "Literal alphabet to sample (overrides -preset)")
	fs.IntVar(&opts.samples, "samples", cfg.Audit.Samples, "Number of symbols to draw")
	fs.IntVar(&opts.top, "top", cfg.Audit.Top, "How many of the most frequent symbols to list")
	fs.IntVar(&opts.workers, "workers", cfg.Audit.Workers, "Concurrent sampling workers")
	return fs
}

func printAuditHelp(output io.Writer) {
	var opts auditOptions
	help := CommandHelp{
		Usage:       "tinygenkey audit [options]",
		Description: "Draw a large sample from the secure selector and report per-symbol\nfrequencies. A correct selector shows every symbol close to 1/n;\nmodulo bias shows up as low-index symbols dominating the top list.",
		Options:     auditFlags(config.NewDefaultConfig(), &opts),
		Examples: []string{
			"tinygenkey audit -alphabet abcde -samples 100000",
			"tinygenkey audit -preset printable -top 20",
		},
	}
	help.Print(output)
}

func handleAuditCommand(cfg *config.Config, args []string) {
	if err := auditCommand(os.Stdout, newLogger(), cfg, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func auditCommand(stdout io.Writer, logger *slog.Logger, cfg *config.Config, args []string) error {
	var opts auditOptions
	fs := auditFlags(cfg, &opts)
	fs.SetOutput(stdout)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	alphabet := opts.alphabet
	if alphabet == "" {
		resolved, err := keys.Preset(opts.preset).Alphabet()
		if err != nil {
			return err
		}
		alphabet = resolved
	}

	syms := []rune(alphabet)
	n := len(syms)
	if n == 0 {
		return keys.ErrEmptyAlphabet
	}
	if opts.samples <= 0 {
		return fmt.Errorf("%w: samples must be positive", ErrInvalidFlag)
	}
	workers := opts.workers
	if workers < 1 {
		workers = 1
	}

	sketch := freq.New(opts.top, cfg.Audit.TickSize)
	logger.Info("sampling selector",
		"alphabet_size", n,
		"samples", opts.samples,
		"workers", workers,
		"sketch_bytes", sketch.SizeBytes(),
	)

	// Every worker keeps exact local counts; the shared sketch only backs
	// the most-frequent listing.
	results := make([]map[rune]int, workers)
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		share := opts.samples / workers
		if w == 0 {
			share += opts.samples % workers
		}
		g.Go(func() error {
			local := make(map[rune]int, n)
			for i := 0; i < share; i++ {
				r, err := keys.Choice(alphabet)
				if err != nil {
					return err
				}
				local[r]++
				sketch.Observe(string(r))
			}
			results[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	counts := make(map[rune]int, n)
	for _, local := range results {
		for r, c := range local {
			counts[r] += c
		}
	}

	expected := float64(opts.samples) / float64(n)
	var maxDev float64
	for _, r := range syms {
		dev := (float64(counts[r]) - expected) / expected * 100
		if dev < 0 {
			dev = -dev
		}
		if dev > maxDev {
			maxDev = dev
		}
	}

	fmt.Fprintf(stdout, "samples:          %d\n", opts.samples)
	fmt.Fprintf(stdout, "alphabet size:    %d\n", n)
	fmt.Fprintf(stdout, "distinct symbols: %d\n", len(counts))
	fmt.Fprintf(stdout, "expected/symbol:  %.1f\n", expected)
	fmt.Fprintf(stdout, "max deviation:    %.2f%%\n", maxDev)

	// Full per-symbol table only for small alphabets; large ones get the
	// sketch's top list below.
	if n <= 64 {
		fmt.Fprintln(stdout)
		for _, r := range syms {
			share := float64(counts[r]) / float64(opts.samples) * 100
			fmt.Fprintf(stdout, "  %q  %7d  %6.3f%%\n", r, counts[r], share)
		}
	}

	top := sketch.Top(opts.top)
	if len(top) > 0 {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "most frequent (sliding window):")
		for _, sc := range top {
			fmt.Fprintf(stdout, "  %q  %d\n", sc.Symbol, sc.Count)
		}
	}
	return nil
}
