package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/razkarizaldi/tinygenkey/config"
	"github.com/razkarizaldi/tinygenkey/keys"
)

// TestGenerateCommand_SingleSymbolAlphabet pins the output for a
// deterministic alphabet.
func TestGenerateCommand_SingleSymbolAlphabet(t *testing.T) {
	var stdout bytes.Buffer

	err := generateCommand(&stdout, config.NewDefaultConfig(), []string{"-alphabet", "x", "-length", "5", "-prefix", "pre_", "-suffix", "_end"})

	if err != nil {
		t.Fatalf("generateCommand() returned an unexpected error: %v", err)
	}
	if got := stdout.String(); got != "pre_xxxxx_end\n" {
		t.Errorf("generateCommand() output = %q, want %q", got, "pre_xxxxx_end\n")
	}
}

// TestGenerateCommand_Defaults verifies the config profile applies when no
// flags are given.
func TestGenerateCommand_Defaults(t *testing.T) {
	var stdout bytes.Buffer

	err := generateCommand(&stdout, config.NewDefaultConfig(), nil)

	if err != nil {
		t.Fatalf("generateCommand() returned an unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("generateCommand() produced %d keys, want 1", len(lines))
	}
	if got := len(lines[0]); got != keys.DefaultLength {
		t.Errorf("generateCommand() key length = %d, want %d", got, keys.DefaultLength)
	}
	for _, r := range lines[0] {
		if !strings.ContainsRune(keys.AlphanumericAlphabet, r) {
			t.Errorf("generateCommand() key contains %q, not in default alphabet", r)
		}
	}
}

// TestGenerateCommand_Count verifies one line per requested key.
func TestGenerateCommand_Count(t *testing.T) {
	var stdout bytes.Buffer

	err := generateCommand(&stdout, config.NewDefaultConfig(), []string{"-preset", "hex", "-length", "8", "-count", "4"})

	if err != nil {
		t.Fatalf("generateCommand() returned an unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("generateCommand() produced %d keys, want 4", len(lines))
	}
	for _, line := range lines {
		if len(line) != 8 {
			t.Errorf("generateCommand() key %q length = %d, want 8", line, len(line))
		}
	}
}

// TestGenerateCommand_Grouped verifies display grouping.
func TestGenerateCommand_Grouped(t *testing.T) {
	var stdout bytes.Buffer

	err := generateCommand(&stdout, config.NewDefaultConfig(), []string{"-alphabet", "a", "-length", "8", "-group", "4", "-sep", "-"})

	if err != nil {
		t.Fatalf("generateCommand() returned an unexpected error: %v", err)
	}
	if got := stdout.String(); got != "aaaa-aaaa\n" {
		t.Errorf("generateCommand() output = %q, want %q", got, "aaaa-aaaa\n")
	}
}

// TestGenerateCommand_Failure_UnknownPreset tests preset resolution errors.
func TestGenerateCommand_Failure_UnknownPreset(t *testing.T) {
	var stdout bytes.Buffer

	err := generateCommand(&stdout, config.NewDefaultConfig(), []string{"-preset", "klingon"})

	if err == nil {
		t.Fatal("generateCommand() was expected to return an error, but did not")
	}
	if !errors.Is(err, keys.ErrUnknownPreset) {
		t.Errorf("generateCommand() error = %v, want error wrapping %v", err, keys.ErrUnknownPreset)
	}
}

// TestGenerateCommand_Failure_NegativeLength tests flag validation.
func TestGenerateCommand_Failure_NegativeLength(t *testing.T) {
	var stdout bytes.Buffer

	err := generateCommand(&stdout, config.NewDefaultConfig(), []string{"-length", "-3"})

	if err == nil {
		t.Fatal("generateCommand() was expected to return an error, but did not")
	}
	if !errors.Is(err, ErrInvalidFlag) {
		t.Errorf("generateCommand() error = %v, want error wrapping %v", err, ErrInvalidFlag)
	}
}

// TestGenerateCommand_Failure_EmptyAlphabet tests an explicitly empty
// alphabet with a nonzero length.
func TestGenerateCommand_Failure_EmptyAlphabet(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Generator.Alphabet = ""
	cfg.Generator.Preset = ""
	var stdout bytes.Buffer

	err := generateCommand(&stdout, cfg, []string{"-length", "4"})

	if err == nil {
		t.Fatal("generateCommand() was expected to return an error, but did not")
	}
	if !errors.Is(err, keys.ErrUnknownPreset) {
		t.Errorf("generateCommand() error = %v, want error wrapping %v", err, keys.ErrUnknownPreset)
	}
}

// TestGenerateCommand_Failure_OutputWriteError tests failure on output
// write error.
func TestGenerateCommand_Failure_OutputWriteError(t *testing.T) {
	var failingStdout failingWriter

	err := generateCommand(&failingStdout, config.NewDefaultConfig(), []string{"-alphabet", "x", "-length", "2"})

	if err == nil {
		t.Fatal("generateCommand() was expected to return an error, but did not")
	}
	if !errors.Is(err, ErrWriteOutput) {
		t.Errorf("generateCommand() error = %v, want error wrapping %v", err, ErrWriteOutput)
	}
}
