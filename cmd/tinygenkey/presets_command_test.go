package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/razkarizaldi/tinygenkey/keys"
)

// TestPresetsCommand_List verifies the plain listing.
func TestPresetsCommand_List(t *testing.T) {
	var stdout bytes.Buffer

	err := presetsCommand(&stdout, nil)

	if err != nil {
		t.Fatalf("presetsCommand() returned an unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("presetsCommand() listed %d presets, want 8", len(lines))
	}
	if lines[0] != "alphanumeric" {
		t.Errorf("presetsCommand() first preset = %q, want %q", lines[0], "alphanumeric")
	}
}

// TestPresetsCommand_Verbose verifies that -v prints the alphabets.
func TestPresetsCommand_Verbose(t *testing.T) {
	var stdout bytes.Buffer

	err := presetsCommand(&stdout, []string{"-v"})

	if err != nil {
		t.Fatalf("presetsCommand() returned an unexpected error: %v", err)
	}
	got := stdout.String()
	if !strings.Contains(got, keys.HexAlphabet) {
		t.Errorf("presetsCommand() verbose output missing hex alphabet:\n%s", got)
	}
	if !strings.Contains(got, "safe") {
		t.Errorf("presetsCommand() verbose output missing preset tag:\n%s", got)
	}
}

// TestPresetsCommand_Failure_OutputWriteError tests failure on output
// write error.
func TestPresetsCommand_Failure_OutputWriteError(t *testing.T) {
	var failingStdout failingWriter

	err := presetsCommand(&failingStdout, nil)

	if err == nil {
		t.Fatal("presetsCommand() was expected to return an error, but did not")
	}
	if !errors.Is(err, ErrWriteOutput) {
		t.Errorf("presetsCommand() error = %v, want error wrapping %v", err, ErrWriteOutput)
	}
}
