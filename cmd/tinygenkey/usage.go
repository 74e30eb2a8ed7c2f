package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"strings"
)

// CommandHelp represents the information needed to generate help output.
type CommandHelp struct {
	Usage         string
	Description   string
	Subcommands   []Subcommand
	Options       *flag.FlagSet
	GlobalOptions *flag.FlagSet
	Examples      []string
}

// Subcommand defines a subcommand for the help output.
type Subcommand struct {
	Name        string
	Description string
}

// Print formats and prints the help to the specified writer.
func (h *CommandHelp) Print(writer io.Writer) {
	sections := 0
	separator := func() {
		if sections > 0 {
			fmt.Fprintln(writer)
		}
		sections++
	}

	// printFlags prints an indented flag set.
	printFlags := func(fs *flag.FlagSet) {
		var buf bytes.Buffer
		fs.SetOutput(&buf)
		fs.PrintDefaults()

		scanner := bufio.NewScanner(&buf)
		for scanner.Scan() {
			fmt.Fprintf(writer, "  %s\n", scanner.Text())
		}
	}

	if h.Usage != "" {
		separator()
		fmt.Fprintln(writer, "Usage:")
		fmt.Fprintf(writer, "  %s\n", h.Usage)
	}

	if h.Description != "" {
		separator()
		fmt.Fprintln(writer, "Description:")
		scanner := bufio.NewScanner(strings.NewReader(h.Description))
		for scanner.Scan() {
			fmt.Fprintf(writer, "  %s\n", scanner.Text())
		}
	}

	if len(h.Subcommands) > 0 {
		separator()
		fmt.Fprintln(writer, "Subcommands:")
		width := 0
		for _, sc := range h.Subcommands {
			if len(sc.Name) > width {
				width = len(sc.Name)
			}
		}
		for _, sc := range h.Subcommands {
			fmt.Fprintf(writer, "  %-*s  %s\n", width, sc.Name, sc.Description)
		}
	}

	if h.Options != nil {
		separator()
		fmt.Fprintln(writer, "Options:")
		printFlags(h.Options)
	}

	if h.GlobalOptions != nil {
		separator()
		fmt.Fprintln(writer, "Global options:")
		printFlags(h.GlobalOptions)
	}

	if len(h.Examples) > 0 {
		separator()
		fmt.Fprintln(writer, "Examples:")
		for _, ex := range h.Examples {
			fmt.Fprintf(writer, "  %s\n", ex)
		}
	}
}
