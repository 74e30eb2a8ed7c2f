package main

import (
	"fmt"
	"os"
)

func handleHelpCommand(args []string, rootUsage func()) {
	if len(args) < 1 {
		rootUsage()
		return
	}

	switch args[0] {
	case "generate":
		printGenerateHelp(os.Stdout)
	case "quick":
		printQuickHelp(os.Stdout)
	case "verify":
		printVerifyHelp(os.Stdout)
	case "presets":
		printPresetsHelp(os.Stdout)
	case "audit":
		printAuditHelp(os.Stdout)
	case "serve":
		printServeHelp(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v: %s\n", ErrUnknownCommand, args[0])
		rootUsage()
		os.Exit(1)
	}
}
