package main

import (
	"fmt"
	"io"
	"os"

	"github.com/razkarizaldi/tinygenkey/config"
	"github.com/razkarizaldi/tinygenkey/server"
)

func printServeHelp(output io.Writer) {
	help := CommandHelp{
		Usage:       "tinygenkey serve",
		Description: "Start the HTTP API. Listens on the configured address and serves\nkey generation, verification and preset listing endpoints until\ninterrupted.",
		Examples: []string{
			"tinygenkey serve",
			"tinygenkey -config tinygenkey.toml serve",
		},
	}
	help.Print(output)
}

func handleServeCommand(cfg *config.Config) {
	logger := newLogger()
	app := server.NewApp(cfg, logger)
	srv := server.NewServer(cfg.Server, server.NewHandler(app), logger)
	if err := srv.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
