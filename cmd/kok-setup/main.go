// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/kok-setup/internal/cli"
	"github.com/jeranaias/kok-setup/internal/config"
	"github.com/jeranaias/kok-setup/internal/installer"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "--help" || arg == "-h" {
			printHelp()
			return
		}
		if arg == "--version" || arg == "-v" {
			fmt.Printf("kok-setup v%s\n", version)
			return
		}
	}

	os.Exit(run())
}

// printHelp shows usage information
func printHelp() {
	fmt.Println(`kok-setup v` + version + `

Usage: kok-setup [OPTIONS]

Options:
  --help, -h     Show this help
  --version, -v  Show version

Run from the kok checkout after building (bun run build). The setup asks
before installing the binary, overwriting an existing config or editing
your shell startup file.`)
}

func run() int {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Setup failed: "+err.Error()))
		return 1
	}

	logger, runID := cli.NewRunLogger(os.Stderr, os.Getenv("KOK_SETUP_DEBUG") != "")
	logger.Printf("RUN | id=%s version=%s", runID, version)

	tty := cli.DetectTerminal()
	prompt := cli.NewPrompter(os.Stdout, tty.Interactive)
	defer prompt.Close()

	setup := &cli.Setup{
		Settings: settings,
		Prompt:   prompt,
		Out:      os.Stdout,
		Runner:   installer.NewExecRunner(),
		Logger:   logger,
		ShellEnv: os.Getenv("SHELL"),
		Rich:     tty.Colors,
		Width:    tty.Width,
	}

	err = setup.Run(context.Background())
	switch {
	case err == nil, errors.Is(err, installer.ErrBinaryNotFound):
		return 0
	case errors.Is(err, cli.ErrAborted):
		return 130
	default:
		logger.Printf("RUN_FAILED | error=%v", err)
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Setup failed: "+err.Error()))
		return 1
	}
}
