// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Command kok-setup installs and configures kok, the natural language to shell
command tool.

# Overview

Run it from the kok checkout after building. It walks through:

  - checking that dist/kok-cli exists (and stopping if it does not)
  - optionally copying kok-cli to /usr/local/bin
  - choosing an AI provider and writing ~/.config/kok/config.json
  - optionally appending the kok, kok_stop and kok_status functions to
    the startup file of the detected shell

# Command Line Options

	--help, -h     Show help information
	--version, -v  Show version number

Anything else runs the interactive setup.

# Environment

	KOK_SETUP_FILE        TOML file with setup settings
	KOK_SETUP_WORKDIR     checkout containing dist/ (default: current directory)
	KOK_SETUP_INSTALL_DIR install directory (default: /usr/local/bin)
	KOK_SETUP_SUDO        auto, always or never
	KOK_SETUP_CONFIG_DIR  config directory (default: platform config dir)
	KOK_SETUP_DEBUG       log each step to stderr
	NO_COLOR, FORCE_COLOR color control

# Exit Codes

	0    setup finished, or the binary was not built yet
	1    unexpected failure
	130  interrupted at a prompt
*/
package main
