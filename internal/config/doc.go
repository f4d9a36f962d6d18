// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides the settings the kok installer itself runs with.
//
// Every path and name the setup flow touches (the build output, the install
// directory, the user's home, the kok config directory) lives in a Settings
// value that is passed to each step, so tests can point the whole flow at a
// temporary directory.
//
// # Precedence
//
// Settings are resolved from (highest first):
//   - Environment variables (KOK_SETUP_*)
//   - A TOML file named by KOK_SETUP_FILE
//   - Built-in defaults
//
// # Config Directory
//
// The kok config directory follows the env-paths convention used by the
// kok-cli binary:
//
//	linux   $XDG_CONFIG_HOME/kok or ~/.config/kok
//	darwin  ~/Library/Preferences/kok
//	windows %APPDATA%\kok\Config
//
// # Usage
//
//	s, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	path := s.ConfigPath() // .../kok/config.json
package config
