// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package detect classifies the user's login shell and locates its startup file.
//
// Detection is a substring match on $SHELL in a fixed priority order
// (zsh, bash, fish). Anything else is ShellUnknown, which maps to ~/.profile.
// There are no error conditions.
//
// # Usage
//
//	sh := detect.Detect(os.Getenv("SHELL"))
//	rc := detect.StartupFile(sh, home) // e.g. /home/u/.zshrc
package detect
