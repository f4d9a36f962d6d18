// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import (
	"path/filepath"
	"strings"
)

// =============================================================================
// SHELL DEFINITIONS
// =============================================================================

// Shell is the classification of the invoking shell.
type Shell int

const (
	// ShellUnknown is any shell not matched below.
	ShellUnknown Shell = iota
	// ShellZsh is zsh.
	ShellZsh
	// ShellBash is GNU bash.
	ShellBash
	// ShellFish is the friendly interactive shell.
	ShellFish
)

// String returns the label printed to the user.
func (s Shell) String() string {
	switch s {
	case ShellZsh:
		return "zsh"
	case ShellBash:
		return "bash"
	case ShellFish:
		return "fish"
	default:
		return "unknown"
	}
}

// matchOrder is the priority in which names are searched for in $SHELL.
var matchOrder = []Shell{ShellZsh, ShellBash, ShellFish}

// =============================================================================
// DETECTION
// =============================================================================

// Detect classifies a $SHELL value. The first name in matchOrder that occurs
// anywhere in the value wins.
func Detect(shellEnv string) Shell {
	for _, sh := range matchOrder {
		if strings.Contains(shellEnv, sh.String()) {
			return sh
		}
	}
	return ShellUnknown
}

// StartupFile returns the file shell integration is appended to.
func StartupFile(sh Shell, home string) string {
	switch sh {
	case ShellZsh:
		return filepath.Join(home, ".zshrc")
	case ShellBash:
		return filepath.Join(home, ".bashrc")
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "config.fish")
	default:
		return filepath.Join(home, ".profile")
	}
}
