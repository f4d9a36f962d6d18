// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for the setup flow.
//
// Colors follow https://no-color.org/: NO_COLOR wins, FORCE_COLOR turns
// colors on for non-TTY output, otherwise stdout must be a terminal.

package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	// DefaultTerminalWidth is the fallback width when detection fails
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the narrowest width the next-steps panel wraps to
	MinTerminalWidth = 40
)

// Terminal is a snapshot of the terminal the setup runs in.
type Terminal struct {
	// Interactive means both stdin and stdout are terminals, so liner can
	// edit lines and hide key entry.
	Interactive bool
	// Colors enables styling, the highlighted preview and the glamour panel.
	Colors bool
	Width  int
}

// DetectTerminal inspects stdin and stdout.
func DetectTerminal() Terminal {
	stdoutTTY := isTerminal(os.Stdout)
	return Terminal{
		Interactive: isTerminal(os.Stdin) && stdoutTTY,
		Colors:      ColorsEnabled(),
		Width:       terminalWidth(os.Stdout),
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func terminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	switch {
	case err != nil || width <= 0:
		return DefaultTerminalWidth
	case width < MinTerminalWidth:
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

var (
	colorsEnabled     bool
	colorsEnabledOnce sync.Once
)

// ColorsEnabled decides once per process whether stdout gets colors.
func ColorsEnabled() bool {
	colorsEnabledOnce.Do(func() {
		colorsEnabled = wantColors(os.Getenv, isTerminal(os.Stdout))
	})
	return colorsEnabled
}

func wantColors(getenv func(string) string, stdoutTTY bool) bool {
	if getenv("NO_COLOR") != "" {
		return false
	}
	if getenv("FORCE_COLOR") != "" {
		return true
	}
	return stdoutTTY
}

// ForceColorsEnabled overrides color detection. Tests only.
func ForceColorsEnabled(enabled bool) {
	colorsEnabledOnce = sync.Once{}
	colorsEnabledOnce.Do(func() {
		colorsEnabled = enabled
	})
}

// GetColorProfile returns Ascii when colors are off, otherwise whatever
// termenv detects for stdout.
func GetColorProfile() termenv.Profile {
	if !ColorsEnabled() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
