// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package detect

import (
	"path/filepath"
	"strings"
	"testing"
)

// =============================================================================
// SHELL TYPE TESTS
// =============================================================================

func TestShell_String(t *testing.T) {
	tests := []struct {
		shell Shell
		want  string
	}{
		{ShellZsh, "zsh"},
		{ShellBash, "bash"},
		{ShellFish, "fish"},
		{ShellUnknown, "unknown"},
		{Shell(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.shell.String(); got != tc.want {
			t.Errorf("Shell(%d).String() = %q, want %q", tc.shell, got, tc.want)
		}
	}
}

// =============================================================================
// DETECTION TESTS
// =============================================================================

func TestDetect(t *testing.T) {
	tests := []struct {
		env  string
		want Shell
	}{
		{"/bin/zsh", ShellZsh},
		{"/usr/local/bin/zsh", ShellZsh},
		{"/bin/bash", ShellBash},
		{"/opt/homebrew/bin/fish", ShellFish},
		{"/usr/bin/env", ShellUnknown},
		{"/bin/sh", ShellUnknown},
		{"", ShellUnknown},
		// zsh outranks bash when both names appear
		{"/opt/bash-tools/zsh", ShellZsh},
		// bash outranks fish
		{"/home/fish/bin/bash", ShellBash},
	}

	for _, tc := range tests {
		if got := Detect(tc.env); got != tc.want {
			t.Errorf("Detect(%q) = %v, want %v", tc.env, got, tc.want)
		}
	}
}

// =============================================================================
// STARTUP FILE TESTS
// =============================================================================

func TestStartupFile(t *testing.T) {
	home := filepath.Join("home", "user")

	tests := []struct {
		shell Shell
		want  string
	}{
		{ShellZsh, filepath.Join(home, ".zshrc")},
		{ShellBash, filepath.Join(home, ".bashrc")},
		{ShellFish, filepath.Join(home, ".config", "fish", "config.fish")},
		{ShellUnknown, filepath.Join(home, ".profile")},
	}

	for _, tc := range tests {
		if got := StartupFile(tc.shell, home); got != tc.want {
			t.Errorf("StartupFile(%v) = %q, want %q", tc.shell, got, tc.want)
		}
	}
}

func TestDetectAndStartupFile_EndToEnd(t *testing.T) {
	home := "/home/u"

	zsh := Detect("/bin/zsh")
	if zsh.String() != "zsh" || !strings.HasSuffix(StartupFile(zsh, home), ".zshrc") {
		t.Errorf("SHELL=/bin/zsh gave %v, %s", zsh, StartupFile(zsh, home))
	}

	unknown := Detect("/usr/bin/env")
	if unknown.String() != "unknown" || !strings.HasSuffix(StartupFile(unknown, home), ".profile") {
		t.Errorf("SHELL=/usr/bin/env gave %v, %s", unknown, StartupFile(unknown, home))
	}
}
