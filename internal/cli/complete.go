// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
)

// nextSteps are the closing instructions, in order.
func nextSteps(app, rcFile string) []string {
	return []string{
		"Restart your terminal or run: source " + rcFile,
		fmt.Sprintf(`Test with: %s "list files in current directory"`, app),
		"Check status with: " + app + "_status",
	}
}

// nextStepsMarkdown renders the steps as a markdown list for glamour.
func nextStepsMarkdown(steps []string) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	for i, s := range steps {
		// Commands after the colon become inline code.
		if label, cmd, ok := strings.Cut(s, ": "); ok {
			s = label + ": `" + cmd + "`"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return b.String()
}

// renderMarkdown renders md for the terminal at the given width.
func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// displayPath abbreviates paths under home with ~.
func displayPath(path, home string) string {
	if home == "" {
		return path
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return path
	}
	return "~/" + filepath.ToSlash(rel)
}
