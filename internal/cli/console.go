// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Console prints status lines. Each message is followed by a newline.
type Console struct {
	Out io.Writer
}

// Print renders msg in style one line at a time, so embedded blank lines stay
// blank and lines are never padded to a common width.
func (c Console) Print(style lipgloss.Style, msg string) {
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	fmt.Fprintln(c.Out, strings.Join(lines, "\n"))
}

func (c Console) Plain(msg string)   { c.Print(PlainStyle, msg) }
func (c Console) Title(msg string)   { c.Print(TitleStyle, msg) }
func (c Console) Success(msg string) { c.Print(SuccessStyle, msg) }
func (c Console) Error(msg string)   { c.Print(ErrorStyle, msg) }
func (c Console) Warning(msg string) { c.Print(WarningStyle, msg) }
func (c Console) Info(msg string)    { c.Print(InfoStyle, msg) }
func (c Console) Dim(msg string)     { c.Print(DimStyle, msg) }

// Raw writes s exactly as given.
func (c Console) Raw(s string) {
	fmt.Fprint(c.Out, s)
}
