// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the number of terminal columns s occupies.
// Emoji and CJK characters count as two.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Underline returns a rule of ch exactly as wide as heading.
func Underline(heading string, ch string) string {
	w := StringWidth(heading)
	if w <= 0 || ch == "" {
		return ""
	}
	return strings.Repeat(ch, w)
}

// MaskSecret redacts all but the last four characters of a secret.
// Short secrets are fully masked; an empty secret renders as "(not set)".
func MaskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	runes := []rune(secret)
	if len(runes) <= 8 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}
