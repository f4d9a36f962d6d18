// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package integration

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// =============================================================================
// PREVIEW
// =============================================================================

// Highlight returns block with ANSI syntax highlighting for the template's
// dialect. On any chroma failure the block is returned unchanged.
func Highlight(block string, t Template) string {
	lexer := lexers.Get(t.Lexer)
	if lexer == nil {
		lexer = lexers.Get("bash")
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, block)
	if err != nil {
		return block
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return block
	}
	return buf.String()
}
