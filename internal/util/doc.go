// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small file and string helpers shared by the setup packages.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: Crash-safe replacement of a whole file
//   - AppendFile: Append text to a file the installer does not own
//
// String Utilities:
//   - StringWidth: Terminal display width (emoji and CJK aware)
//   - Underline: A rule as wide as a heading
//   - MaskSecret: Redact an API key for display
//
// # Usage
//
//	// Replace the config file in one step
//	err := util.AtomicWriteFile(path, data, 0600)
//
//	// Add shell functions to ~/.zshrc
//	err := util.AppendFile(rcPath, block)
package util
