// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli runs the interactive kok setup.
//
// Setup.Run walks a fixed sequence of steps, each gated by one prompt:
//
//	check binary -> [install?] -> [overwrite?] -> wizard -> save
//	             -> [append shell functions?] -> next steps
//
// Nothing loops back. The only early exit is a missing binary. Every other
// failure (install, config write, shell append) is printed and the run
// continues with the next step.
//
// Prompts go through a Prompter: liner-backed on a terminal, a plain line
// reader otherwise. End of input reads as an empty answer.
package cli
