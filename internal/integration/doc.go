// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package integration generates and installs the shell functions that make
// kok callable from an interactive shell.
//
// Every shell kind maps to exactly one Template. zsh, bash and unknown shells
// share the POSIX template; fish has its own. Each template defines three
// routines: the invocation wrapper (kok), a stop routine that kills the local
// model server (kok_stop) and a status routine that greps the provider type
// and model out of the persisted config (kok_status).
//
// # Usage
//
//	tmpl := integration.For(detect.ShellZsh)
//	block, err := tmpl.Render(integration.ParamsFrom(settings))
//	fmt.Println(integration.Highlight(block, tmpl))
//	err = integration.Append(rcFile, block)
package integration
