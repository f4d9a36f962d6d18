// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package installer locates the prebuilt kok-cli binary and copies it into a
// system-wide bin directory.
//
// All external commands go through a Runner so tests never touch the real
// system. Install makes the binary executable and then copies it, using sudo
// according to the configured mode. There is no rollback: if chmod succeeds
// and the copy fails, the error names the failed step and nothing is undone.
//
// # Key Types
//
//   - Runner: executes one external command
//   - ExecRunner: Runner backed by os/exec
//   - InstallError: the step that failed and why
package installer
