// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !unix

package installer

// There is no sudo outside unix.
func needsElevation(string) bool {
	return false
}
