// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build unix

package installer

import "golang.org/x/sys/unix"

// needsElevation is false for root and for directories the user can
// already write to.
func needsElevation(dir string) bool {
	if unix.Geteuid() == 0 {
		return false
	}
	return unix.Access(dir, unix.W_OK) != nil
}
