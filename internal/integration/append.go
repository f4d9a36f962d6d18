// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package integration

import (
	"fmt"

	"github.com/jeranaias/kok-setup/internal/util"
)

// Append adds block to the end of the startup file at path. The file is
// created if missing; its parent directory is not.
func Append(path, block string) error {
	if err := util.AppendFile(path, block); err != nil {
		return fmt.Errorf("append shell functions to %s: %w", path, err)
	}
	return nil
}
