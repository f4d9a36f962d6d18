// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"
	"log"

	"github.com/google/uuid"
)

// NewRunLogger returns the diagnostic log for one run and the run id it is
// tagged with. Events go to w when debug is set and are discarded otherwise.
func NewRunLogger(w io.Writer, debug bool) (*log.Logger, string) {
	runID := uuid.NewString()
	if !debug || w == nil {
		w = io.Discard
	}
	return log.New(w, "kok-setup["+runID[:8]+"] ", log.LstdFlags), runID
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
