// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package installer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes an external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec. Stdin is passed through so sudo
// can ask for a password.
type ExecRunner struct {
	Stdin io.Reader
}

// NewExecRunner returns a runner attached to the process stdin.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin}
}

// Run executes name with args. A non-zero exit is reported with the
// command line and whatever the command wrote to stderr.
func (e *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = e.Stdin

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		line := strings.Join(append([]string{name}, args...), " ")
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("command failed: %s: %s", line, msg)
		}
		return fmt.Errorf("command failed: %s: %w", line, err)
	}
	return nil
}
