// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package installer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/kok-setup/internal/config"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrBinaryNotFound means the build output is missing. Nothing else can run.
var ErrBinaryNotFound = errors.New("binary not found")

// Step names one stage of Install.
type Step string

// Install steps, in order.
const (
	StepLocate Step = "locate"
	StepSpace  Step = "space"
	StepChmod  Step = "chmod"
	StepCopy   Step = "copy"
)

// InstallError reports the step that failed.
type InstallError struct {
	Step Step
	Err  error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// =============================================================================
// LOCATE
// =============================================================================

// Check reports whether the build output exists. Contents are not inspected.
func Check(s *config.Settings) bool {
	_, err := os.Stat(s.BinaryPath())
	return err == nil
}

// UseSudo reports whether the copy will be run through sudo.
func UseSudo(s *config.Settings) bool {
	switch s.SudoMode {
	case config.SudoAlways:
		return true
	case config.SudoNever:
		return false
	default:
		return needsElevation(s.InstallDir)
	}
}

// Commands returns the command lines Install will run, for display.
func Commands(s *config.Settings) [][]string {
	return [][]string{chmodCommand(s), copyCommand(s)}
}

func chmodCommand(s *config.Settings) []string {
	return []string{"chmod", "+x", s.BinaryPath()}
}

func copyCommand(s *config.Settings) []string {
	cmd := []string{"cp", s.BinaryPath(), s.InstallPath()}
	if UseSudo(s) {
		cmd = append([]string{"sudo"}, cmd...)
	}
	return cmd
}

// =============================================================================
// INSTALL
// =============================================================================

// Install makes the binary executable and copies it to the install directory.
// Each step is attempted once.
func Install(ctx context.Context, s *config.Settings, r Runner) error {
	info, err := os.Stat(s.BinaryPath())
	if err != nil {
		return &InstallError{Step: StepLocate, Err: fmt.Errorf("%w: %s", ErrBinaryNotFound, s.BinaryPath())}
	}

	if err := checkSpace(s, info.Size()); err != nil {
		return &InstallError{Step: StepSpace, Err: err}
	}

	if err := run(ctx, r, chmodCommand(s)); err != nil {
		return &InstallError{Step: StepChmod, Err: err}
	}
	if err := run(ctx, r, copyCommand(s)); err != nil {
		return &InstallError{Step: StepCopy, Err: err}
	}
	return nil
}

// diskFree is replaced in tests.
var diskFree = freeDiskSpace

// checkSpace is advisory: an unreadable filesystem is left for cp to report.
// An existing installed binary is overwritten in place, so its size counts
// as available.
func checkSpace(s *config.Settings, need int64) error {
	free, err := diskFree(s.InstallDir)
	if err != nil {
		return nil
	}
	if old, err := os.Stat(s.InstallPath()); err == nil && old.Mode().IsRegular() {
		free += uint64(old.Size())
	}
	if free < uint64(need) {
		return fmt.Errorf("%s has %d bytes free, binary needs %d", s.InstallDir, free, need)
	}
	return nil
}

func run(ctx context.Context, r Runner, argv []string) error {
	return r.Run(ctx, argv[0], argv[1:]...)
}
