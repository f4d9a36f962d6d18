// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/text/cases"
)

// ErrAborted is returned when the user interrupts a prompt with Ctrl-C.
var ErrAborted = errors.New("setup aborted")

// Prompter asks one question at a time and returns the trimmed answer.
// End of input is an empty answer, not an error.
type Prompter interface {
	Ask(prompt string) (string, error)
	// AskSecret is Ask without echo where the terminal allows it.
	AskSecret(prompt string) (string, error)
	Close() error
}

// NewPrompter picks the terminal prompter for an interactive terminal and
// the line reader otherwise.
func NewPrompter(out io.Writer, interactive bool) Prompter {
	if interactive {
		return NewTerminalPrompter(out)
	}
	return NewLinePrompter(os.Stdin, out)
}

var fold = cases.Fold()

// IsYes reports whether answer is "y" or "yes" in any case.
func IsYes(answer string) bool {
	a := fold.String(strings.TrimSpace(answer))
	return a == "y" || a == "yes"
}

// =============================================================================
// LINE PROMPTER
// =============================================================================

// LinePrompter reads answers line by line from any reader. Used for piped
// input and in tests.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads from in and writes prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		// Keep later output off the prompt line.
		fmt.Fprintln(p.out)
	}
	return strings.TrimSpace(line), nil
}

// AskSecret cannot hide input on a plain reader.
func (p *LinePrompter) AskSecret(prompt string) (string, error) {
	return p.Ask(prompt)
}

func (p *LinePrompter) Close() error { return nil }

// =============================================================================
// TERMINAL PROMPTER
// =============================================================================

// TerminalPrompter uses liner for line editing and hidden key entry.
type TerminalPrompter struct {
	line *liner.State
	out  io.Writer
}

// NewTerminalPrompter takes over the terminal until Close.
func NewTerminalPrompter(out io.Writer) *TerminalPrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &TerminalPrompter{line: line, out: out}
}

func (p *TerminalPrompter) Ask(prompt string) (string, error) {
	return p.read(prompt, p.line.Prompt)
}

func (p *TerminalPrompter) AskSecret(prompt string) (string, error) {
	return p.read(prompt, p.line.PasswordPrompt)
}

// read prints everything up to the last newline itself; liner only handles
// single-line prompts.
func (p *TerminalPrompter) read(prompt string, fn func(string) (string, error)) (string, error) {
	if i := strings.LastIndex(prompt, "\n"); i >= 0 {
		fmt.Fprint(p.out, prompt[:i+1])
		prompt = prompt[i+1:]
	}

	answer, err := fn(prompt)
	switch {
	case errors.Is(err, liner.ErrPromptAborted):
		return "", ErrAborted
	case errors.Is(err, io.EOF):
		return "", nil
	case err != nil:
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (p *TerminalPrompter) Close() error {
	return p.line.Close()
}
