// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package integration

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/jeranaias/kok-setup/internal/config"
	"github.com/jeranaias/kok-setup/internal/detect"
)

// =============================================================================
// FAMILIES
// =============================================================================

// Family is a group of shells that share one function dialect.
type Family int

const (
	// FamilyPOSIX covers zsh, bash and anything unrecognized.
	FamilyPOSIX Family = iota
	// FamilyFish covers fish.
	FamilyFish
)

// String returns the family name.
func (f Family) String() string {
	if f == FamilyFish {
		return "fish"
	}
	return "posix"
}

// FamilyOf maps a shell to its template family.
func FamilyOf(sh detect.Shell) Family {
	if sh == detect.ShellFish {
		return FamilyFish
	}
	return FamilyPOSIX
}

// =============================================================================
// PARAMETERS
// =============================================================================

// Params are the values substituted into a template.
type Params struct {
	// AppName names the routines: kok, kok_stop, kok_status.
	AppName string
	// BinaryName is the installed executable the wrapper invokes.
	BinaryName string
	// ServerProcess is killed by the stop routine.
	ServerProcess string
	// ConfigPath is the fallback when the binary cannot report its config path.
	ConfigPath string
}

// ErrMissingParam is returned by Render when a required value is empty.
var ErrMissingParam = errors.New("integration: missing template parameter")

// ParamsFrom builds template parameters from installer settings.
func ParamsFrom(s *config.Settings) Params {
	return Params{
		AppName:       s.AppName,
		BinaryName:    s.BinaryName,
		ServerProcess: s.ServerProcess,
		ConfigPath:    s.ConfigPath(),
	}
}

func (p Params) validate() error {
	switch {
	case p.AppName == "":
		return fmt.Errorf("%w: app name", ErrMissingParam)
	case p.BinaryName == "":
		return fmt.Errorf("%w: binary name", ErrMissingParam)
	case p.ServerProcess == "":
		return fmt.Errorf("%w: server process", ErrMissingParam)
	case p.ConfigPath == "":
		return fmt.Errorf("%w: config path", ErrMissingParam)
	}
	return nil
}

// Routines returns the names of the functions a rendered block defines.
func (p Params) Routines() []string {
	return []string{p.AppName, p.AppName + "_stop", p.AppName + "_status"}
}

// =============================================================================
// TEMPLATES
// =============================================================================

// Template is the function block for one shell.
type Template struct {
	Shell  detect.Shell
	Family Family
	// Lexer is the chroma lexer used for the preview.
	Lexer string

	tmpl *template.Template
}

// The status routines match `"key": "value"` so they read the indented JSON
// the writer produces as well as compact JSON.
const posixSource = `
# {{.AppName}} - Natural language to shell commands
{{.AppName}}() {
  local cmd
  cmd="$({{.BinaryName}} "$@")" || return
  echo "Generated: $cmd"
  if [ -n "$ZSH_VERSION" ]; then
    vared -p "Execute? " -c cmd
    print -s -- "$cmd"
  else
    local confirm
    printf 'Execute? [y/N] '
    read -r confirm || return
    case "$confirm" in
      [yY]|[yY][eE][sS]) ;;
      *) return ;;
    esac
  fi
  [ -n "$cmd" ] && eval "$cmd"
}

{{.AppName}}_stop() {
  pkill {{.ServerProcess}} && echo "🛑 Local AI server stopped"
}

{{.AppName}}_status() {
  echo "🤖 {{.AppName}} Configuration:"
  local config_path
  config_path=$({{.BinaryName}} --config-path 2>/dev/null || echo {{quote .ConfigPath}})
  if [ -f "$config_path" ]; then
    echo "   Provider: $(grep -o '"type": *"[^"]*"' "$config_path" | cut -d'"' -f4)"
    echo "   Model: $(grep -o '"model": *"[^"]*"' "$config_path" | cut -d'"' -f4)"
  else
    echo "   Status: Not configured"
  fi
}
`

const fishSource = `
# {{.AppName}} - Natural language to shell commands
function {{.AppName}}
    set cmd ({{.BinaryName}} $argv)
    or return
    echo "Generated: $cmd"
    read -P "Execute? " confirm
    if test "$confirm" = "y" -o "$confirm" = "yes"
        eval $cmd
    end
end

function {{.AppName}}_stop
    pkill {{.ServerProcess}}; and echo "🛑 Local AI server stopped"
end

function {{.AppName}}_status
    echo "🤖 {{.AppName}} Configuration:"
    set -l config_path ({{.BinaryName}} --config-path 2>/dev/null; or echo {{quote .ConfigPath}})
    if test -f "$config_path"
        echo "   Provider: "(grep -o '"type": *"[^"]*"' "$config_path" | cut -d'"' -f4)
        echo "   Model: "(grep -o '"model": *"[^"]*"' "$config_path" | cut -d'"' -f4)
    else
        echo "   Status: Not configured"
    end
end
`

var (
	posixTemplate = template.Must(template.New("posix").Funcs(template.FuncMap{"quote": posixQuote}).Parse(posixSource))
	fishTemplate  = template.Must(template.New("fish").Funcs(template.FuncMap{"quote": fishQuote}).Parse(fishSource))
)

// For returns the template for a shell. Every Shell value has one.
func For(sh detect.Shell) Template {
	switch FamilyOf(sh) {
	case FamilyFish:
		return Template{Shell: sh, Family: FamilyFish, Lexer: "fish", tmpl: fishTemplate}
	default:
		return Template{Shell: sh, Family: FamilyPOSIX, Lexer: "bash", tmpl: posixTemplate}
	}
}

// Render produces the text block appended to the startup file.
func (t Template) Render(p Params) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}
	if t.tmpl == nil {
		t = For(t.Shell)
	}

	var b strings.Builder
	if err := t.tmpl.Execute(&b, p); err != nil {
		return "", fmt.Errorf("render %s functions: %w", t.Family, err)
	}
	return b.String(), nil
}

// posixQuote single-quotes s. Nothing is special inside POSIX single quotes,
// so an embedded quote closes, escapes and reopens: ' becomes '\''.
func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// fishQuote single-quotes s. Inside fish single quotes \\ and \' are escapes.
func fishQuote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}
