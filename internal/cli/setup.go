// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/jeranaias/kok-setup/internal/config"
	"github.com/jeranaias/kok-setup/internal/detect"
	"github.com/jeranaias/kok-setup/internal/installer"
	"github.com/jeranaias/kok-setup/internal/integration"
	"github.com/jeranaias/kok-setup/internal/provider"
	"github.com/jeranaias/kok-setup/internal/util"
)

// Setup holds everything one run needs. No step reads process globals.
type Setup struct {
	Settings *config.Settings
	Prompt   Prompter
	Out      io.Writer
	Runner   installer.Runner
	Logger   *log.Logger

	// ShellEnv is the value of $SHELL.
	ShellEnv string
	// Rich enables the highlighted preview and the glamour panel.
	Rich bool
	// Width is used to wrap the glamour panel.
	Width int
}

func (s *Setup) console() Console {
	return Console{Out: s.Out}
}

func (s *Setup) logger() *log.Logger {
	if s.Logger == nil {
		return discardLogger()
	}
	return s.Logger
}

// confirm asks a y/n question.
func (s *Setup) confirm(question string) (bool, error) {
	answer, err := s.Prompt.Ask(question)
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

// =============================================================================
// RUN
// =============================================================================

// Run executes the whole setup. It returns installer.ErrBinaryNotFound when
// the build output is missing, a prompt error such as ErrAborted, or nil.
// Install, write and append failures are reported and do not stop the run.
func (s *Setup) Run(ctx context.Context) error {
	out := s.console()
	app := s.Settings.AppName

	s.logger().Printf("SETUP_START | workdir=%s config=%s shell=%q",
		s.Settings.WorkDir, s.Settings.ConfigPath(), s.ShellEnv)

	out.Title(fmt.Sprintf("🚀 Welcome to %s setup!", app))
	out.Info(fmt.Sprintf("This will help you configure %s for natural language shell commands.\n", app))

	found := installer.Check(s.Settings)
	s.logger().Printf("BINARY_CHECK | path=%s found=%t", s.Settings.BinaryPath(), found)
	if !found {
		out.Error("❌ Binary not found. Please run: " + s.Settings.BuildCommand)
		out.Warning("Please build the project first with: " + s.Settings.BuildCommand)
		return installer.ErrBinaryNotFound
	}

	install, err := s.confirm(fmt.Sprintf("Install %s to %s? (y/n): ", s.Settings.BinaryName, s.Settings.InstallDir))
	if err != nil {
		return err
	}
	if install {
		s.installBinary(ctx)
	}

	if err := s.createConfig(); err != nil {
		return err
	}

	rcFile, err := s.setupShellIntegration()
	if err != nil {
		return err
	}

	s.complete(rcFile)
	s.logger().Printf("SETUP_DONE")
	return nil
}

// =============================================================================
// STEPS
// =============================================================================

func (s *Setup) installBinary(ctx context.Context) {
	out := s.console()
	out.Info(fmt.Sprintf("\n🔧 Installing %s binary...", s.Settings.BinaryName))
	for _, cmd := range installer.Commands(s.Settings) {
		out.Dim("   $ " + strings.Join(cmd, " "))
	}

	err := installer.Install(ctx, s.Settings, s.Runner)
	if err != nil {
		var ie *installer.InstallError
		step := installer.Step("unknown")
		if errors.As(err, &ie) {
			step = ie.Step
		}
		s.logger().Printf("INSTALL_FAILED | step=%s error=%v", step, err)
		out.Error("❌ Failed to install binary: " + err.Error())
		out.Warning("You may need to run with sudo or install manually")
		return
	}

	s.logger().Printf("INSTALL_OK | target=%s sudo=%t", s.Settings.InstallPath(), installer.UseSudo(s.Settings))
	out.Success("✅ Binary installed successfully!")
}

// createConfig runs the wizard and writes its record. Declining the
// overwrite skips only this step.
func (s *Setup) createConfig() error {
	out := s.console()
	out.Info("\n🔧 Setting up configuration...")

	path := s.Settings.ConfigPath()
	if provider.Exists(path) {
		out.Warning("Configuration already exists!")
		if existing, err := provider.Load(path); err == nil {
			s.summarize(existing)
		} else {
			s.logger().Printf("CONFIG_UNREADABLE | path=%s error=%v", path, err)
		}
		overwrite, err := s.confirm("Overwrite existing config? (y/n): ")
		if err != nil {
			return err
		}
		if !overwrite {
			s.logger().Printf("CONFIG_SKIP | path=%s reason=overwrite_declined", path)
			return nil
		}
	}

	wizard := &Wizard{Prompt: s.Prompt, Console: out}
	record, err := wizard.Run()
	if err != nil {
		return err
	}

	if err := provider.Save(path, record); err != nil {
		s.logger().Printf("CONFIG_WRITE_FAILED | path=%s error=%v", path, err)
		out.Error("❌ Failed to save configuration: " + err.Error())
		return nil
	}

	s.logger().Printf("CONFIG_WRITE | path=%s type=%s model=%s", path, record.ProviderKind(), record.ModelName())
	out.Success("✅ Configuration saved to: " + path)
	s.summarize(record)
	return nil
}

// summarize prints a record with the key masked.
func (s *Setup) summarize(r provider.Record) {
	out := s.console()
	out.Dim(fmt.Sprintf("   Provider: %s", r.ProviderKind()))
	out.Dim(fmt.Sprintf("   Model: %s", r.ModelName()))
	if r.ProviderKind() != provider.KindLlamaCpp {
		out.Dim("   API key: " + util.MaskSecret(provider.APIKey(r)))
	}
}

// setupShellIntegration returns the detected startup file.
func (s *Setup) setupShellIntegration() (string, error) {
	out := s.console()
	out.Info("\n📝 Setting up shell integration...")

	sh := detect.Detect(s.ShellEnv)
	rcFile := detect.StartupFile(sh, s.Settings.HomeDir)
	s.logger().Printf("SHELL_DETECT | shell=%s file=%s", sh, rcFile)

	out.Warning("Detected shell: " + sh.String())
	out.Warning("Config file: " + rcFile)

	tmpl := integration.For(sh)
	block, renderErr := tmpl.Render(integration.ParamsFrom(s.Settings))
	if renderErr == nil {
		s.preview(block, tmpl)
	}

	add, err := s.confirm(fmt.Sprintf("Add %s functions to your shell config? (y/n): ", s.Settings.AppName))
	if err != nil {
		return rcFile, err
	}
	if !add {
		return rcFile, nil
	}

	writeErr := renderErr
	if writeErr == nil {
		writeErr = integration.Append(rcFile, block)
	}
	if writeErr != nil {
		s.logger().Printf("SHELL_APPEND_FAILED | file=%s error=%v", rcFile, writeErr)
		out.Error("❌ Failed to write to " + rcFile)
		out.Warning("You can manually add the functions shown in the README")
		return rcFile, nil
	}

	s.logger().Printf("SHELL_APPEND | file=%s family=%s", rcFile, tmpl.Family)
	out.Success("✅ Shell functions added successfully!")
	out.Dim("   Added: " + strings.Join(integration.ParamsFrom(s.Settings).Routines(), ", "))
	out.Warning("Please run: source " + rcFile)
	return rcFile, nil
}

func (s *Setup) preview(block string, tmpl integration.Template) {
	out := s.console()
	heading := fmt.Sprintf("Functions to be added (%s):", tmpl.Family)
	out.Dim("\n" + heading + "\n" + util.Underline(heading, "─"))
	if s.Rich {
		out.Raw(integration.Highlight(block, tmpl))
	} else {
		out.Raw(block)
	}
	out.Raw(RenderSeparator(util.StringWidth(heading)) + "\n")
}

func (s *Setup) complete(rcFile string) {
	out := s.console()
	steps := nextSteps(s.Settings.AppName, displayPath(rcFile, s.Settings.HomeDir))

	out.Success("\n🎉 Setup complete!")

	rendered := false
	if s.Rich {
		width := s.Width
		if width <= 0 {
			width = DefaultTerminalWidth
		}
		if md, err := renderMarkdown(nextStepsMarkdown(steps), width); err == nil {
			out.Raw(md)
			rendered = true
		}
	}
	if !rendered {
		out.Title("\nNext steps:")
		for i, step := range steps {
			out.Warning(fmt.Sprintf("%d. %s", i+1, step))
		}
	}

	if util.FileExists(s.Settings.ReadmePath()) {
		out.Info("\n📖 For more information, see README.md")
	}
}
