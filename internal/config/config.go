// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// SETTINGS
// =============================================================================

// Sudo modes for the privileged copy.
const (
	SudoAuto   = "auto"   // use sudo unless already running as root
	SudoAlways = "always" // always prefix the copy with sudo
	SudoNever  = "never"  // copy directly
)

// Settings holds everything the setup steps need to know about the host.
type Settings struct {
	// AppName keys the config directory (kok -> ~/.config/kok).
	AppName string `toml:"app_name"`
	// BinaryName is the executable produced by the build and installed.
	BinaryName string `toml:"binary_name"`
	// BuildCommand is printed when the binary is missing.
	BuildCommand string `toml:"build_command"`
	// ServerProcess is the local model server the kok_stop function kills.
	ServerProcess string `toml:"server_process"`

	// WorkDir is the project checkout the build output is looked up in.
	WorkDir string `toml:"work_dir"`
	// BuildDir is relative to WorkDir.
	BuildDir string `toml:"build_dir"`
	// InstallDir is the system-wide directory the binary is copied to.
	InstallDir string `toml:"install_dir"`
	// SudoMode is one of auto, always, never.
	SudoMode string `toml:"sudo"`

	// HomeDir anchors the shell startup files.
	HomeDir string `toml:"home_dir"`
	// ConfigDir overrides the platform config directory.
	ConfigDir string `toml:"config_dir"`
}

// Default returns settings for the current process.
func Default() *Settings {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}

	return &Settings{
		AppName:       "kok",
		BinaryName:    "kok-cli",
		BuildCommand:  "bun run build",
		ServerProcess: "llama-server",
		WorkDir:       wd,
		BuildDir:      "dist",
		InstallDir:    "/usr/local/bin",
		SudoMode:      SudoAuto,
		HomeDir:       home,
	}
}

// =============================================================================
// PATH HELPERS
// =============================================================================

// BinaryPath is the build output checked before anything else runs.
func (s *Settings) BinaryPath() string {
	return filepath.Join(s.WorkDir, s.BuildDir, s.BinaryName)
}

// InstallPath is where the binary ends up.
func (s *Settings) InstallPath() string {
	return filepath.Join(s.InstallDir, s.BinaryName)
}

// ConfigPath is the single JSON configuration file kok-cli reads.
func (s *Settings) ConfigPath() string {
	return filepath.Join(s.ConfigDir, "config.json")
}

// ReadmePath is used only to decide whether to point the user at the README.
func (s *Settings) ReadmePath() string {
	return filepath.Join(s.WorkDir, "README.md")
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load resolves settings from defaults, the optional TOML file and the
// environment, then validates them.
func Load() (*Settings, error) {
	s := Default()

	if path := os.Getenv("KOK_SETUP_FILE"); path != "" {
		if err := LoadTOML(s, path); err != nil {
			return nil, err
		}
	}

	s.ApplyEnvOverrides()
	s.SetDefaults()

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid setup settings: %w", err)
	}
	return s, nil
}

// LoadTOML overlays the values present in a TOML file onto s.
func LoadTOML(s *Settings, path string) error {
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnvOverrides applies KOK_SETUP_* environment variables.
//
// Supported variables:
//   - KOK_SETUP_BINARY_NAME: overrides binary_name
//   - KOK_SETUP_WORKDIR: overrides work_dir
//   - KOK_SETUP_BUILD_DIR: overrides build_dir
//   - KOK_SETUP_INSTALL_DIR: overrides install_dir
//   - KOK_SETUP_SUDO: overrides sudo (auto, always, never)
//   - KOK_SETUP_HOME: overrides home_dir
//   - KOK_SETUP_CONFIG_DIR: overrides config_dir
//   - KOK_SETUP_SERVER_PROCESS: overrides server_process
func (s *Settings) ApplyEnvOverrides() {
	overrides := []struct {
		key   string
		field *string
	}{
		{"KOK_SETUP_BINARY_NAME", &s.BinaryName},
		{"KOK_SETUP_WORKDIR", &s.WorkDir},
		{"KOK_SETUP_BUILD_DIR", &s.BuildDir},
		{"KOK_SETUP_INSTALL_DIR", &s.InstallDir},
		{"KOK_SETUP_SUDO", &s.SudoMode},
		{"KOK_SETUP_HOME", &s.HomeDir},
		{"KOK_SETUP_CONFIG_DIR", &s.ConfigDir},
		{"KOK_SETUP_SERVER_PROCESS", &s.ServerProcess},
	}

	for _, o := range overrides {
		if v := strings.TrimSpace(os.Getenv(o.key)); v != "" {
			*o.field = v
		}
	}
}

// SetDefaults fills fields left empty by the file or environment.
func (s *Settings) SetDefaults() {
	defaults := Default()

	if s.AppName == "" {
		s.AppName = defaults.AppName
	}
	if s.BinaryName == "" {
		s.BinaryName = defaults.BinaryName
	}
	if s.BuildCommand == "" {
		s.BuildCommand = defaults.BuildCommand
	}
	if s.ServerProcess == "" {
		s.ServerProcess = defaults.ServerProcess
	}
	if s.WorkDir == "" {
		s.WorkDir = defaults.WorkDir
	}
	if s.BuildDir == "" {
		s.BuildDir = defaults.BuildDir
	}
	if s.InstallDir == "" {
		s.InstallDir = defaults.InstallDir
	}
	if s.SudoMode == "" {
		s.SudoMode = defaults.SudoMode
	}
	if s.HomeDir == "" {
		s.HomeDir = defaults.HomeDir
	}
	if s.ConfigDir == "" {
		s.ConfigDir = PlatformConfigDir(s.AppName, s.HomeDir)
	}
	s.SudoMode = strings.ToLower(s.SudoMode)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a single invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors collects every invalid setting.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate rejects settings that would send files somewhere surprising.
func (s *Settings) Validate() error {
	var errs ValidateErrors

	for _, f := range []struct{ name, value string }{
		{"app_name", s.AppName},
		{"binary_name", s.BinaryName},
		{"server_process", s.ServerProcess},
	} {
		if f.value == "" {
			errs = append(errs, ValidationError{Field: f.name, Message: "must not be empty"})
		} else if strings.ContainsAny(f.value, `/\ `) {
			errs = append(errs, ValidationError{
				Field:   f.name,
				Message: fmt.Sprintf("must be a bare name, got %q", f.value),
			})
		}
	}

	if !filepath.IsAbs(s.InstallDir) {
		errs = append(errs, ValidationError{
			Field:   "install_dir",
			Message: fmt.Sprintf("must be an absolute path, got %q", s.InstallDir),
		})
	}

	if s.ConfigDir != "" && !filepath.IsAbs(s.ConfigDir) {
		errs = append(errs, ValidationError{
			Field:   "config_dir",
			Message: fmt.Sprintf("must be an absolute path, got %q", s.ConfigDir),
		})
	}

	switch s.SudoMode {
	case SudoAuto, SudoAlways, SudoNever:
	default:
		errs = append(errs, ValidationError{
			Field:   "sudo",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: auto, always, never", s.SudoMode),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
