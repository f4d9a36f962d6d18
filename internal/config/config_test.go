// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearSetupEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"KOK_SETUP_FILE", "KOK_SETUP_BINARY_NAME", "KOK_SETUP_WORKDIR",
		"KOK_SETUP_BUILD_DIR", "KOK_SETUP_INSTALL_DIR", "KOK_SETUP_SUDO",
		"KOK_SETUP_HOME", "KOK_SETUP_CONFIG_DIR", "KOK_SETUP_SERVER_PROCESS",
	} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "kok", s.AppName)
	assert.Equal(t, "kok-cli", s.BinaryName)
	assert.Equal(t, "dist", s.BuildDir)
	assert.Equal(t, "/usr/local/bin", s.InstallDir)
	assert.Equal(t, "llama-server", s.ServerProcess)
	assert.Equal(t, SudoAuto, s.SudoMode)
	assert.NotEmpty(t, s.WorkDir)
	assert.NotEmpty(t, s.HomeDir)
}

func TestSettings_Paths(t *testing.T) {
	s := &Settings{
		BinaryName: "kok-cli",
		WorkDir:    "/src/kok",
		BuildDir:   "dist",
		InstallDir: "/usr/local/bin",
		ConfigDir:  "/home/u/.config/kok",
	}

	assert.Equal(t, filepath.Join("/src/kok", "dist", "kok-cli"), s.BinaryPath())
	assert.Equal(t, filepath.Join("/usr/local/bin", "kok-cli"), s.InstallPath())
	assert.Equal(t, filepath.Join("/home/u/.config/kok", "config.json"), s.ConfigPath())
	assert.Equal(t, filepath.Join("/src/kok", "README.md"), s.ReadmePath())
}

func TestPlatformConfigDir(t *testing.T) {
	home := "/home/u"
	noEnv := func(string) string { return "" }
	env := func(vals map[string]string) func(string) string {
		return func(k string) string { return vals[k] }
	}

	tests := []struct {
		name   string
		goos   string
		getenv func(string) string
		want   string
	}{
		{"linux default", "linux", noEnv, filepath.Join(home, ".config", "kok")},
		{"linux xdg", "linux", env(map[string]string{"XDG_CONFIG_HOME": "/xdg"}), filepath.Join("/xdg", "kok")},
		{"freebsd", "freebsd", noEnv, filepath.Join(home, ".config", "kok")},
		{"darwin", "darwin", noEnv, filepath.Join(home, "Library", "Preferences", "kok")},
		{"windows appdata", "windows", env(map[string]string{"APPDATA": "/appdata"}), filepath.Join("/appdata", "kok", "Config")},
		{"windows fallback", "windows", noEnv, filepath.Join(home, "AppData", "Roaming", "kok", "Config")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, platformConfigDir(tt.goos, tt.getenv, "kok", home))
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearSetupEnv(t)
	dir := t.TempDir()
	t.Setenv("KOK_SETUP_WORKDIR", dir)
	t.Setenv("KOK_SETUP_INSTALL_DIR", filepath.Join(dir, "bin"))
	t.Setenv("KOK_SETUP_HOME", dir)
	t.Setenv("KOK_SETUP_CONFIG_DIR", filepath.Join(dir, "cfg"))
	t.Setenv("KOK_SETUP_SUDO", "NEVER")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, s.WorkDir)
	assert.Equal(t, filepath.Join(dir, "bin"), s.InstallDir)
	assert.Equal(t, dir, s.HomeDir)
	assert.Equal(t, filepath.Join(dir, "cfg"), s.ConfigDir)
	assert.Equal(t, SudoNever, s.SudoMode)
}

func TestLoad_ConfigDirDerivedFromHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("derivation checked for the linux layout")
	}
	clearSetupEnv(t)
	t.Setenv("XDG_CONFIG_HOME", "")
	home := t.TempDir()
	t.Setenv("KOK_SETUP_HOME", home)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "kok", "config.json"), s.ConfigPath())
}

func TestLoad_TOMLFile(t *testing.T) {
	clearSetupEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "setup.toml")
	body := `
binary_name = "kok-dev"
build_dir = "out"
install_dir = "/opt/kok/bin"
sudo = "always"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	t.Setenv("KOK_SETUP_FILE", path)
	// Environment wins over the file
	t.Setenv("KOK_SETUP_BUILD_DIR", "release")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "kok-dev", s.BinaryName)
	assert.Equal(t, "release", s.BuildDir)
	assert.Equal(t, "/opt/kok/bin", s.InstallDir)
	assert.Equal(t, SudoAlways, s.SudoMode)
}

func TestLoad_TOMLUnknownKey(t *testing.T) {
	clearSetupEnv(t)
	path := filepath.Join(t.TempDir(), "setup.toml")
	require.NoError(t, os.WriteFile(path, []byte(`instal_dir = "/opt"`), 0644))
	t.Setenv("KOK_SETUP_FILE", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instal_dir")
}

func TestLoad_TOMLMissingFile(t *testing.T) {
	clearSetupEnv(t)
	t.Setenv("KOK_SETUP_FILE", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Settings {
		return &Settings{
			AppName:       "kok",
			BinaryName:    "kok-cli",
			ServerProcess: "llama-server",
			InstallDir:    "/usr/local/bin",
			ConfigDir:     "/home/u/.config/kok",
			SudoMode:      SudoAuto,
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{"empty binary", func(s *Settings) { s.BinaryName = "" }, "binary_name"},
		{"binary with slash", func(s *Settings) { s.BinaryName = "bin/kok" }, "binary_name"},
		{"relative install dir", func(s *Settings) { s.InstallDir = "bin" }, "install_dir"},
		{"relative config dir", func(s *Settings) { s.ConfigDir = "cfg" }, "config_dir"},
		{"bad sudo mode", func(s *Settings) { s.SudoMode = "sometimes" }, "sudo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)

			err := s.Validate()
			require.Error(t, err)

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}
