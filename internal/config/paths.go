// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// PlatformConfigDir returns the per-user config directory for app on the
// running OS, following the env-paths layout kok-cli resolves at runtime.
func PlatformConfigDir(app, home string) string {
	return platformConfigDir(runtime.GOOS, os.Getenv, app, home)
}

func platformConfigDir(goos string, getenv func(string) string, app, home string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Preferences", app)
	case "windows":
		appData := getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, app, "Config")
	default:
		base := getenv("XDG_CONFIG_HOME")
		if base == "" {
			base = filepath.Join(home, ".config")
		}
		return filepath.Join(base, app)
	}
}
