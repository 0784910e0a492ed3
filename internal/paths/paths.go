// SPDX-License-Identifier: MPL-2.0

// Package paths resolves the directories the engine reads game data from.
//
// Four roots are exposed: the base install directory (next to the binary
// unless overridden), the per-user preference directory, the per-user
// configuration directory, and the bundled-assets directory. Platform
// conventions follow XDG on Linux, ~/Library/Application Support on macOS,
// and %APPDATA% on Windows.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppVendor and AppName form the per-user directory suffix
// (e.g. ~/.local/share/shadowed-pilgrims/shadow-of-the-west).
const (
	AppVendor = "shadowed-pilgrims"
	AppName   = "shadow-of-the-west"
)

// Overrides set via command-line flags or tests. Empty means "use the
// platform default".
var (
	basePathOverride   string
	prefPathOverride   string
	configPathOverride string
	assetsPathOverride string
)

// SetBasePath overrides the base install directory.
func SetBasePath(dir string) { basePathOverride = dir }

// SetPrefPath overrides the per-user preference directory.
func SetPrefPath(dir string) { prefPathOverride = dir }

// SetConfigPath overrides the per-user configuration directory.
func SetConfigPath(dir string) { configPathOverride = dir }

// SetAssetsPath overrides the bundled-assets directory.
func SetAssetsPath(dir string) { assetsPathOverride = dir }

// ResetOverrides clears all Set* overrides. Intended for tests.
func ResetOverrides() {
	basePathOverride = ""
	prefPathOverride = ""
	configPathOverride = ""
	assetsPathOverride = ""
}

// BasePath returns the base install directory: the directory containing the
// running executable, falling back to the current working directory when the
// executable path cannot be determined.
func BasePath() string {
	if basePathOverride != "" {
		return basePathOverride
	}
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// PrefPath returns the per-user preference (data) directory.
func PrefPath() string {
	if prefPathOverride != "" {
		return prefPathOverride
	}
	return filepath.Join(userDataDir(), AppVendor, AppName)
}

// ConfigPath returns the per-user configuration directory.
func ConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}
	return filepath.Join(userConfigDir(), AppVendor, AppName)
}

// AssetsPath returns the directory holding assets shipped with the binary.
func AssetsPath() string {
	if assetsPathOverride != "" {
		return assetsPathOverride
	}
	return filepath.Join(BasePath(), "assets")
}

func userDataDir() string {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir
		}
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		return filepath.Join(home, "Library", "Application Support")
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		return filepath.Join(home, ".local", "share")
	}
}

func userConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir
		}
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		return filepath.Join(home, "Library", "Application Support")
	default:
		if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
			return dir
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		return filepath.Join(home, ".config")
	}
}
